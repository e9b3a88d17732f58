package repositories

import (
	"context"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// SummaryRepositoryFacade persists the per-vertical account summary record.
type SummaryRepositoryFacade interface {
	// FindSummaryByVertical retrieves a vertical's balance record.
	FindSummaryByVertical(ctx context.Context, vertical domain.Vertical) (*domain.AccountSummary, error)

	// SaveSummary upserts a vertical's balance record (last write wins).
	SaveSummary(ctx context.Context, summary domain.AccountSummary) error
}

// CashRepositoryFacade persists the per-vertical counted-cash record.
type CashRepositoryFacade interface {
	// FindCashState retrieves a vertical's counted-cash record.
	FindCashState(ctx context.Context, vertical domain.Vertical) (*domain.CashCalculatorState, error)

	// SaveCashState upserts a vertical's counted-cash record.
	SaveCashState(ctx context.Context, state domain.CashCalculatorState) error
}
