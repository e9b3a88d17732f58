package services

import (
	"context"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/dto"
)

// CalculationSvcFacade manages standalone tour calculator documents and
// derives quotes from them.
type CalculationSvcFacade interface {
	// GetCalculation retrieves one saved calculation.
	GetCalculation(ctx context.Context, calculationID string) (*domain.SavedCalculation, error)

	// ListCalculations retrieves all saved calculations, newest first.
	ListCalculations(ctx context.Context) ([]domain.SavedCalculation, error)

	// SaveCalculation upserts a calculation document under the given id.
	SaveCalculation(ctx context.Context, calculationID string, req dto.SaveCalculationRequest, actorID string) (*domain.SavedCalculation, error)

	// DeleteCalculation permanently removes a calculation.
	DeleteCalculation(ctx context.Context, calculationID string) error

	// Quote aggregates the calculation's costs, converts them into the
	// target currency against the current rate matrix, applies the markup
	// and splits the profit across the calculation's stakeholders. An empty
	// target falls back to the calculation's stored target currency.
	Quote(ctx context.Context, calculationID, targetCurrency string) (*domain.Quote, error)
}

// CashSvcFacade manages the per-vertical counted-cash record.
type CashSvcFacade interface {
	// GetCashState retrieves the vertical's counted-cash record, zero-valued
	// when none has been written yet.
	GetCashState(ctx context.Context, vertical domain.Vertical) (*domain.CashCalculatorState, error)

	// SaveCashState overwrites the vertical's counted-cash record.
	SaveCashState(ctx context.Context, vertical domain.Vertical, req dto.SaveCashStateRequest, actorID string) (*domain.CashCalculatorState, error)
}
