package services

import (
	"context"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/dto"
)

// LedgerReaderSvc defines read operations over a vertical's ledger.
type LedgerReaderSvc interface {
	// GetTransaction retrieves one ledger entry of the vertical.
	GetTransaction(ctx context.Context, vertical domain.Vertical, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the vertical's entries, optionally bounded
	// to [from, to). Nil bounds are unbounded.
	ListTransactions(ctx context.Context, vertical domain.Vertical, from, to *time.Time) ([]domain.Transaction, error)

	// MonthlySummary computes the roll-forward report for the month
	// containing the given date.
	MonthlySummary(ctx context.Context, vertical domain.Vertical, month time.Time) (*domain.LedgerSummary, error)

	// GetAccountSummary retrieves the vertical's balance record, zero-valued
	// when none has been written yet.
	GetAccountSummary(ctx context.Context, vertical domain.Vertical) (*domain.AccountSummary, error)
}

// LedgerWriterSvc defines write operations over a vertical's ledger.
type LedgerWriterSvc interface {
	// CreateTransaction records a new ledger entry.
	CreateTransaction(ctx context.Context, vertical domain.Vertical, req dto.CreateTransactionRequest, actorID string) (*domain.Transaction, error)

	// UpdateTransaction edits an existing ledger entry.
	UpdateTransaction(ctx context.Context, vertical domain.Vertical, transactionID string, req dto.UpdateTransactionRequest, actorID string) (*domain.Transaction, error)

	// DeleteTransaction permanently removes a ledger entry.
	DeleteTransaction(ctx context.Context, vertical domain.Vertical, transactionID string) error

	// MergeAccountSummary partially merges the vertical's balance record.
	MergeAccountSummary(ctx context.Context, vertical domain.Vertical, req dto.UpdateAccountSummaryRequest, actorID string) (*domain.AccountSummary, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
