package repositories

import (
	"context"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a vertical's transactions, optionally
	// bounded to [from, to). Nil bounds are unbounded.
	ListTransactions(ctx context.Context, vertical domain.Vertical, from, to *time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction permanently removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
