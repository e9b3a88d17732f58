package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	amounts, err := json.Marshal(txn.Amounts)
	if err != nil {
		return fmt.Errorf("failed to marshal amounts: %w", err)
	}

	query := `
		INSERT INTO transactions (transaction_id, vertical, txn_date, entry_type, description, amounts, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		txn.TransactionID,
		string(txn.Vertical),
		txn.Date,
		string(txn.EntryType),
		txn.Description,
		amounts,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	amounts, err := json.Marshal(txn.Amounts)
	if err != nil {
		return fmt.Errorf("failed to marshal amounts: %w", err)
	}

	query := `
		UPDATE transactions
		SET txn_date = $2, entry_type = $3, description = $4, amounts = $5, last_updated_at = $6, last_updated_by = $7
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Date,
		string(txn.EntryType),
		txn.Description,
		amounts,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, vertical, txn_date, entry_type, description, amounts, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = $1;
	`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, vertical domain.Vertical, from, to *time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, vertical, txn_date, entry_type, description, amounts, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE vertical = $1
		  AND ($2::timestamptz IS NULL OR txn_date >= $2)
		  AND ($3::timestamptz IS NULL OR txn_date < $3)
		ORDER BY txn_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(vertical), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var amounts []byte
	err := row.Scan(
		&txn.TransactionID,
		&txn.Vertical,
		&txn.Date,
		&txn.EntryType,
		&txn.Description,
		&amounts,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(amounts, &txn.Amounts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal amounts: %w", err)
	}
	return &txn, nil
}
