package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSummaryRepository struct {
	BaseRepository
}

// newPgxSummaryRepository creates a new repository for account summaries.
func newPgxSummaryRepository(pool *pgxpool.Pool) portsrepo.SummaryRepositoryFacade {
	return &PgxSummaryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SummaryRepositoryFacade = (*PgxSummaryRepository)(nil)

func (r *PgxSummaryRepository) FindSummaryByVertical(ctx context.Context, vertical domain.Vertical) (*domain.AccountSummary, error) {
	query := `
		SELECT vertical, capital, cash, transfer, working_capital, created_at, created_by, last_updated_at, last_updated_by
		FROM account_summaries
		WHERE vertical = $1;
	`
	var summary domain.AccountSummary
	var capital, cash, transfer, workingCapital []byte
	err := r.Pool.QueryRow(ctx, query, string(vertical)).Scan(
		&summary.Vertical,
		&capital,
		&cash,
		&transfer,
		&workingCapital,
		&summary.CreatedAt,
		&summary.CreatedBy,
		&summary.LastUpdatedAt,
		&summary.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account summary for %s: %w", vertical, err)
	}

	for _, col := range []struct {
		raw []byte
		dst *domain.MoneyMap
	}{
		{capital, &summary.Capital},
		{cash, &summary.Cash},
		{transfer, &summary.Transfer},
		{workingCapital, &summary.WorkingCapital},
	} {
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal account summary column: %w", err)
		}
	}
	return &summary, nil
}

func (r *PgxSummaryRepository) SaveSummary(ctx context.Context, summary domain.AccountSummary) error {
	capital, err := json.Marshal(summary.Capital)
	if err != nil {
		return fmt.Errorf("failed to marshal capital: %w", err)
	}
	cash, err := json.Marshal(summary.Cash)
	if err != nil {
		return fmt.Errorf("failed to marshal cash: %w", err)
	}
	transfer, err := json.Marshal(summary.Transfer)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer: %w", err)
	}
	workingCapital, err := json.Marshal(summary.WorkingCapital)
	if err != nil {
		return fmt.Errorf("failed to marshal working capital: %w", err)
	}

	query := `
		INSERT INTO account_summaries (vertical, capital, cash, transfer, working_capital, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (vertical) DO UPDATE SET
			capital = EXCLUDED.capital,
			cash = EXCLUDED.cash,
			transfer = EXCLUDED.transfer,
			working_capital = EXCLUDED.working_capital,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.Pool.Exec(ctx, query,
		string(summary.Vertical),
		capital,
		cash,
		transfer,
		workingCapital,
		summary.CreatedAt,
		summary.CreatedBy,
		summary.LastUpdatedAt,
		summary.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save account summary for %s: %w", summary.Vertical, err)
	}
	return nil
}
