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

type PgxCashRepository struct {
	BaseRepository
}

// newPgxCashRepository creates a new repository for counted-cash records.
func newPgxCashRepository(pool *pgxpool.Pool) portsrepo.CashRepositoryFacade {
	return &PgxCashRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CashRepositoryFacade = (*PgxCashRepository)(nil)

func (r *PgxCashRepository) FindCashState(ctx context.Context, vertical domain.Vertical) (*domain.CashCalculatorState, error) {
	query := `
		SELECT vertical, denominations, baht, baht_rate, usd, usd_rate, created_at, created_by, last_updated_at, last_updated_by
		FROM cash_states
		WHERE vertical = $1;
	`
	var state domain.CashCalculatorState
	var denominations []byte
	err := r.Pool.QueryRow(ctx, query, string(vertical)).Scan(
		&state.Vertical,
		&denominations,
		&state.Baht,
		&state.BahtRate,
		&state.USD,
		&state.USDRate,
		&state.CreatedAt,
		&state.CreatedBy,
		&state.LastUpdatedAt,
		&state.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash state for %s: %w", vertical, err)
	}
	if err := json.Unmarshal(denominations, &state.Denominations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal denominations: %w", err)
	}
	return &state, nil
}

func (r *PgxCashRepository) SaveCashState(ctx context.Context, state domain.CashCalculatorState) error {
	denominations, err := json.Marshal(state.Denominations)
	if err != nil {
		return fmt.Errorf("failed to marshal denominations: %w", err)
	}

	query := `
		INSERT INTO cash_states (vertical, denominations, baht, baht_rate, usd, usd_rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (vertical) DO UPDATE SET
			denominations = EXCLUDED.denominations,
			baht = EXCLUDED.baht,
			baht_rate = EXCLUDED.baht_rate,
			usd = EXCLUDED.usd,
			usd_rate = EXCLUDED.usd_rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.Pool.Exec(ctx, query,
		string(state.Vertical),
		denominations,
		state.Baht,
		state.BahtRate,
		state.USD,
		state.USDRate,
		state.CreatedAt,
		state.CreatedBy,
		state.LastUpdatedAt,
		state.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save cash state for %s: %w", state.Vertical, err)
	}
	return nil
}
