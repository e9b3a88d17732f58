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

type PgxCalculationRepository struct {
	BaseRepository
}

// newPgxCalculationRepository creates a new repository for saved calculations.
func newPgxCalculationRepository(pool *pgxpool.Pool) portsrepo.CalculationRepositoryFacade {
	return &PgxCalculationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CalculationRepositoryFacade = (*PgxCalculationRepository)(nil)

// The calculator document is stored whole as JSONB; the columns outside it
// exist only for addressing and ordering.
func (r *PgxCalculationRepository) SaveCalculation(ctx context.Context, calc domain.SavedCalculation) error {
	document, err := json.Marshal(calc)
	if err != nil {
		return fmt.Errorf("failed to marshal calculation %s: %w", calc.CalculationID, err)
	}

	query := `
		INSERT INTO saved_calculations (calculation_id, document, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (calculation_id) DO UPDATE SET
			document = EXCLUDED.document,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.Pool.Exec(ctx, query,
		calc.CalculationID,
		document,
		calc.CreatedAt,
		calc.CreatedBy,
		calc.LastUpdatedAt,
		calc.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation %s: %w", calc.CalculationID, err)
	}
	return nil
}

func (r *PgxCalculationRepository) FindCalculationByID(ctx context.Context, calculationID string) (*domain.SavedCalculation, error) {
	var document []byte
	err := r.Pool.QueryRow(ctx, `SELECT document FROM saved_calculations WHERE calculation_id = $1;`, calculationID).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find calculation %s: %w", calculationID, err)
	}

	var calc domain.SavedCalculation
	if err := json.Unmarshal(document, &calc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal calculation %s: %w", calculationID, err)
	}
	return &calc, nil
}

func (r *PgxCalculationRepository) ListCalculations(ctx context.Context) ([]domain.SavedCalculation, error) {
	rows, err := r.Pool.Query(ctx, `SELECT document FROM saved_calculations ORDER BY last_updated_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	calcs := []domain.SavedCalculation{}
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		var calc domain.SavedCalculation
		if err := json.Unmarshal(document, &calc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal calculation: %w", err)
		}
		calcs = append(calcs, calc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate calculations: %w", err)
	}
	return calcs, nil
}

func (r *PgxCalculationRepository) DeleteCalculation(ctx context.Context, calculationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM saved_calculations WHERE calculation_id = $1;`, calculationID)
	if err != nil {
		return fmt.Errorf("failed to delete calculation %s: %w", calculationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
