package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTourRepository struct {
	BaseRepository
}

// newPgxTourRepository creates a new repository for tour programs and rows.
func newPgxTourRepository(pool *pgxpool.Pool) portsrepo.TourRepositoryFacade {
	return &PgxTourRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TourRepositoryFacade = (*PgxTourRepository)(nil)

const tourProgramColumns = `program_id, code, destination, pax, start_date, end_date, price, bank_charge, price_currency, created_at, created_by, last_updated_at, last_updated_by`
const tourItemColumns = `item_id, program_id, kind, item_date, detail, lak, thb, usd, cny, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxTourRepository) SaveProgram(ctx context.Context, program domain.TourProgram) error {
	query := `
		INSERT INTO tour_programs (` + tourProgramColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		program.ProgramID,
		program.Code,
		program.Destination,
		program.Pax,
		program.StartDate,
		program.EndDate,
		program.Price,
		program.BankCharge,
		program.PriceCurrency,
		program.CreatedAt,
		program.CreatedBy,
		program.LastUpdatedAt,
		program.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tour program %s: %w", program.ProgramID, err)
	}
	return nil
}

func (r *PgxTourRepository) UpdateProgram(ctx context.Context, program domain.TourProgram) error {
	query := `
		UPDATE tour_programs
		SET code = $2, destination = $3, pax = $4, start_date = $5, end_date = $6, price = $7, bank_charge = $8, price_currency = $9, last_updated_at = $10, last_updated_by = $11
		WHERE program_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		program.ProgramID,
		program.Code,
		program.Destination,
		program.Pax,
		program.StartDate,
		program.EndDate,
		program.Price,
		program.BankCharge,
		program.PriceCurrency,
		program.LastUpdatedAt,
		program.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update tour program %s: %w", program.ProgramID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTourRepository) DeleteProgram(ctx context.Context, programID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM tour_items WHERE program_id = $1;`, programID); err != nil {
		return fmt.Errorf("failed to delete tour items for %s: %w", programID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM tour_programs WHERE program_id = $1;`, programID)
	if err != nil {
		return fmt.Errorf("failed to delete tour program %s: %w", programID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTourRepository) FindProgramByID(ctx context.Context, programID string) (*domain.TourProgram, error) {
	query := `SELECT ` + tourProgramColumns + ` FROM tour_programs WHERE program_id = $1;`
	program, err := scanTourProgram(r.Pool.QueryRow(ctx, query, programID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tour program %s: %w", programID, err)
	}
	return program, nil
}

func (r *PgxTourRepository) ListPrograms(ctx context.Context) ([]domain.TourProgram, error) {
	query := `SELECT ` + tourProgramColumns + ` FROM tour_programs ORDER BY start_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tour programs: %w", err)
	}
	defer rows.Close()

	programs := []domain.TourProgram{}
	for rows.Next() {
		program, err := scanTourProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tour program: %w", err)
		}
		programs = append(programs, *program)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tour programs: %w", err)
	}
	return programs, nil
}

func (r *PgxTourRepository) SaveItem(ctx context.Context, item domain.TourItem) error {
	query := `
		INSERT INTO tour_items (` + tourItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		item.ProgramID,
		string(item.Kind),
		item.Date,
		item.Detail,
		item.LAK,
		item.THB,
		item.USD,
		item.CNY,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tour item %s: %w", item.ItemID, err)
	}
	return nil
}

func (r *PgxTourRepository) UpdateItem(ctx context.Context, item domain.TourItem) error {
	query := `
		UPDATE tour_items
		SET item_date = $2, detail = $3, lak = $4, thb = $5, usd = $6, cny = $7, last_updated_at = $8, last_updated_by = $9
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		item.Date,
		item.Detail,
		item.LAK,
		item.THB,
		item.USD,
		item.CNY,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update tour item %s: %w", item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTourRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM tour_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete tour item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTourRepository) FindItemByID(ctx context.Context, itemID string) (*domain.TourItem, error) {
	query := `SELECT ` + tourItemColumns + ` FROM tour_items WHERE item_id = $1;`
	item, err := scanTourItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tour item %s: %w", itemID, err)
	}
	return item, nil
}

func (r *PgxTourRepository) ListItems(ctx context.Context, programID string) ([]domain.TourItem, error) {
	query := `SELECT ` + tourItemColumns + ` FROM tour_items WHERE program_id = $1 ORDER BY item_date, created_at;`
	rows, err := r.Pool.Query(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tour items: %w", err)
	}
	defer rows.Close()

	items := []domain.TourItem{}
	for rows.Next() {
		item, err := scanTourItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tour item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tour items: %w", err)
	}
	return items, nil
}

func scanTourProgram(row pgx.Row) (*domain.TourProgram, error) {
	var program domain.TourProgram
	err := row.Scan(
		&program.ProgramID,
		&program.Code,
		&program.Destination,
		&program.Pax,
		&program.StartDate,
		&program.EndDate,
		&program.Price,
		&program.BankCharge,
		&program.PriceCurrency,
		&program.CreatedAt,
		&program.CreatedBy,
		&program.LastUpdatedAt,
		&program.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func scanTourItem(row pgx.Row) (*domain.TourItem, error) {
	var item domain.TourItem
	err := row.Scan(
		&item.ItemID,
		&item.ProgramID,
		&item.Kind,
		&item.Date,
		&item.Detail,
		&item.LAK,
		&item.THB,
		&item.USD,
		&item.CNY,
		&item.CreatedAt,
		&item.CreatedBy,
		&item.LastUpdatedAt,
		&item.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
