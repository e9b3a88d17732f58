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

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock items and logs.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

const stockItemColumns = `item_id, vertical, sku, name, package_size, cost_price, selling_price, current_stock, is_finished, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxStockRepository) SaveItem(ctx context.Context, item domain.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		string(item.Vertical),
		item.SKU,
		item.Name,
		item.PackageSize,
		item.CostPrice,
		item.SellingPrice,
		item.CurrentStock,
		item.IsFinished,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock item %s: %w", item.ItemID, err)
	}
	return nil
}

func (r *PgxStockRepository) UpdateItem(ctx context.Context, item domain.StockItem) error {
	query := `
		UPDATE stock_items
		SET sku = $2, name = $3, package_size = $4, cost_price = $5, selling_price = $6, is_finished = $7, last_updated_at = $8, last_updated_by = $9
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		item.SKU,
		item.Name,
		item.PackageSize,
		item.CostPrice,
		item.SellingPrice,
		item.IsFinished,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update stock item %s: %w", item.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStockRepository) DeleteItem(ctx context.Context, itemID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM stock_logs WHERE item_id = $1;`, itemID); err != nil {
		return fmt.Errorf("failed to delete stock logs for %s: %w", itemID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM stock_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete stock item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

func (r *PgxStockRepository) FindItemByID(ctx context.Context, itemID string) (*domain.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE item_id = $1;`
	item, err := scanStockItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock item %s: %w", itemID, err)
	}
	return item, nil
}

func (r *PgxStockRepository) ListItems(ctx context.Context, vertical domain.Vertical) ([]domain.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE vertical = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, string(vertical))
	if err != nil {
		return nil, fmt.Errorf("failed to query stock items: %w", err)
	}
	defer rows.Close()

	items := []domain.StockItem{}
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock items: %w", err)
	}
	return items, nil
}

func (r *PgxStockRepository) ListLogsByItem(ctx context.Context, itemID string) ([]domain.StockLog, error) {
	query := `
		SELECT log_id, item_id, movement_type, change, detail, created_at, created_by
		FROM stock_logs
		WHERE item_id = $1
		ORDER BY created_at;
	`
	return r.queryLogs(ctx, query, itemID)
}

func (r *PgxStockRepository) ListLogsByVertical(ctx context.Context, vertical domain.Vertical) ([]domain.StockLog, error) {
	query := `
		SELECT l.log_id, l.item_id, l.movement_type, l.change, l.detail, l.created_at, l.created_by
		FROM stock_logs l
		JOIN stock_items i ON i.item_id = l.item_id
		WHERE i.vertical = $1
		ORDER BY l.created_at;
	`
	return r.queryLogs(ctx, query, string(vertical))
}

// AdjustStock appends the movement log and moves the item's stock level in
// one transaction. The item row is locked first so concurrent sales serialize
// and the non-negative stock check holds.
func (r *PgxStockRepository) AdjustStock(ctx context.Context, log domain.StockLog) (*domain.StockItem, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var currentStock int64
	err = tx.QueryRow(ctx, `SELECT current_stock FROM stock_items WHERE item_id = $1 FOR UPDATE;`, log.ItemID).Scan(&currentStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock stock item %s: %w", log.ItemID, err)
	}

	newStock := currentStock + log.Change
	if newStock < 0 {
		return nil, fmt.Errorf("%w: item %s has %d on hand, movement of %d rejected",
			apperrors.ErrInsufficientStock, log.ItemID, currentStock, log.Change)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO stock_logs (log_id, item_id, movement_type, change, detail, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, log.LogID, log.ItemID, string(log.MovementType), log.Change, log.Detail, log.CreatedAt, log.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to insert stock log: %w", err)
	}

	query := `
		UPDATE stock_items
		SET current_stock = $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1
		RETURNING ` + stockItemColumns + `;
	`
	item, err := scanStockItem(tx.QueryRow(ctx, query, log.ItemID, newStock, log.CreatedAt, log.CreatedBy))
	if err != nil {
		return nil, fmt.Errorf("failed to move stock level for %s: %w", log.ItemID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PgxStockRepository) queryLogs(ctx context.Context, query string, arg any) ([]domain.StockLog, error) {
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.StockLog{}
	for rows.Next() {
		var log domain.StockLog
		err := rows.Scan(
			&log.LogID,
			&log.ItemID,
			&log.MovementType,
			&log.Change,
			&log.Detail,
			&log.CreatedAt,
			&log.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock logs: %w", err)
	}
	return logs, nil
}

func scanStockItem(row pgx.Row) (*domain.StockItem, error) {
	var item domain.StockItem
	err := row.Scan(
		&item.ItemID,
		&item.Vertical,
		&item.SKU,
		&item.Name,
		&item.PackageSize,
		&item.CostPrice,
		&item.SellingPrice,
		&item.CurrentStock,
		&item.IsFinished,
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
