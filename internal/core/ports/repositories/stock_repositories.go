package repositories

import (
	"context"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// StockReader defines read operations for stock items and their logs.
type StockReader interface {
	// FindItemByID retrieves one stock item.
	FindItemByID(ctx context.Context, itemID string) (*domain.StockItem, error)

	// ListItems retrieves all stock items of a vertical.
	ListItems(ctx context.Context, vertical domain.Vertical) ([]domain.StockItem, error)

	// ListLogsByItem retrieves the movement log of one item, oldest first.
	ListLogsByItem(ctx context.Context, itemID string) ([]domain.StockLog, error)

	// ListLogsByVertical retrieves all movement logs of a vertical's items.
	ListLogsByVertical(ctx context.Context, vertical domain.Vertical) ([]domain.StockLog, error)
}

// StockWriter defines write operations for stock items.
type StockWriter interface {
	// SaveItem persists a new stock item.
	SaveItem(ctx context.Context, item domain.StockItem) error

	// UpdateItem overwrites a stock item's master fields.
	UpdateItem(ctx context.Context, item domain.StockItem) error

	// DeleteItem permanently removes a stock item and its logs.
	DeleteItem(ctx context.Context, itemID string) error

	// AdjustStock appends a movement log and moves the item's current stock
	// in one database transaction. A sale that would drive the stock
	// negative fails with ErrInsufficientStock and changes nothing.
	AdjustStock(ctx context.Context, log domain.StockLog) (*domain.StockItem, error)
}

// StockRepositoryFacade combines all stock repository interfaces.
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}
