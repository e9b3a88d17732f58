package services

import (
	"context"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/dto"
)

// StockReaderSvc defines read operations for a vertical's inventory.
type StockReaderSvc interface {
	// GetItem retrieves one stock item of the vertical.
	GetItem(ctx context.Context, vertical domain.Vertical, itemID string) (*domain.StockItem, error)

	// ListItems retrieves all stock items of the vertical.
	ListItems(ctx context.Context, vertical domain.Vertical) ([]domain.StockItem, error)

	// ListLogs retrieves the movement log of one item, oldest first.
	ListLogs(ctx context.Context, vertical domain.Vertical, itemID string) ([]domain.StockLog, error)

	// MovementReport computes the monthly movement report, optionally
	// filtered to one batch label.
	MovementReport(ctx context.Context, vertical domain.Vertical, month time.Time, batch string) (*domain.StockMovementReport, error)
}

// StockWriterSvc defines write operations for a vertical's inventory.
type StockWriterSvc interface {
	// CreateItem persists a new item master.
	CreateItem(ctx context.Context, vertical domain.Vertical, req dto.CreateStockItemRequest, actorID string) (*domain.StockItem, error)

	// UpdateItem edits an item master.
	UpdateItem(ctx context.Context, vertical domain.Vertical, itemID string, req dto.UpdateStockItemRequest, actorID string) (*domain.StockItem, error)

	// DeleteItem permanently removes an item and its logs.
	DeleteItem(ctx context.Context, vertical domain.Vertical, itemID string) error

	// Adjust records a stock movement atomically against the item. A sale
	// exceeding the current stock fails with ErrInsufficientStock.
	Adjust(ctx context.Context, vertical domain.Vertical, itemID string, req dto.AdjustStockRequest, actorID string) (*domain.StockItem, error)
}

// StockSvcFacade combines all stock service interfaces.
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
