package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType indicates the direction of a stock movement.
type MovementType string

const (
	StockIn MovementType = "STOCK_IN"
	Sale    MovementType = "SALE"
)

// StockItem is an inventory item master for one vertical. CurrentStock is
// maintained atomically alongside the item's StockLog entries; it must always
// equal the signed sum of the associated log changes.
// A PackageSize of zero marks a placeholder record (an empty batch shell) that
// is excluded from valuation sums.
type StockItem struct {
	ItemID       string          `json:"itemID"` // Primary Key (UUID, client-generated)
	Vertical     Vertical        `json:"vertical"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	PackageSize  int64           `json:"packageSize"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CurrentStock int64           `json:"currentStock"`
	IsFinished   bool            `json:"isFinished"`
	AuditFields
}

// IsPlaceholder reports whether the item is a batch-shell marker record.
func (i StockItem) IsPlaceholder() bool {
	return i.PackageSize == 0
}

// StockLog is one append-only stock movement entry. Change is positive for
// stock-in and negative for sales.
type StockLog struct {
	LogID        string       `json:"logID"` // Primary Key (UUID)
	ItemID       string       `json:"itemID"`
	MovementType MovementType `json:"movementType"`
	Change       int64        `json:"change"`
	Detail       string       `json:"detail"` // free-form lot label, e.g. "round 3"
	CreatedAt    time.Time    `json:"createdAt"`
	CreatedBy    string       `json:"createdBy"`
}
