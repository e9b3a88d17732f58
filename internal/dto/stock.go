package dto

import (
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStockItemRequest defines the data needed to create an item master.
// PackageSize zero is allowed and marks a placeholder (batch shell) record.
type CreateStockItemRequest struct {
	ItemID       string          `json:"itemID" binding:"omitempty,uuid"`
	SKU          string          `json:"sku" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	PackageSize  int64           `json:"packageSize" binding:"gte=0"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	OpeningStock int64           `json:"openingStock" binding:"gte=0"`
}

// UpdateStockItemRequest edits an item master. Stock levels are not editable
// here; they only move through adjustments.
type UpdateStockItemRequest struct {
	SKU          *string          `json:"sku"`
	Name         *string          `json:"name"`
	PackageSize  *int64           `json:"packageSize" binding:"omitempty,gte=0"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
	IsFinished   *bool            `json:"isFinished"`
}

// AdjustStockRequest records a stock movement. Quantity is always positive;
// the movement type decides the sign of the logged change.
type AdjustStockRequest struct {
	MovementType domain.MovementType `json:"movementType" binding:"required,oneof=STOCK_IN SALE"`
	Quantity     int64               `json:"quantity" binding:"required,gt=0"`
	Detail       string              `json:"detail"`
}

// StockItemResponse defines the data returned for an item master.
type StockItemResponse struct {
	ItemID        string          `json:"itemID"`
	Vertical      domain.Vertical `json:"vertical"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	PackageSize   int64           `json:"packageSize"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	CurrentStock  int64           `json:"currentStock"`
	IsFinished    bool            `json:"isFinished"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToStockItemResponse converts a domain.StockItem to its response DTO.
func ToStockItemResponse(item *domain.StockItem) StockItemResponse {
	return StockItemResponse{
		ItemID:        item.ItemID,
		Vertical:      item.Vertical,
		SKU:           item.SKU,
		Name:          item.Name,
		PackageSize:   item.PackageSize,
		CostPrice:     item.CostPrice,
		SellingPrice:  item.SellingPrice,
		CurrentStock:  item.CurrentStock,
		IsFinished:    item.IsFinished,
		CreatedAt:     item.CreatedAt,
		CreatedBy:     item.CreatedBy,
		LastUpdatedAt: item.LastUpdatedAt,
		LastUpdatedBy: item.LastUpdatedBy,
	}
}

// ToListStockItemResponse converts a slice of items to response DTOs.
func ToListStockItemResponse(items []domain.StockItem) []StockItemResponse {
	res := make([]StockItemResponse, len(items))
	for i := range items {
		res[i] = ToStockItemResponse(&items[i])
	}
	return res
}

// StockLogResponse defines the data returned for one movement log entry.
type StockLogResponse struct {
	LogID        string              `json:"logID"`
	ItemID       string              `json:"itemID"`
	MovementType domain.MovementType `json:"movementType"`
	Change       int64               `json:"change"`
	Detail       string              `json:"detail"`
	CreatedAt    time.Time           `json:"createdAt"`
	CreatedBy    string              `json:"createdBy"`
}

// ToStockLogResponse converts a domain.StockLog to its response DTO.
func ToStockLogResponse(log *domain.StockLog) StockLogResponse {
	return StockLogResponse{
		LogID:        log.LogID,
		ItemID:       log.ItemID,
		MovementType: log.MovementType,
		Change:       log.Change,
		Detail:       log.Detail,
		CreatedAt:    log.CreatedAt,
		CreatedBy:    log.CreatedBy,
	}
}

// ToListStockLogResponse converts a slice of logs to response DTOs.
func ToListStockLogResponse(logs []domain.StockLog) []StockLogResponse {
	res := make([]StockLogResponse, len(logs))
	for i := range logs {
		res[i] = ToStockLogResponse(&logs[i])
	}
	return res
}
