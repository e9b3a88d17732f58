package services

import (
	"context"
	"fmt"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/khamsone/bizbooks_backend/internal/utils/finance"
	"github.com/google/uuid"
)

const openingStockDetail = "Opening stock"

type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockService creates a new stock service.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{stockRepo: stockRepo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) GetItem(ctx context.Context, vertical domain.Vertical, itemID string) (*domain.StockItem, error) {
	item, err := s.stockRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock item %s: %w", itemID, err)
	}
	if item.Vertical != vertical {
		return nil, fmt.Errorf("%w: stock item %s", apperrors.ErrNotFound, itemID)
	}
	return item, nil
}

func (s *stockService) ListItems(ctx context.Context, vertical domain.Vertical) ([]domain.StockItem, error) {
	items, err := s.stockRepo.ListItems(ctx, vertical)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	if items == nil {
		return []domain.StockItem{}, nil
	}
	return items, nil
}

func (s *stockService) ListLogs(ctx context.Context, vertical domain.Vertical, itemID string) ([]domain.StockLog, error) {
	if _, err := s.GetItem(ctx, vertical, itemID); err != nil {
		return nil, err
	}
	logs, err := s.stockRepo.ListLogsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock logs for %s: %w", itemID, err)
	}
	if logs == nil {
		return []domain.StockLog{}, nil
	}
	return logs, nil
}

// CreateItem persists the item master; a non-zero opening stock is recorded
// as a regular stock-in movement so the running-stock invariant holds from
// the first log entry.
func (s *stockService) CreateItem(ctx context.Context, vertical domain.Vertical, req dto.CreateStockItemRequest, actorID string) (*domain.StockItem, error) {
	itemID := req.ItemID
	if itemID == "" {
		itemID = uuid.NewString()
	}

	now := time.Now()
	item := domain.StockItem{
		ItemID:       itemID,
		Vertical:     vertical,
		SKU:          req.SKU,
		Name:         req.Name,
		PackageSize:  req.PackageSize,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		CurrentStock: 0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.stockRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create stock item: %w", err)
	}

	if req.OpeningStock > 0 {
		updated, err := s.stockRepo.AdjustStock(ctx, domain.StockLog{
			LogID:        uuid.NewString(),
			ItemID:       itemID,
			MovementType: domain.StockIn,
			Change:       req.OpeningStock,
			Detail:       openingStockDetail,
			CreatedAt:    now,
			CreatedBy:    actorID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to record opening stock for %s: %w", itemID, err)
		}
		return updated, nil
	}

	return &item, nil
}

func (s *stockService) UpdateItem(ctx context.Context, vertical domain.Vertical, itemID string, req dto.UpdateStockItemRequest, actorID string) (*domain.StockItem, error) {
	item, err := s.GetItem(ctx, vertical, itemID)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil {
		item.SKU = *req.SKU
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.PackageSize != nil {
		item.PackageSize = *req.PackageSize
	}
	if req.CostPrice != nil {
		item.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		item.SellingPrice = *req.SellingPrice
	}
	if req.IsFinished != nil {
		item.IsFinished = *req.IsFinished
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = actorID

	if err := s.stockRepo.UpdateItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update stock item %s: %w", itemID, err)
	}
	return item, nil
}

func (s *stockService) DeleteItem(ctx context.Context, vertical domain.Vertical, itemID string) error {
	if _, err := s.GetItem(ctx, vertical, itemID); err != nil {
		return err
	}
	if err := s.stockRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete stock item %s: %w", itemID, err)
	}
	return nil
}

// Adjust records a signed movement against the item. The repository applies
// the log and the stock level change in one transaction, so two concurrent
// sales can never oversell the item.
func (s *stockService) Adjust(ctx context.Context, vertical domain.Vertical, itemID string, req dto.AdjustStockRequest, actorID string) (*domain.StockItem, error) {
	if _, err := s.GetItem(ctx, vertical, itemID); err != nil {
		return nil, err
	}

	change := req.Quantity
	if req.MovementType == domain.Sale {
		change = -req.Quantity
	}

	item, err := s.stockRepo.AdjustStock(ctx, domain.StockLog{
		LogID:        uuid.NewString(),
		ItemID:       itemID,
		MovementType: req.MovementType,
		Change:       change,
		Detail:       req.Detail,
		CreatedAt:    time.Now(),
		CreatedBy:    actorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to adjust stock for %s: %w", itemID, err)
	}

	s.LogInfo(ctx, "stock adjusted", "itemID", itemID, "movementType", string(req.MovementType), "change", change)
	return item, nil
}

func (s *stockService) MovementReport(ctx context.Context, vertical domain.Vertical, month time.Time, batch string) (*domain.StockMovementReport, error) {
	items, err := s.stockRepo.ListItems(ctx, vertical)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for movement report: %w", err)
	}
	logs, err := s.stockRepo.ListLogsByVertical(ctx, vertical)
	if err != nil {
		return nil, fmt.Errorf("failed to load logs for movement report: %w", err)
	}

	report := finance.SummarizeMovements(items, logs, month)
	if batch != "" {
		report = filterReportByBatch(report, batch)
	}
	return &report, nil
}

func filterReportByBatch(report domain.StockMovementReport, batch string) domain.StockMovementReport {
	filtered := domain.StockMovementReport{
		Rows:    []domain.StockMovementRow{},
		Batches: []domain.BatchRollup{},
	}
	for _, row := range report.Rows {
		if row.Batch == batch {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	for _, rollup := range report.Batches {
		if rollup.Batch == batch {
			filtered.Batches = append(filtered.Batches, rollup)
		}
	}
	return filtered
}
