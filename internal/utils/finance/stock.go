package finance

import (
	"regexp"
	"sort"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// batchLabelRe matches the lot naming convention used in stock-in details,
// e.g. "round 3" anywhere in the free-form text.
var batchLabelRe = regexp.MustCompile(`(?i)\bround\s*\d+\b`)

// BatchLabel extracts the batch (lot) label from a stock-in detail string.
// Returns "" when the detail does not follow the naming convention.
func BatchLabel(detail string) string {
	return batchLabelRe.FindString(detail)
}

// SummarizeMovements folds stock logs against item masters into the monthly
// movement report: per item stock-in and sale totals within the month, the
// remaining stock, and its valuation at cost and at selling price. Items
// resolve to a batch through their earliest stock-in log whose detail carries
// a batch label; items with no such log fall into the Uncategorized bucket.
// Placeholder items (package size zero) are listed but excluded from
// valuation sums.
func SummarizeMovements(items []domain.StockItem, logs []domain.StockLog, month time.Time) domain.StockMovementReport {
	start, next := MonthInterval(month)

	// Earliest-first so the first matching stock-in decides the batch.
	ordered := make([]domain.StockLog, len(logs))
	copy(ordered, logs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	type tally struct {
		stockIn int64
		sold    int64
		batch   string
	}
	tallies := make(map[string]*tally, len(items))
	for _, item := range items {
		tallies[item.ItemID] = &tally{}
	}

	for _, log := range ordered {
		t, ok := tallies[log.ItemID]
		if !ok {
			continue // log for an unknown (deleted) item
		}
		if t.batch == "" && log.MovementType == domain.StockIn {
			t.batch = BatchLabel(log.Detail)
		}
		created := log.CreatedAt.UTC()
		if created.Before(start) || !created.Before(next) {
			continue
		}
		switch log.MovementType {
		case domain.StockIn:
			t.stockIn += log.Change
		case domain.Sale:
			sold := log.Change
			if sold < 0 {
				sold = -sold
			}
			t.sold += sold
		}
	}

	rows := make([]domain.StockMovementRow, 0, len(items))
	rollups := make(map[string]*domain.BatchRollup)
	for _, item := range items {
		t := tallies[item.ItemID]
		batch := t.batch
		if batch == "" {
			batch = domain.UncategorizedBatch
		}
		row := domain.StockMovementRow{
			ItemID:    item.ItemID,
			SKU:       item.SKU,
			Name:      item.Name,
			Batch:     batch,
			StockIn:   t.stockIn,
			Sold:      t.sold,
			Remaining: item.CurrentStock,
		}
		if !item.IsPlaceholder() {
			remaining := decimal.NewFromInt(item.CurrentStock)
			row.CostValue = item.CostPrice.Mul(remaining)
			row.SellingValue = item.SellingPrice.Mul(remaining)
		}
		rows = append(rows, row)

		rollup, ok := rollups[batch]
		if !ok {
			rollup = &domain.BatchRollup{Batch: batch}
			rollups[batch] = rollup
		}
		rollup.StockIn += row.StockIn
		rollup.Sold += row.Sold
		rollup.Remaining += row.Remaining
		rollup.CostValue = rollup.CostValue.Add(row.CostValue)
		rollup.SellingValue = rollup.SellingValue.Add(row.SellingValue)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Batch != rows[j].Batch {
			return rows[i].Batch < rows[j].Batch
		}
		return rows[i].Name < rows[j].Name
	})

	batches := make([]domain.BatchRollup, 0, len(rollups))
	for _, rollup := range rollups {
		batches = append(batches, *rollup)
	}
	sort.Slice(batches, func(i, j int) bool { return batches[i].Batch < batches[j].Batch })

	return domain.StockMovementReport{Rows: rows, Batches: batches}
}
