package finance_test

import (
	"testing"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchLabel(t *testing.T) {
	assert.Equal(t, "round 3", finance.BatchLabel("stock in round 3 from supplier"))
	assert.Equal(t, "Round 12", finance.BatchLabel("Round 12"))
	assert.Equal(t, "", finance.BatchLabel("restock after stocktake"))
}

func TestSummarizeMovements(t *testing.T) {
	items := []domain.StockItem{
		{
			ItemID:       "item-rice",
			SKU:          "RCE-01",
			Name:         "Rice 25kg",
			PackageSize:  25,
			CostPrice:    decimal.NewFromInt(200),
			SellingPrice: decimal.NewFromInt(250),
			CurrentStock: 7,
		},
		{
			ItemID:       "item-shell",
			SKU:          "SHL-00",
			Name:         "Round 2 shell",
			PackageSize:  0, // placeholder batch shell
			CostPrice:    decimal.NewFromInt(999),
			SellingPrice: decimal.NewFromInt(999),
			CurrentStock: 1,
		},
	}
	logs := []domain.StockLog{
		{LogID: "l1", ItemID: "item-rice", MovementType: domain.StockIn, Change: 10, Detail: "round 2 delivery", CreatedAt: time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)},
		{LogID: "l2", ItemID: "item-rice", MovementType: domain.Sale, Change: -3, Detail: "counter sale", CreatedAt: time.Date(2024, time.April, 10, 9, 0, 0, 0, time.UTC)},
		// Outside the month: ignored for totals, still decides nothing (later log).
		{LogID: "l3", ItemID: "item-rice", MovementType: domain.Sale, Change: -1, CreatedAt: time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)},
	}

	report := finance.SummarizeMovements(items, logs, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, report.Rows, 2)

	var rice, shell domain.StockMovementRow
	for _, row := range report.Rows {
		switch row.ItemID {
		case "item-rice":
			rice = row
		case "item-shell":
			shell = row
		}
	}

	assert.Equal(t, int64(10), rice.StockIn)
	assert.Equal(t, int64(3), rice.Sold)
	assert.Equal(t, int64(7), rice.Remaining)
	assert.Equal(t, "round 2", rice.Batch)
	assert.True(t, rice.CostValue.Equal(decimal.NewFromInt(1400)))
	assert.True(t, rice.SellingValue.Equal(decimal.NewFromInt(1750)))

	// Placeholder: no stock-in log at all -> Uncategorized, no valuation.
	assert.Equal(t, domain.UncategorizedBatch, shell.Batch)
	assert.True(t, shell.CostValue.IsZero())
	assert.True(t, shell.SellingValue.IsZero())

	require.Len(t, report.Batches, 2)
	assert.Equal(t, "round 2", report.Batches[1].Batch)
	assert.Equal(t, int64(10), report.Batches[1].StockIn)
	assert.True(t, report.Batches[1].CostValue.Equal(decimal.NewFromInt(1400)))
}

func TestSummarizeMovements_EarliestStockInDecidesBatch(t *testing.T) {
	items := []domain.StockItem{{ItemID: "i", SKU: "S", Name: "N", PackageSize: 1}}
	logs := []domain.StockLog{
		// Deliberately out of order: the later slice entry is the earlier event.
		{LogID: "b", ItemID: "i", MovementType: domain.StockIn, Change: 5, Detail: "round 9", CreatedAt: time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)},
		{LogID: "a", ItemID: "i", MovementType: domain.StockIn, Change: 5, Detail: "round 1", CreatedAt: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
	}

	report := finance.SummarizeMovements(items, logs, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "round 1", report.Rows[0].Batch)
	assert.Equal(t, int64(10), report.Rows[0].StockIn)
}
