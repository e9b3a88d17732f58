package finance_test

import (
	"testing"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDividends_ExactDistribution(t *testing.T) {
	profit := domain.MoneyMap{domain.CurrencyLAK: decimal.NewFromInt(1000)}
	pcts := []float64{0.3, 0.1, 0.1, 0.15, 0.3, 0.05}
	shareholders := make([]domain.Shareholder, len(pcts))
	for i, p := range pcts {
		shareholders[i] = domain.Shareholder{Name: "s", Percentage: decimal.NewFromFloat(p)}
	}

	table := finance.SplitDividends(profit, shareholders)
	require.Len(t, table.Rows, 6)

	want := []int64{300, 100, 100, 150, 300, 50}
	for i, row := range table.Rows {
		assert.True(t, row.Shares.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(want[i])),
			"row %d: got %s", i, row.Shares.Get(domain.CurrencyLAK))
	}

	// No rounding leakage: the shares sum back to the profit exactly.
	assert.True(t, table.TotalShares.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(1000)))
	assert.True(t, table.TotalPercentage.Equal(decimal.NewFromInt(1)))
}

// Percentages are not normalized; an over-allocation is reported, not fixed.
func TestSplitDividends_NoNormalization(t *testing.T) {
	profit := domain.MoneyMap{domain.CurrencyUSD: decimal.NewFromInt(200)}
	shareholders := []domain.Shareholder{
		{Name: "A", Percentage: decimal.NewFromFloat(0.8)},
		{Name: "B", Percentage: decimal.NewFromFloat(0.8)},
	}

	table := finance.SplitDividends(profit, shareholders)
	assert.True(t, table.TotalPercentage.Equal(decimal.NewFromFloat(1.6)))
	assert.True(t, table.TotalShares.Get(domain.CurrencyUSD).Equal(decimal.NewFromInt(320)))
}

func TestSplitDividends_Empty(t *testing.T) {
	table := finance.SplitDividends(domain.MoneyMap{}, nil)
	assert.Empty(t, table.Rows)
	assert.True(t, table.TotalPercentage.IsZero())
	assert.True(t, table.TotalShares.IsZero())
}
