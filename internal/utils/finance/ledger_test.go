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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func txn(day time.Time, entry domain.EntryType, amounts domain.MoneyMap) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-" + day.Format("2006-01-02"),
		Vertical:      domain.VerticalAppliance,
		Date:          day,
		EntryType:     entry,
		Amounts:       amounts,
	}
}

func lak(v int64) domain.MoneyMap {
	return domain.MoneyMap{domain.CurrencyLAK: decimal.NewFromInt(v)}
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	in := time.Date(2024, time.March, 5, 23, 30, 0, 0, loc)
	got := finance.NormalizeDate(in)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthInterval(t *testing.T) {
	start, next := finance.MonthInterval(date(2024, time.February, 14))
	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, date(2024, time.March, 1), next)
}

func TestSummarizeLedger_Empty(t *testing.T) {
	summary := finance.SummarizeLedger(nil, date(2024, time.January, 1))
	assert.True(t, summary.BroughtForward.IsZero())
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.IsZero())
	assert.True(t, summary.NetProfit.IsZero())
	assert.True(t, summary.EndingBalance.IsZero())
}

func TestSummarizeLedger_RollForward(t *testing.T) {
	txns := []domain.Transaction{
		txn(date(2024, time.January, 5), domain.Income, lak(100)),
		txn(date(2024, time.February, 10), domain.Expense, lak(40)),
	}

	feb := finance.SummarizeLedger(txns, date(2024, time.February, 1))
	assert.True(t, feb.BroughtForward.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(100)))
	assert.True(t, feb.Expense.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(40)))
	assert.True(t, feb.NetProfit.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(-40)))
	assert.True(t, feb.EndingBalance.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(60)))
}

// Continuity: month N's ending balance is month N+1's brought-forward, for any
// partition of transactions by date.
func TestSummarizeLedger_Continuity(t *testing.T) {
	txns := []domain.Transaction{
		txn(date(2023, time.November, 2), domain.Income, lak(500)),
		txn(date(2023, time.December, 28), domain.Expense, lak(120)),
		txn(date(2024, time.January, 1), domain.Income, lak(75)),
		txn(date(2024, time.January, 31), domain.Expense, lak(30)),
		txn(date(2024, time.February, 3), domain.Income, lak(10)),
	}

	jan := finance.SummarizeLedger(txns, date(2024, time.January, 15))
	feb := finance.SummarizeLedger(txns, date(2024, time.February, 15))

	require.True(t, jan.EndingBalance.Get(domain.CurrencyLAK).Equal(feb.BroughtForward.Get(domain.CurrencyLAK)))
	assert.True(t, jan.EndingBalance.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(425)))
}

func TestSummarizeLedger_PerCurrencyIndependence(t *testing.T) {
	txns := []domain.Transaction{
		txn(date(2024, time.March, 2), domain.Income, domain.MoneyMap{
			domain.CurrencyLAK: decimal.NewFromInt(1000),
			domain.CurrencyTHB: decimal.NewFromInt(50),
		}),
		txn(date(2024, time.March, 9), domain.Expense, domain.MoneyMap{
			domain.CurrencyTHB: decimal.NewFromInt(20),
		}),
	}

	summary := finance.SummarizeLedger(txns, date(2024, time.March, 1))
	assert.True(t, summary.NetProfit.Get(domain.CurrencyLAK).Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.NetProfit.Get(domain.CurrencyTHB).Equal(decimal.NewFromInt(30)))
	assert.True(t, summary.NetProfit.Get(domain.CurrencyUSD).IsZero())
}
