// Package finance holds the pure calculation core of the app: ledger
// roll-forward, stock movement rollups, tour cost aggregation, currency
// conversion and dividend splitting. Everything here is side-effect free and
// operates on domain types with shopspring decimals.
package finance

import (
	"time"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// NormalizeDate truncates t to the start of its day in UTC. Transaction dates
// are stored normalized so interval tests are unambiguous.
func NormalizeDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthInterval returns the half-open interval [start, next) of the month
// containing t, in UTC.
func MonthInterval(t time.Time) (start, next time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	next = start.AddDate(0, 1, 0)
	return start, next
}

// SummarizeLedger folds an unordered transaction list into the roll-forward
// report for the month containing month: broughtForward is the signed running
// sum of everything before the month start, income/expense sum the in-month
// entries by type, and endingBalance = broughtForward + income - expense.
// An empty list yields an all-zero summary. The continuity property holds by
// construction: month N's endingBalance equals month N+1's broughtForward.
func SummarizeLedger(txns []domain.Transaction, month time.Time) domain.LedgerSummary {
	start, next := MonthInterval(month)

	broughtForward := domain.NewMoneyMap()
	income := domain.NewMoneyMap()
	expense := domain.NewMoneyMap()

	for _, txn := range txns {
		date := txn.Date.UTC()
		switch {
		case date.Before(start):
			for code, amt := range txn.SignedAmounts() {
				broughtForward.Add(code, amt)
			}
		case date.Before(next):
			bucket := income
			if txn.EntryType == domain.Expense {
				bucket = expense
			}
			for code, amt := range txn.Amounts {
				bucket.Add(code, amt)
			}
		}
	}

	netProfit := income.Minus(expense)
	return domain.LedgerSummary{
		BroughtForward: broughtForward,
		Income:         income,
		Expense:        expense,
		NetProfit:      netProfit,
		EndingBalance:  broughtForward.Plus(netProfit),
	}
}
