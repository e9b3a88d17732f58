package domain

import "time"

// EntryType indicates whether a ledger transaction is income or expense.
type EntryType string

const (
	Income  EntryType = "INCOME"
	Expense EntryType = "EXPENSE"
)

// Transaction represents a single dated income/expense entry in a vertical's
// ledger. Amounts are per-currency; single-currency ledgers use a one-key map.
// Date is normalized to start of day (UTC).
type Transaction struct {
	TransactionID string    `json:"transactionID"` // Primary Key (UUID, client-generated)
	Vertical      Vertical  `json:"vertical"`
	Date          time.Time `json:"date"`
	EntryType     EntryType `json:"entryType"`
	Description   string    `json:"description"`
	Amounts       MoneyMap  `json:"amounts"`
	AuditFields
}

// SignedAmounts returns the transaction's amounts with expense entries negated,
// the sign convention used by the ledger roll-forward.
func (t Transaction) SignedAmounts() MoneyMap {
	if t.EntryType == Expense {
		return NewMoneyMap().Minus(t.Amounts)
	}
	return t.Amounts.Clone()
}
