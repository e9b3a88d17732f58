package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// CashCalculatorState is the per-vertical singleton of counted cash on hand:
// LAK note denominations plus counted THB/USD with their manual rates.
// It is a derived-input cache; the total is recomputed on every read.
type CashCalculatorState struct {
	Vertical      Vertical         `json:"vertical"` // Primary Key (one row per vertical)
	Denominations map[string]int64 `json:"denominations"`
	Baht          decimal.Decimal  `json:"baht"`
	BahtRate      decimal.Decimal  `json:"bahtRate"`
	USD           decimal.Decimal  `json:"usd"`
	USDRate       decimal.Decimal  `json:"usdRate"`
	AuditFields
}

// Total computes the counted cash in LAK: the sum over denominations of
// denomination x quantity, plus baht x rate and usd x rate. Keys that are not
// numeric denominations contribute zero.
func (s CashCalculatorState) Total() decimal.Decimal {
	total := decimal.Zero
	for denom, qty := range s.Denominations {
		value, err := strconv.ParseInt(denom, 10, 64)
		if err != nil {
			continue
		}
		total = total.Add(decimal.NewFromInt(value).Mul(decimal.NewFromInt(qty)))
	}
	total = total.Add(s.Baht.Mul(s.BahtRate))
	total = total.Add(s.USD.Mul(s.USDRate))
	return total
}
