package finance

import (
	"fmt"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateMatrix holds directed exchange rates keyed [from][to]. Identity pairs
// are implicit with rate 1.
type RateMatrix map[string]map[string]decimal.Decimal

// NewRateMatrix builds a matrix from stored exchange rate rows.
func NewRateMatrix(rates []domain.ExchangeRate) RateMatrix {
	m := make(RateMatrix)
	for _, r := range rates {
		row, ok := m[r.FromCurrencyCode]
		if !ok {
			row = make(map[string]decimal.Decimal)
			m[r.FromCurrencyCode] = row
		}
		row[r.ToCurrencyCode] = r.Rate
	}
	return m
}

// Rate returns the rate converting one unit of from into to. A missing pair is
// an ErrMissingRate; silent zero-fill would mask data entry errors.
func (m RateMatrix) Rate(from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if row, ok := m[from]; ok {
		if rate, ok := row[to]; ok {
			return rate, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: %s->%s", apperrors.ErrMissingRate, from, to)
}

// ConvertTotal converts a per-currency total map into a single amount in the
// target currency. Zero buckets are skipped, so no rate is required for a
// currency that contributes nothing.
func ConvertTotal(totals domain.MoneyMap, target string, rates RateMatrix) (decimal.Decimal, error) {
	converted := decimal.Zero
	for code, amt := range totals {
		if amt.IsZero() {
			continue
		}
		rate, err := rates.Rate(code, target)
		if err != nil {
			return decimal.Zero, err
		}
		converted = converted.Add(amt.Mul(rate))
	}
	return converted, nil
}

// Price derives the selling price from a markup percentage over the converted
// total, and the profit the markup yields.
func Price(convertedTotal, markupPercent decimal.Decimal) (sellingPrice, profit decimal.Decimal) {
	hundred := decimal.NewFromInt(100)
	sellingPrice = convertedTotal.Mul(decimal.NewFromInt(1).Add(markupPercent.Div(hundred)))
	profit = sellingPrice.Sub(convertedTotal)
	return sellingPrice, profit
}
