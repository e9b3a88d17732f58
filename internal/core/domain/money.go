package domain

import "github.com/shopspring/decimal"

// MoneyMap holds amounts keyed by currency code. The zero amount for a missing
// key is decimal.Zero; amounts tagged with different currencies never mix.
type MoneyMap map[string]decimal.Decimal

// NewMoneyMap returns an empty MoneyMap ready for accumulation.
func NewMoneyMap() MoneyMap {
	return make(MoneyMap)
}

// Get returns the amount for the given currency, or zero if absent.
func (m MoneyMap) Get(currencyCode string) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	if amt, ok := m[currencyCode]; ok {
		return amt
	}
	return decimal.Zero
}

// Add accumulates amt into the bucket for currencyCode.
func (m MoneyMap) Add(currencyCode string, amt decimal.Decimal) {
	m[currencyCode] = m.Get(currencyCode).Add(amt)
}

// Plus returns a new MoneyMap holding the per-currency sum of m and other.
func (m MoneyMap) Plus(other MoneyMap) MoneyMap {
	out := m.Clone()
	for code, amt := range other {
		out.Add(code, amt)
	}
	return out
}

// Minus returns a new MoneyMap holding the per-currency difference m - other.
func (m MoneyMap) Minus(other MoneyMap) MoneyMap {
	out := m.Clone()
	for code, amt := range other {
		out.Add(code, amt.Neg())
	}
	return out
}

// Clone returns an independent copy of m.
func (m MoneyMap) Clone() MoneyMap {
	out := make(MoneyMap, len(m))
	for code, amt := range m {
		out[code] = amt
	}
	return out
}

// IsZero reports whether every bucket in m is zero.
func (m MoneyMap) IsZero() bool {
	for _, amt := range m {
		if !amt.IsZero() {
			return false
		}
	}
	return true
}
