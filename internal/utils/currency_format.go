package utils

import (
	money "github.com/Rhymond/go-money"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for
// a given currency record.
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.Round(int32(currency.Precision)).String()
}

// FormatAmount formats an amount using the ISO display precision for the
// currency code, falling back to the plain decimal string for codes go-money
// does not know.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	if cur := money.GetCurrency(currencyCode); cur != nil {
		return amount.StringFixed(int32(cur.Fraction))
	}
	return amount.String()
}

// FormatMoneyMap renders every bucket of a MoneyMap for display.
func FormatMoneyMap(m domain.MoneyMap) map[string]string {
	out := make(map[string]string, len(m))
	for code, amt := range m {
		out[code] = FormatAmount(amt, code)
	}
	return out
}

// DefaultPrecision returns the ISO display precision for a currency code, or 2
// when unknown.
func DefaultPrecision(currencyCode string) int {
	if cur := money.GetCurrency(currencyCode); cur != nil {
		return cur.Fraction
	}
	return 2
}
