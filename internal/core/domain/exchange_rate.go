package domain

import "github.com/shopspring/decimal"

// ExchangeRate is one directed entry of the user-editable rate matrix.
// Identity pairs (c -> c) are implicit with rate 1 and need not be stored.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"` // must be > 0
	AuditFields
}
