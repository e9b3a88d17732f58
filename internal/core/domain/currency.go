package domain

// Codes of the currencies the app is seeded with. Additional currencies may be
// created through the currency API.
const (
	CurrencyLAK = "LAK"
	CurrencyTHB = "THB"
	CurrencyUSD = "USD"
	CurrencyCNY = "CNY"
)

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g. "LAK")
	Symbol       string `json:"symbol"`       // e.g. "₭"
	Name         string `json:"name"`         // e.g. "Lao Kip"
	Precision    int    `json:"precision"`    // display decimal places
	AuditFields
}
