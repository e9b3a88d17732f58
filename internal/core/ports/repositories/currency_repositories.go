package repositories

import (
	"context"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// ExchangeRateReader defines read operations for the rate matrix.
type ExchangeRateReader interface {
	// FindRate retrieves the matrix entry for one directed pair.
	FindRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListRates retrieves all matrix entries.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for the rate matrix.
type ExchangeRateWriter interface {
	// UpsertRate creates or overwrites the entry for one directed pair.
	UpsertRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all rate repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
