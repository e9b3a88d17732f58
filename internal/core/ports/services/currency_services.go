package services

import (
	"context"

	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	"github.com/khamsone/bizbooks_backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data.
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data.
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actorID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateReaderSvc defines read operations for the rate matrix.
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the matrix entry for one directed pair.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all matrix entries.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for the rate matrix.
type ExchangeRateWriterSvc interface {
	// UpsertExchangeRate creates or overwrites one directed pair's rate.
	UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, actorID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all rate-related service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
