package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo, currencyRepo: currencyRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// UpsertExchangeRate creates or overwrites the rate for one directed pair.
// Rates must be positive; a stored identity pair must be exactly 1.
func (s *exchangeRateService) UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, actorID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.FromCurrencyCode == req.ToCurrencyCode && !req.Rate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: identity rate %s->%s must be 1", apperrors.ErrValidation, req.FromCurrencyCode, req.ToCurrencyCode)
	}

	for _, code := range []string{req.FromCurrencyCode, req.ToCurrencyCode} {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency code %s not found", apperrors.ErrValidation, code)
			}
			return nil, fmt.Errorf("failed to validate currency %s: %w", code, err)
		}
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: req.FromCurrencyCode,
		ToCurrencyCode:   req.ToCurrencyCode,
		Rate:             req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.rateRepo.UpsertRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to upsert exchange rate %s->%s: %w", req.FromCurrencyCode, req.ToCurrencyCode, err)
	}

	return &rate, nil
}

func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate %s->%s: %w", fromCode, toCode, err)
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}
