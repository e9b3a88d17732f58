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
	"github.com/khamsone/bizbooks_backend/internal/utils"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, actorID string) (*domain.Currency, error) {
	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check currency %s: %w", req.CurrencyCode, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, req.CurrencyCode)
	}

	precision := utils.DefaultPrecision(req.CurrencyCode)
	if req.Precision != nil {
		precision = *req.Precision
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Precision:    precision,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
