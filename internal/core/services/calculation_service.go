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
	"github.com/khamsone/bizbooks_backend/internal/utils/finance"
)

type calculationService struct {
	BaseService
	calcRepo portsrepo.CalculationRepositoryFacade
	rateRepo portsrepo.ExchangeRateReader
}

// NewCalculationService creates a new calculation service.
func NewCalculationService(calcRepo portsrepo.CalculationRepositoryFacade, rateRepo portsrepo.ExchangeRateReader) portssvc.CalculationSvcFacade {
	return &calculationService{calcRepo: calcRepo, rateRepo: rateRepo}
}

var _ portssvc.CalculationSvcFacade = (*calculationService)(nil)

func (s *calculationService) GetCalculation(ctx context.Context, calculationID string) (*domain.SavedCalculation, error) {
	calc, err := s.calcRepo.FindCalculationByID(ctx, calculationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get calculation %s: %w", calculationID, err)
	}
	return calc, nil
}

func (s *calculationService) ListCalculations(ctx context.Context) ([]domain.SavedCalculation, error) {
	calcs, err := s.calcRepo.ListCalculations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	if calcs == nil {
		return []domain.SavedCalculation{}, nil
	}
	return calcs, nil
}

// SaveCalculation upserts the whole document under the client-chosen id.
// The latest save wins; there is no field-level merging.
func (s *calculationService) SaveCalculation(ctx context.Context, calculationID string, req dto.SaveCalculationRequest, actorID string) (*domain.SavedCalculation, error) {
	if calculationID == "" {
		return nil, fmt.Errorf("%w: calculation id is required", apperrors.ErrValidation)
	}
	for _, sh := range req.Shareholders {
		if sh.Percentage.IsNegative() {
			return nil, fmt.Errorf("%w: shareholder %s has a negative percentage", apperrors.ErrValidation, sh.Name)
		}
	}

	now := time.Now()
	calc := domain.SavedCalculation{
		CalculationID:  calculationID,
		TourInfo:       req.TourInfo,
		AllCosts:       req.AllCosts,
		MarkupPercent:  req.MarkupPercent,
		TargetCurrency: req.TargetCurrency,
		Shareholders:   req.Shareholders,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	existing, err := s.calcRepo.FindCalculationByID(ctx, calculationID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check calculation %s: %w", calculationID, err)
	}
	if existing != nil {
		calc.CreatedAt = existing.CreatedAt
		calc.CreatedBy = existing.CreatedBy
	}

	if err := s.calcRepo.SaveCalculation(ctx, calc); err != nil {
		return nil, fmt.Errorf("failed to save calculation %s: %w", calculationID, err)
	}
	return &calc, nil
}

func (s *calculationService) DeleteCalculation(ctx context.Context, calculationID string) error {
	if _, err := s.GetCalculation(ctx, calculationID); err != nil {
		return err
	}
	if err := s.calcRepo.DeleteCalculation(ctx, calculationID); err != nil {
		return fmt.Errorf("failed to delete calculation %s: %w", calculationID, err)
	}
	return nil
}

// Quote derives the full pricing pipeline from a saved calculation: category
// totals, conversion into the target currency, markup and the dividend
// split. A pair missing from the rate matrix fails the whole quote.
func (s *calculationService) Quote(ctx context.Context, calculationID, targetCurrency string) (*domain.Quote, error) {
	calc, err := s.GetCalculation(ctx, calculationID)
	if err != nil {
		return nil, err
	}

	target := targetCurrency
	if target == "" {
		target = calc.TargetCurrency
	}
	if target == "" {
		return nil, fmt.Errorf("%w: no target currency given and none stored on the calculation", apperrors.ErrValidation)
	}

	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	quote, err := finance.BuildQuote(*calc, target, finance.NewRateMatrix(rates))
	if err != nil {
		return nil, fmt.Errorf("failed to quote calculation %s: %w", calculationID, err)
	}
	return quote, nil
}
