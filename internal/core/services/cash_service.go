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
)

type cashService struct {
	BaseService
	cashRepo portsrepo.CashRepositoryFacade
}

// NewCashService creates a new cash service.
func NewCashService(cashRepo portsrepo.CashRepositoryFacade) portssvc.CashSvcFacade {
	return &cashService{cashRepo: cashRepo}
}

var _ portssvc.CashSvcFacade = (*cashService)(nil)

func (s *cashService) GetCashState(ctx context.Context, vertical domain.Vertical) (*domain.CashCalculatorState, error) {
	state, err := s.cashRepo.FindCashState(ctx, vertical)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.CashCalculatorState{
				Vertical:      vertical,
				Denominations: map[string]int64{},
			}, nil
		}
		return nil, fmt.Errorf("failed to get cash state: %w", err)
	}
	return state, nil
}

func (s *cashService) SaveCashState(ctx context.Context, vertical domain.Vertical, req dto.SaveCashStateRequest, actorID string) (*domain.CashCalculatorState, error) {
	for denom, count := range req.Denominations {
		if count < 0 {
			return nil, fmt.Errorf("%w: note count for %s must not be negative", apperrors.ErrValidation, denom)
		}
	}

	existing, err := s.GetCashState(ctx, vertical)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	state := domain.CashCalculatorState{
		Vertical:      vertical,
		Denominations: req.Denominations,
		Baht:          req.Baht,
		BahtRate:      req.BahtRate,
		USD:           req.USD,
		USDRate:       req.USDRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if state.Denominations == nil {
		state.Denominations = map[string]int64{}
	}
	if !existing.CreatedAt.IsZero() {
		state.CreatedAt = existing.CreatedAt
		state.CreatedBy = existing.CreatedBy
	}

	if err := s.cashRepo.SaveCashState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save cash state: %w", err)
	}
	return &state, nil
}
