package services

import (
	"context"
	"fmt"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/khamsone/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/khamsone/bizbooks_backend/internal/utils/finance"
	"github.com/google/uuid"
)

type tourService struct {
	BaseService
	tourRepo portsrepo.TourRepositoryFacade
}

// NewTourService creates a new tour service.
func NewTourService(tourRepo portsrepo.TourRepositoryFacade) portssvc.TourSvcFacade {
	return &tourService{tourRepo: tourRepo}
}

var _ portssvc.TourSvcFacade = (*tourService)(nil)

func (s *tourService) GetProgram(ctx context.Context, programID string) (*domain.TourProgram, error) {
	program, err := s.tourRepo.FindProgramByID(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour program %s: %w", programID, err)
	}
	return program, nil
}

func (s *tourService) ListPrograms(ctx context.Context) ([]domain.TourProgram, error) {
	programs, err := s.tourRepo.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tour programs: %w", err)
	}
	if programs == nil {
		return []domain.TourProgram{}, nil
	}
	return programs, nil
}

func (s *tourService) CreateProgram(ctx context.Context, req dto.CreateTourProgramRequest, actorID string) (*domain.TourProgram, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", apperrors.ErrValidation)
	}

	programID := req.ProgramID
	if programID == "" {
		programID = uuid.NewString()
	}

	now := time.Now()
	program := domain.TourProgram{
		ProgramID:     programID,
		Code:          req.Code,
		Destination:   req.Destination,
		Pax:           req.Pax,
		StartDate:     finance.NormalizeDate(req.StartDate),
		EndDate:       finance.NormalizeDate(req.EndDate),
		Price:         req.Price,
		BankCharge:    req.BankCharge,
		PriceCurrency: req.PriceCurrency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.tourRepo.SaveProgram(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to create tour program: %w", err)
	}
	return &program, nil
}

func (s *tourService) UpdateProgram(ctx context.Context, programID string, req dto.UpdateTourProgramRequest, actorID string) (*domain.TourProgram, error) {
	program, err := s.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		program.Code = *req.Code
	}
	if req.Destination != nil {
		program.Destination = *req.Destination
	}
	if req.Pax != nil {
		program.Pax = *req.Pax
	}
	if req.StartDate != nil {
		program.StartDate = finance.NormalizeDate(*req.StartDate)
	}
	if req.EndDate != nil {
		program.EndDate = finance.NormalizeDate(*req.EndDate)
	}
	if program.EndDate.Before(program.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", apperrors.ErrValidation)
	}
	if req.Price != nil {
		program.Price = *req.Price
	}
	if req.BankCharge != nil {
		program.BankCharge = *req.BankCharge
	}
	if req.PriceCurrency != nil {
		program.PriceCurrency = *req.PriceCurrency
	}
	program.LastUpdatedAt = time.Now()
	program.LastUpdatedBy = actorID

	if err := s.tourRepo.UpdateProgram(ctx, *program); err != nil {
		return nil, fmt.Errorf("failed to update tour program %s: %w", programID, err)
	}
	return program, nil
}

func (s *tourService) DeleteProgram(ctx context.Context, programID string) error {
	if _, err := s.GetProgram(ctx, programID); err != nil {
		return err
	}
	if err := s.tourRepo.DeleteProgram(ctx, programID); err != nil {
		return fmt.Errorf("failed to delete tour program %s: %w", programID, err)
	}
	return nil
}

func (s *tourService) ListItems(ctx context.Context, programID string, kind domain.TourItemKind) ([]domain.TourItem, error) {
	if _, err := s.GetProgram(ctx, programID); err != nil {
		return nil, err
	}
	items, err := s.tourRepo.ListItems(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tour items for %s: %w", programID, err)
	}
	if kind == "" {
		if items == nil {
			return []domain.TourItem{}, nil
		}
		return items, nil
	}

	filtered := []domain.TourItem{}
	for _, item := range items {
		if item.Kind == kind {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *tourService) AddItem(ctx context.Context, programID string, kind domain.TourItemKind, req dto.CreateTourItemRequest, actorID string) (*domain.TourItem, error) {
	if _, err := s.GetProgram(ctx, programID); err != nil {
		return nil, err
	}

	itemID := req.ItemID
	if itemID == "" {
		itemID = uuid.NewString()
	}

	now := time.Now()
	item := domain.TourItem{
		ItemID:    itemID,
		ProgramID: programID,
		Kind:      kind,
		Date:      finance.NormalizeDate(req.Date),
		Detail:    req.Detail,
		LAK:       req.LAK,
		THB:       req.THB,
		USD:       req.USD,
		CNY:       req.CNY,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.tourRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add tour item: %w", err)
	}
	return &item, nil
}

func (s *tourService) UpdateItem(ctx context.Context, programID, itemID string, req dto.UpdateTourItemRequest, actorID string) (*domain.TourItem, error) {
	item, err := s.findProgramItem(ctx, programID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		item.Date = finance.NormalizeDate(*req.Date)
	}
	if req.Detail != nil {
		item.Detail = *req.Detail
	}
	if req.LAK != nil {
		item.LAK = *req.LAK
	}
	if req.THB != nil {
		item.THB = *req.THB
	}
	if req.USD != nil {
		item.USD = *req.USD
	}
	if req.CNY != nil {
		item.CNY = *req.CNY
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = actorID

	if err := s.tourRepo.UpdateItem(ctx, *item); err != nil {
		return nil, fmt.Errorf("failed to update tour item %s: %w", itemID, err)
	}
	return item, nil
}

func (s *tourService) DeleteItem(ctx context.Context, programID, itemID string) error {
	if _, err := s.findProgramItem(ctx, programID, itemID); err != nil {
		return err
	}
	if err := s.tourRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete tour item %s: %w", itemID, err)
	}
	return nil
}

// ProgramSummary rolls cost and income rows into per-currency totals and
// nets them against each other.
func (s *tourService) ProgramSummary(ctx context.Context, programID string) (*domain.TourProgramSummary, error) {
	program, err := s.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	items, err := s.tourRepo.ListItems(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tour items for summary: %w", err)
	}
	summary := finance.SummarizeProgram(*program, items)
	return &summary, nil
}

func (s *tourService) findProgramItem(ctx context.Context, programID, itemID string) (*domain.TourItem, error) {
	if _, err := s.GetProgram(ctx, programID); err != nil {
		return nil, err
	}
	item, err := s.tourRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour item %s: %w", itemID, err)
	}
	if item.ProgramID != programID {
		return nil, fmt.Errorf("%w: tour item %s", apperrors.ErrNotFound, itemID)
	}
	return item, nil
}
