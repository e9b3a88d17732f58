package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/core/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TourRepository ---
type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) FindProgramByID(ctx context.Context, programID string) (*domain.TourProgram, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourProgram), args.Error(1)
}

func (m *MockTourRepository) ListPrograms(ctx context.Context) ([]domain.TourProgram, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourProgram), args.Error(1)
}

func (m *MockTourRepository) ListItems(ctx context.Context, programID string) ([]domain.TourItem, error) {
	args := m.Called(ctx, programID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TourItem), args.Error(1)
}

func (m *MockTourRepository) FindItemByID(ctx context.Context, itemID string) (*domain.TourItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourItem), args.Error(1)
}

func (m *MockTourRepository) SaveProgram(ctx context.Context, program domain.TourProgram) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockTourRepository) UpdateProgram(ctx context.Context, program domain.TourProgram) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockTourRepository) DeleteProgram(ctx context.Context, programID string) error {
	args := m.Called(ctx, programID)
	return args.Error(0)
}

func (m *MockTourRepository) SaveItem(ctx context.Context, item domain.TourItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTourRepository) UpdateItem(ctx context.Context, item domain.TourItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTourRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// --- Test Suite ---
type TourServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTourRepository
	service  portssvc.TourSvcFacade
}

func (suite *TourServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTourRepository)
	suite.service = services.NewTourService(suite.mockRepo)
}

func (suite *TourServiceTestSuite) TestCreateProgram_EndBeforeStartFails() {
	ctx := context.Background()
	req := dto.CreateTourProgramRequest{
		Destination: "Luang Prabang",
		StartDate:   time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC),
	}

	program, err := suite.service.CreateProgram(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(program)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProgram", mock.Anything, mock.Anything)
}

func (suite *TourServiceTestSuite) TestAddItem_StampsProgramAndKind() {
	ctx := context.Background()
	programID := uuid.NewString()
	stored := &domain.TourProgram{ProgramID: programID, Destination: "Vang Vieng"}

	suite.mockRepo.On("FindProgramByID", ctx, programID).Return(stored, nil).Once()
	suite.mockRepo.On("SaveItem", ctx, mock.MatchedBy(func(i domain.TourItem) bool {
		return i.ProgramID == programID && i.Kind == domain.TourCost && i.ItemID != ""
	})).Return(nil).Once()

	item, err := suite.service.AddItem(ctx, programID, domain.TourCost, dto.CreateTourItemRequest{
		Date:   time.Date(2025, 7, 10, 14, 30, 0, 0, time.UTC),
		Detail: "Hotel deposit",
		THB:    decimal.NewFromInt(4500),
	}, "tester")

	suite.Require().NoError(err)
	suite.Equal(domain.TourCost, item.Kind)
	suite.True(item.Date.Equal(time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TourServiceTestSuite) TestUpdateItem_WrongProgramNotFound() {
	ctx := context.Background()
	programID := uuid.NewString()
	itemID := uuid.NewString()
	stored := &domain.TourProgram{ProgramID: programID}
	item := &domain.TourItem{ItemID: itemID, ProgramID: uuid.NewString()}

	suite.mockRepo.On("FindProgramByID", ctx, programID).Return(stored, nil).Once()
	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(item, nil).Once()

	updated, err := suite.service.UpdateItem(ctx, programID, itemID, dto.UpdateTourItemRequest{}, "tester")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *TourServiceTestSuite) TestListItems_FiltersByKind() {
	ctx := context.Background()
	programID := uuid.NewString()
	stored := &domain.TourProgram{ProgramID: programID}
	items := []domain.TourItem{
		{ItemID: "c1", ProgramID: programID, Kind: domain.TourCost},
		{ItemID: "i1", ProgramID: programID, Kind: domain.TourIncome},
	}

	suite.mockRepo.On("FindProgramByID", ctx, programID).Return(stored, nil).Once()
	suite.mockRepo.On("ListItems", ctx, programID).Return(items, nil).Once()

	incomes, err := suite.service.ListItems(ctx, programID, domain.TourIncome)

	suite.Require().NoError(err)
	suite.Require().Len(incomes, 1)
	suite.Equal("i1", incomes[0].ItemID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TourServiceTestSuite) TestProgramSummary_NetsIncomeAgainstCosts() {
	ctx := context.Background()
	programID := uuid.NewString()
	stored := &domain.TourProgram{
		ProgramID:     programID,
		Price:         decimal.NewFromInt(52000),
		BankCharge:    decimal.NewFromInt(500),
		PriceCurrency: domain.CurrencyTHB,
	}
	items := []domain.TourItem{
		{ItemID: "c1", ProgramID: programID, Kind: domain.TourCost, THB: decimal.NewFromInt(30000)},
		{ItemID: "c2", ProgramID: programID, Kind: domain.TourCost, LAK: decimal.NewFromInt(2000000)},
		{ItemID: "i1", ProgramID: programID, Kind: domain.TourIncome, THB: decimal.NewFromInt(52000)},
	}

	suite.mockRepo.On("FindProgramByID", ctx, programID).Return(stored, nil).Once()
	suite.mockRepo.On("ListItems", ctx, programID).Return(items, nil).Once()

	summary, err := suite.service.ProgramSummary(ctx, programID)

	suite.Require().NoError(err)
	suite.True(summary.Costs[domain.CurrencyTHB].Equal(decimal.NewFromInt(30000)))
	suite.True(summary.Costs[domain.CurrencyLAK].Equal(decimal.NewFromInt(2000000)))
	suite.True(summary.Income[domain.CurrencyTHB].Equal(decimal.NewFromInt(52000)))
	suite.True(summary.Net[domain.CurrencyTHB].Equal(decimal.NewFromInt(22000)))
	suite.True(summary.Net[domain.CurrencyLAK].Equal(decimal.NewFromInt(-2000000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTourServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TourServiceTestSuite))
}
