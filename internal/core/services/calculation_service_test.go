package services_test

import (
	"context"
	"testing"

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

// --- Mock CalculationRepository ---
type MockCalculationRepository struct {
	mock.Mock
}

func (m *MockCalculationRepository) FindCalculationByID(ctx context.Context, calculationID string) (*domain.SavedCalculation, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedCalculation), args.Error(1)
}

func (m *MockCalculationRepository) ListCalculations(ctx context.Context) ([]domain.SavedCalculation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedCalculation), args.Error(1)
}

func (m *MockCalculationRepository) SaveCalculation(ctx context.Context, calc domain.SavedCalculation) error {
	args := m.Called(ctx, calc)
	return args.Error(0)
}

func (m *MockCalculationRepository) DeleteCalculation(ctx context.Context, calculationID string) error {
	args := m.Called(ctx, calculationID)
	return args.Error(0)
}

// --- Test Suite ---
type CalculationServiceTestSuite struct {
	suite.Suite
	mockCalcRepo *MockCalculationRepository
	mockRateRepo *MockExchangeRateRepository
	service      portssvc.CalculationSvcFacade
}

func (suite *CalculationServiceTestSuite) SetupTest() {
	suite.mockCalcRepo = new(MockCalculationRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewCalculationService(suite.mockCalcRepo, suite.mockRateRepo)
}

func (suite *CalculationServiceTestSuite) TestSaveCalculation_KeepsCreationAudit() {
	ctx := context.Background()
	calcID := uuid.NewString()
	existing := &domain.SavedCalculation{
		CalculationID: calcID,
		AuditFields:   domain.AuditFields{CreatedBy: "author"},
	}
	req := dto.SaveCalculationRequest{
		TourInfo:      domain.TourInfo{Code: "LPB-4D", Destination: "Luang Prabang", Pax: 12},
		MarkupPercent: decimal.NewFromInt(15),
	}

	suite.mockCalcRepo.On("FindCalculationByID", ctx, calcID).Return(existing, nil).Once()
	suite.mockCalcRepo.On("SaveCalculation", ctx, mock.MatchedBy(func(c domain.SavedCalculation) bool {
		return c.CalculationID == calcID && c.CreatedBy == "author" && c.LastUpdatedBy == "editor"
	})).Return(nil).Once()

	calc, err := suite.service.SaveCalculation(ctx, calcID, req, "editor")

	suite.Require().NoError(err)
	suite.Equal("author", calc.CreatedBy)
	suite.Equal("editor", calc.LastUpdatedBy)
	suite.mockCalcRepo.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestSaveCalculation_NegativeShareholder() {
	ctx := context.Background()
	req := dto.SaveCalculationRequest{
		Shareholders: []domain.Shareholder{{Name: "A", Percentage: decimal.NewFromFloat(-0.1)}},
	}

	calc, err := suite.service.SaveCalculation(ctx, uuid.NewString(), req, "tester")

	suite.Require().Error(err)
	suite.Nil(calc)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CalculationServiceTestSuite) TestQuote_ConvertsAndSplits() {
	ctx := context.Background()
	calcID := uuid.NewString()
	calc := &domain.SavedCalculation{
		CalculationID: calcID,
		AllCosts: domain.AllCosts{
			Meals: []domain.MealLine{{
				Currency:     "THB",
				Breakfast:    1,
				Lunch:        1,
				Dinner:       1,
				PricePerMeal: decimal.NewFromInt(100),
				Pax:          2,
			}},
		},
		MarkupPercent:  decimal.NewFromInt(10),
		TargetCurrency: "LAK",
		Shareholders: []domain.Shareholder{
			{Name: "A", Percentage: decimal.NewFromFloat(0.5)},
			{Name: "B", Percentage: decimal.NewFromFloat(0.5)},
		},
	}
	rates := []domain.ExchangeRate{
		{FromCurrencyCode: "THB", ToCurrencyCode: "LAK", Rate: decimal.NewFromInt(600)},
	}

	suite.mockCalcRepo.On("FindCalculationByID", ctx, calcID).Return(calc, nil).Once()
	suite.mockRateRepo.On("ListRates", ctx).Return(rates, nil).Once()

	// 3 meals x 100 THB x 2 pax = 600 THB -> 360000 LAK; +10% markup.
	quote, err := suite.service.Quote(ctx, calcID, "")

	suite.Require().NoError(err)
	suite.Equal("LAK", quote.TargetCurrency)
	suite.True(quote.ConvertedTotal.Equal(decimal.NewFromInt(360000)))
	suite.True(quote.SellingPrice.Equal(decimal.NewFromInt(396000)))
	suite.True(quote.Profit.Equal(decimal.NewFromInt(36000)))
	suite.Require().Len(quote.Dividends.Rows, 2)
	suite.True(quote.Dividends.Rows[0].Shares.Get("LAK").Equal(decimal.NewFromInt(18000)))
	suite.mockCalcRepo.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CalculationServiceTestSuite) TestQuote_MissingRateFailsFast() {
	ctx := context.Background()
	calcID := uuid.NewString()
	calc := &domain.SavedCalculation{
		CalculationID: calcID,
		AllCosts: domain.AllCosts{
			Documents: []domain.DocumentLine{{
				Currency: "USD",
				Pax:      4,
				Price:    decimal.NewFromInt(50),
			}},
		},
		TargetCurrency: "LAK",
	}

	suite.mockCalcRepo.On("FindCalculationByID", ctx, calcID).Return(calc, nil).Once()
	suite.mockRateRepo.On("ListRates", ctx).Return([]domain.ExchangeRate{}, nil).Once()

	quote, err := suite.service.Quote(ctx, calcID, "")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrMissingRate)
}

func (suite *CalculationServiceTestSuite) TestQuote_NoTargetAnywhere() {
	ctx := context.Background()
	calcID := uuid.NewString()
	calc := &domain.SavedCalculation{CalculationID: calcID}

	suite.mockCalcRepo.On("FindCalculationByID", ctx, calcID).Return(calc, nil).Once()

	quote, err := suite.service.Quote(ctx, calcID, "")

	suite.Require().Error(err)
	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "ListRates", mock.Anything)
}

func TestCalculationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalculationServiceTestSuite))
}
