package services_test

import (
	"context"
	"testing"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/core/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) UpsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencyRepo)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertExchangeRate_Success() {
	ctx := context.Background()
	req := dto.UpsertExchangeRateRequest{
		FromCurrencyCode: "THB",
		ToCurrencyCode:   "LAK",
		Rate:             decimal.NewFromInt(600),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "THB").Return(&domain.Currency{CurrencyCode: "THB"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "LAK").Return(&domain.Currency{CurrencyCode: "LAK"}, nil).Once()
	suite.mockRateRepo.On("UpsertRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.FromCurrencyCode == "THB" && r.ToCurrencyCode == "LAK" && r.Rate.Equal(decimal.NewFromInt(600))
	})).Return(nil).Once()

	rate, err := suite.service.UpsertExchangeRate(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.NotEmpty(rate.ExchangeRateID)
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertExchangeRate_NonPositiveRate() {
	ctx := context.Background()
	req := dto.UpsertExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "LAK",
		Rate:             decimal.Zero,
	}

	rate, err := suite.service.UpsertExchangeRate(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertExchangeRate_IdentityMustBeOne() {
	ctx := context.Background()
	req := dto.UpsertExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromInt(2),
	}

	rate, err := suite.service.UpsertExchangeRate(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertExchangeRate_UnknownCurrency() {
	ctx := context.Background()
	req := dto.UpsertExchangeRateRequest{
		FromCurrencyCode: "XXX",
		ToCurrencyCode:   "LAK",
		Rate:             decimal.NewFromInt(10),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.UpsertExchangeRate(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertRate", mock.Anything, mock.Anything)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
