package services_test

import (
	"context"
	"testing"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/core/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "CNY",
		Symbol:       "¥",
		Name:         "Chinese Yuan",
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "CNY").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "CNY" && c.Symbol == "¥" && c.CreatedBy == "tester"
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Equal("CNY", currency.CurrencyCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "LAK",
		Symbol:       "₭",
		Name:         "Lao Kip",
	}

	suite.mockRepo.On("FindCurrencyByCode", ctx, "LAK").Return(&domain.Currency{CurrencyCode: "LAK"}, nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, "tester")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyNotNil() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
