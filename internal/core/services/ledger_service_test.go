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

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, vertical domain.Vertical, from, to *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, vertical, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock SummaryRepository ---
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) FindSummaryByVertical(ctx context.Context, vertical domain.Vertical) (*domain.AccountSummary, error) {
	args := m.Called(ctx, vertical)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountSummary), args.Error(1)
}

func (m *MockSummaryRepository) SaveSummary(ctx context.Context, summary domain.AccountSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockSummaryRepo *MockSummaryRepository
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockSummaryRepo = new(MockSummaryRepository)
	suite.service = services.NewLedgerService(suite.mockTxnRepo, suite.mockSummaryRepo)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Date:        time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
		EntryType:   domain.Income,
		Description: "Sold 2 rice cookers",
		Amounts:     map[string]decimal.Decimal{"LAK": decimal.NewFromInt(500000)},
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Vertical == domain.VerticalAppliance &&
			t.EntryType == domain.Income &&
			t.Date.Equal(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)) &&
			t.CreatedBy == actorID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, domain.VerticalAppliance, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.True(txn.Amounts.Get("LAK").Equal(decimal.NewFromInt(500000)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		EntryType:   domain.Expense,
		Description: "bad",
		Amounts:     map[string]decimal.Decimal{"THB": decimal.NewFromInt(-100)},
	}

	txn, err := suite.service.CreateTransaction(ctx, domain.VerticalMeat, req, "tester")

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetTransaction_WrongVertical() {
	ctx := context.Background()
	txnID := uuid.NewString()
	stored := &domain.Transaction{TransactionID: txnID, Vertical: domain.VerticalMeat}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(stored, nil).Once()

	txn, err := suite.service.GetTransaction(ctx, domain.VerticalAppliance, txnID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestMonthlySummary_RollsForward() {
	ctx := context.Background()
	month := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	lak := func(n int64) domain.MoneyMap {
		return domain.MoneyMap{"LAK": decimal.NewFromInt(n)}
	}
	txns := []domain.Transaction{
		{Date: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC), EntryType: domain.Income, Amounts: lak(1000)},
		{Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), EntryType: domain.Income, Amounts: lak(700)},
		{Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), EntryType: domain.Expense, Amounts: lak(300)},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, domain.VerticalAgriculture, (*time.Time)(nil), mock.MatchedBy(func(to *time.Time) bool {
		return to != nil && to.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	})).Return(txns, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, domain.VerticalAgriculture, month)

	suite.Require().NoError(err)
	suite.True(summary.BroughtForward.Get("LAK").Equal(decimal.NewFromInt(1000)))
	suite.True(summary.NetProfit.Get("LAK").Equal(decimal.NewFromInt(400)))
	suite.True(summary.EndingBalance.Get("LAK").Equal(decimal.NewFromInt(1400)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetAccountSummary_DefaultsWhenMissing() {
	ctx := context.Background()

	suite.mockSummaryRepo.On("FindSummaryByVertical", ctx, domain.VerticalTourism).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.GetAccountSummary(ctx, domain.VerticalTourism)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(domain.VerticalTourism, summary.Vertical)
	suite.True(summary.Capital.IsZero())
	suite.mockSummaryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestMergeAccountSummary_PartialPatch() {
	ctx := context.Background()
	actorID := uuid.NewString()
	existing := &domain.AccountSummary{
		Vertical: domain.VerticalAutoparts,
		Capital:  domain.MoneyMap{"LAK": decimal.NewFromInt(1000)},
		Cash:     domain.MoneyMap{"LAK": decimal.NewFromInt(200)},
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			CreatedBy: "someone",
		},
	}
	req := dto.UpdateAccountSummaryRequest{
		Cash: map[string]decimal.Decimal{"LAK": decimal.NewFromInt(900)},
	}

	suite.mockSummaryRepo.On("FindSummaryByVertical", ctx, domain.VerticalAutoparts).Return(existing, nil).Once()
	suite.mockSummaryRepo.On("SaveSummary", ctx, mock.MatchedBy(func(s domain.AccountSummary) bool {
		return s.Cash.Get("LAK").Equal(decimal.NewFromInt(900)) &&
			s.Capital.Get("LAK").Equal(decimal.NewFromInt(1000)) &&
			s.CreatedBy == "someone" &&
			s.LastUpdatedBy == actorID
	})).Return(nil).Once()

	summary, err := suite.service.MergeAccountSummary(ctx, domain.VerticalAutoparts, req, actorID)

	suite.Require().NoError(err)
	suite.True(summary.Cash.Get("LAK").Equal(decimal.NewFromInt(900)))
	suite.mockSummaryRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
