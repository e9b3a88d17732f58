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

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindItemByID(ctx context.Context, itemID string) (*domain.StockItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockRepository) ListItems(ctx context.Context, vertical domain.Vertical) ([]domain.StockItem, error) {
	args := m.Called(ctx, vertical)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockItem), args.Error(1)
}

func (m *MockStockRepository) ListLogsByItem(ctx context.Context, itemID string) ([]domain.StockLog, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLog), args.Error(1)
}

func (m *MockStockRepository) ListLogsByVertical(ctx context.Context, vertical domain.Vertical) ([]domain.StockLog, error) {
	args := m.Called(ctx, vertical)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLog), args.Error(1)
}

func (m *MockStockRepository) SaveItem(ctx context.Context, item domain.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateItem(ctx context.Context, item domain.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockStockRepository) AdjustStock(ctx context.Context, log domain.StockLog) (*domain.StockItem, error) {
	args := m.Called(ctx, log)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStockRepository
	service  portssvc.StockSvcFacade
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStockRepository)
	suite.service = services.NewStockService(suite.mockRepo)
}

func (suite *StockServiceTestSuite) TestCreateItem_WithOpeningStock() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := dto.CreateStockItemRequest{
		SKU:          "RC-01",
		Name:         "Rice cooker 1.8L",
		PackageSize:  6,
		CostPrice:    decimal.NewFromInt(250000),
		SellingPrice: decimal.NewFromInt(320000),
		OpeningStock: 24,
	}

	suite.mockRepo.On("SaveItem", ctx, mock.MatchedBy(func(i domain.StockItem) bool {
		return i.SKU == "RC-01" && i.CurrentStock == 0 && i.Vertical == domain.VerticalAppliance
	})).Return(nil).Once()
	suite.mockRepo.On("AdjustStock", ctx, mock.MatchedBy(func(l domain.StockLog) bool {
		return l.MovementType == domain.StockIn && l.Change == 24
	})).Return(&domain.StockItem{SKU: "RC-01", CurrentStock: 24}, nil).Once()

	item, err := suite.service.CreateItem(ctx, domain.VerticalAppliance, req, actorID)

	suite.Require().NoError(err)
	suite.Equal(int64(24), item.CurrentStock)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestCreateItem_PlaceholderNoOpeningStock() {
	ctx := context.Background()
	req := dto.CreateStockItemRequest{
		SKU:  "BATCH-3",
		Name: "Pork belly round 3",
	}

	suite.mockRepo.On("SaveItem", ctx, mock.MatchedBy(func(i domain.StockItem) bool {
		return i.PackageSize == 0 && i.IsPlaceholder()
	})).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, domain.VerticalMeat, req, "tester")

	suite.Require().NoError(err)
	suite.True(item.IsPlaceholder())
	suite.mockRepo.AssertNotCalled(suite.T(), "AdjustStock", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAdjust_SaleNegatesQuantity() {
	ctx := context.Background()
	itemID := uuid.NewString()
	stored := &domain.StockItem{ItemID: itemID, Vertical: domain.VerticalAppliance, CurrentStock: 10}

	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(stored, nil).Once()
	suite.mockRepo.On("AdjustStock", ctx, mock.MatchedBy(func(l domain.StockLog) bool {
		return l.ItemID == itemID && l.MovementType == domain.Sale && l.Change == -4
	})).Return(&domain.StockItem{ItemID: itemID, CurrentStock: 6}, nil).Once()

	item, err := suite.service.Adjust(ctx, domain.VerticalAppliance, itemID, dto.AdjustStockRequest{
		MovementType: domain.Sale,
		Quantity:     4,
		Detail:       "Walk-in sale",
	}, "tester")

	suite.Require().NoError(err)
	suite.Equal(int64(6), item.CurrentStock)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAdjust_InsufficientStock() {
	ctx := context.Background()
	itemID := uuid.NewString()
	stored := &domain.StockItem{ItemID: itemID, Vertical: domain.VerticalAppliance, CurrentStock: 2}

	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(stored, nil).Once()
	suite.mockRepo.On("AdjustStock", ctx, mock.AnythingOfType("domain.StockLog")).Return(nil, apperrors.ErrInsufficientStock).Once()

	item, err := suite.service.Adjust(ctx, domain.VerticalAppliance, itemID, dto.AdjustStockRequest{
		MovementType: domain.Sale,
		Quantity:     5,
	}, "tester")

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestMovementReport_FiltersByBatch() {
	ctx := context.Background()
	month := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []domain.StockItem{
		{ItemID: "a", Vertical: domain.VerticalMeat, Name: "Belly", PackageSize: 1, CostPrice: decimal.NewFromInt(100)},
		{ItemID: "b", Vertical: domain.VerticalMeat, Name: "Ribs", PackageSize: 1, CostPrice: decimal.NewFromInt(100)},
	}
	logs := []domain.StockLog{
		{ItemID: "a", MovementType: domain.StockIn, Change: 10, Detail: "round 1 delivery", CreatedAt: month},
		{ItemID: "b", MovementType: domain.StockIn, Change: 5, Detail: "round 2 delivery", CreatedAt: month},
	}

	suite.mockRepo.On("ListItems", ctx, domain.VerticalMeat).Return(items, nil).Once()
	suite.mockRepo.On("ListLogsByVertical", ctx, domain.VerticalMeat).Return(logs, nil).Once()

	report, err := suite.service.MovementReport(ctx, domain.VerticalMeat, month, "round 1")

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.Equal("a", report.Rows[0].ItemID)
	suite.Require().Len(report.Batches, 1)
	suite.Equal("round 1", report.Batches[0].Batch)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
