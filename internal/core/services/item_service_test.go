package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/core/services"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ItemRepository ---
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, tripID, itemID string) (*domain.ItineraryItem, error) {
	args := m.Called(ctx, tripID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItineraryItem), args.Error(1)
}

func (m *MockItemRepository) ListItemsByTrip(ctx context.Context, tripID string) ([]domain.ItineraryItem, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItineraryItem), args.Error(1)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.ItineraryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.ItineraryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) SetItemDeleted(ctx context.Context, itemID string, deletedAt *time.Time) error {
	args := m.Called(ctx, itemID, deletedAt)
	return args.Error(0)
}

// --- Mock TripReader ---
type MockTripReader struct {
	mock.Mock
}

func (m *MockTripReader) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripReader) ListTripsWithTotals(ctx context.Context) ([]domain.TripWithTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripWithTotals), args.Error(1)
}

// --- Test Suite ---
// The conversion service under the item service is real; only its rate
// sources (override repo, live provider) are substituted.
type ItemServiceTestSuite struct {
	suite.Suite
	mockItemRepo     *MockItemRepository
	mockTripReader   *MockTripReader
	mockOverrideRepo *MockFxOverrideRepository
	liveProvider     *stubLiveProvider
	service          *services.ItemService
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockTripReader = new(MockTripReader)
	suite.mockOverrideRepo = new(MockFxOverrideRepository)
	suite.liveProvider = &stubLiveProvider{rates: map[string]decimal.Decimal{}}
	conversion := services.NewConversionService(suite.mockOverrideRepo, suite.liveProvider)
	suite.service = services.NewItemService(suite.mockItemRepo, suite.mockTripReader, conversion)
}

func (suite *ItemServiceTestSuite) expectTrip(tripID string) {
	suite.mockTripReader.On("FindTripByID", mock.Anything, tripID).
		Return(&domain.Trip{TripID: tripID, Name: "Tokyo 2025"}, nil)
}

func (suite *ItemServiceTestSuite) TestCreateItem_LiveRateDerivesMYR() {
	suite.expectTrip("trip-1")
	suite.liveProvider.rates["USD"] = decimal.NewFromFloat(4.5)
	suite.mockOverrideRepo.On("FindOverride", mock.Anything, mock.Anything, "USD").
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.ItineraryItem
	suite.mockItemRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("domain.ItineraryItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ItineraryItem)
		}).Return(nil).Once()

	item, err := suite.service.CreateItem(context.Background(), "trip-1", dto.CreateItemRequest{
		Title:        "Hotel deposit",
		DateTime:     time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		Currency:     "usd",
		ExpectedCost: ptr(decimal.NewFromInt(100)),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.Equal("USD", saved.Currency)
	suite.True(saved.AutoFx)
	suite.Require().NotNil(saved.ExchangeRate)
	suite.True(saved.ExchangeRate.Equal(decimal.NewFromFloat(4.5)))
	suite.Require().NotNil(saved.MYRExpected)
	suite.True(saved.MYRExpected.Equal(decimal.NewFromInt(450)))
	suite.Nil(saved.MYRActual, "no actual cost, no derived actual")
	suite.Equal(domain.StatusPlanned, saved.Status)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_OverrideSkipsLiveChain() {
	suite.expectTrip("trip-1")
	itemDate := time.Date(2025, 3, 15, 21, 0, 0, 0, time.UTC)
	dateOnly := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.mockOverrideRepo.On("FindOverride", mock.Anything, dateOnly, "JPY").
		Return(&domain.FxRateOverride{Date: dateOnly, Currency: "JPY", Rate: decimal.NewFromFloat(0.03)}, nil).Once()

	var saved domain.ItineraryItem
	suite.mockItemRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("domain.ItineraryItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ItineraryItem)
		}).Return(nil).Once()

	_, err := suite.service.CreateItem(context.Background(), "trip-1", dto.CreateItemRequest{
		Title:      "Ramen",
		DateTime:   itemDate,
		Currency:   "JPY",
		ActualCost: ptr(decimal.NewFromInt(1200)),
	})

	suite.Require().NoError(err)
	suite.Zero(suite.liveProvider.calls)
	suite.False(saved.AutoFx, "pinned rates count as manual")
	suite.Require().NotNil(saved.MYRActual)
	suite.True(saved.MYRActual.Equal(decimal.NewFromInt(36)))
}

func (suite *ItemServiceTestSuite) TestCreateItem_UnresolvableRateRejected() {
	suite.expectTrip("trip-1")
	suite.mockOverrideRepo.On("FindOverride", mock.Anything, mock.Anything, "XYZ").
		Return(nil, apperrors.ErrNotFound).Once()

	item, err := suite.service.CreateItem(context.Background(), "trip-1", dto.CreateItemRequest{
		Title:        "Mystery fee",
		DateTime:     time.Now(),
		Currency:     "XYZ",
		ExpectedCost: ptr(decimal.NewFromInt(50)),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLiveFxUnavailable)
	suite.Nil(item)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem")
}

func (suite *ItemServiceTestSuite) TestCreateItem_NegativeCostRejected() {
	suite.expectTrip("trip-1")

	_, err := suite.service.CreateItem(context.Background(), "trip-1", dto.CreateItemRequest{
		Title:        "Refund",
		DateTime:     time.Now(),
		Currency:     "USD",
		ExpectedCost: ptr(decimal.NewFromInt(-5)),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem")
}

func (suite *ItemServiceTestSuite) TestCreateItem_TripNotFound() {
	suite.mockTripReader.On("FindTripByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("trip not found")).Once()

	_, err := suite.service.CreateItem(context.Background(), "missing", dto.CreateItemRequest{
		Title:    "Anything",
		DateTime: time.Now(),
		Currency: "MYR",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NotesOnlyKeepsPriorRate() {
	rate := decimal.NewFromFloat(4.5)
	cost := decimal.NewFromInt(100)
	existing := &domain.ItineraryItem{
		ItemID:       "item-1",
		TripID:       "trip-1",
		Title:        "Hotel deposit",
		DateTime:     time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		Currency:     "USD",
		ExpectedCost: &cost,
		ExchangeRate: &rate,
		AutoFx:       true,
		Status:       domain.StatusPlanned,
	}
	suite.mockItemRepo.On("FindItemByID", mock.Anything, "trip-1", "item-1").Return(existing, nil).Once()

	var updated domain.ItineraryItem
	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.AnythingOfType("domain.ItineraryItem")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.ItineraryItem)
		}).Return(nil).Once()

	notes := "pay at check-in"
	_, err := suite.service.UpdateItem(context.Background(), "trip-1", "item-1", dto.UpdateItemRequest{Notes: &notes})

	suite.Require().NoError(err)
	suite.Zero(suite.liveProvider.calls, "no rate lookup when the currency is unchanged")
	suite.mockOverrideRepo.AssertNotCalled(suite.T(), "FindOverride")
	suite.Require().NotNil(updated.ExchangeRate)
	suite.True(updated.ExchangeRate.Equal(rate))
	suite.True(updated.AutoFx)
	suite.Equal("pay at check-in", updated.Notes)
	suite.Require().NotNil(updated.MYRExpected)
	suite.True(updated.MYRExpected.Equal(decimal.NewFromInt(450)))
}

func (suite *ItemServiceTestSuite) TestUpdateItem_CurrencyChangeUnresolvableStoresNulls() {
	rate := decimal.NewFromFloat(4.5)
	cost := decimal.NewFromInt(100)
	existing := &domain.ItineraryItem{
		ItemID:       "item-1",
		TripID:       "trip-1",
		Title:        "Hotel deposit",
		DateTime:     time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC),
		Currency:     "USD",
		ExpectedCost: &cost,
		ExchangeRate: &rate,
		AutoFx:       true,
		Status:       domain.StatusPlanned,
	}
	suite.mockItemRepo.On("FindItemByID", mock.Anything, "trip-1", "item-1").Return(existing, nil).Once()
	suite.mockOverrideRepo.On("FindOverride", mock.Anything, mock.Anything, "XYZ").
		Return(nil, apperrors.ErrNotFound).Once()

	var updated domain.ItineraryItem
	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.AnythingOfType("domain.ItineraryItem")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.ItineraryItem)
		}).Return(nil).Once()

	newCur := "XYZ"
	item, err := suite.service.UpdateItem(context.Background(), "trip-1", "item-1", dto.UpdateItemRequest{Currency: &newCur})

	suite.Require().NoError(err, "updates persist even when no rate is resolvable")
	suite.Require().NotNil(item)
	suite.Equal("XYZ", updated.Currency)
	suite.Nil(updated.ExchangeRate)
	suite.Nil(updated.MYRExpected)
	suite.Nil(updated.MYRActual)
	suite.False(updated.AutoFx)
}

func (suite *ItemServiceTestSuite) TestDeleteItem_AlreadyDeletedIsNoOp() {
	deletedAt := time.Now().Add(-time.Hour)
	existing := &domain.ItineraryItem{
		ItemID:    "item-1",
		TripID:    "trip-1",
		DeletedAt: &deletedAt,
	}
	suite.mockItemRepo.On("FindItemByID", mock.Anything, "trip-1", "item-1").Return(existing, nil).Once()

	err := suite.service.DeleteItem(context.Background(), "trip-1", "item-1")

	suite.Require().NoError(err)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SetItemDeleted")
}

func (suite *ItemServiceTestSuite) TestDeleteItem_MarksDeleted() {
	existing := &domain.ItineraryItem{ItemID: "item-1", TripID: "trip-1"}
	suite.mockItemRepo.On("FindItemByID", mock.Anything, "trip-1", "item-1").Return(existing, nil).Once()
	suite.mockItemRepo.On("SetItemDeleted", mock.Anything, "item-1", mock.MatchedBy(func(t *time.Time) bool {
		return t != nil
	})).Return(nil).Once()

	err := suite.service.DeleteItem(context.Background(), "trip-1", "item-1")

	suite.Require().NoError(err)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestRestoreItem_LiveItemReturnedUnchanged() {
	existing := &domain.ItineraryItem{ItemID: "item-1", TripID: "trip-1", Title: "Ramen"}
	suite.mockItemRepo.On("FindItemByID", mock.Anything, "trip-1", "item-1").Return(existing, nil).Once()

	item, err := suite.service.RestoreItem(context.Background(), "trip-1", "item-1")

	suite.Require().NoError(err)
	suite.Equal(existing, item)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SetItemDeleted")
}

func (suite *ItemServiceTestSuite) TestRestoreItem_ClearsDeletionMarker() {
	deletedAt := time.Now().Add(-time.Hour)
	existing := &domain.ItineraryItem{
		ItemID:    "item-1",
		TripID:    "trip-1",
		DeletedAt: &deletedAt,
	}
	suite.mockItemRepo.On("FindItemByID", mock.Anything, "trip-1", "item-1").Return(existing, nil).Once()
	suite.mockItemRepo.On("SetItemDeleted", mock.Anything, "item-1", (*time.Time)(nil)).Return(nil).Once()

	item, err := suite.service.RestoreItem(context.Background(), "trip-1", "item-1")

	suite.Require().NoError(err)
	suite.Nil(item.DeletedAt)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
