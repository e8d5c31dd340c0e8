package services_test

import (
	"context"
	"testing"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/core/services"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TripRepository ---
type MockTripRepository struct {
	MockTripReader
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	args := m.Called(ctx, tripID)
	return args.Error(0)
}

// --- Test Suite ---
type TripServiceTestSuite struct {
	suite.Suite
	mockTripRepo *MockTripRepository
	service      *services.TripService
}

func (suite *TripServiceTestSuite) SetupTest() {
	suite.mockTripRepo = new(MockTripRepository)
	suite.service = services.NewTripService(suite.mockTripRepo)
}

func (suite *TripServiceTestSuite) TestCreateTrip_DefaultsDisplayCurrency() {
	var saved domain.Trip
	suite.mockTripRepo.On("SaveTrip", mock.Anything, mock.AnythingOfType("domain.Trip")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Trip)
		}).Return(nil).Once()

	trip, err := suite.service.CreateTrip(context.Background(), dto.CreateTripRequest{Name: "Tokyo 2025"})

	suite.Require().NoError(err)
	suite.Require().NotNil(trip)
	suite.Equal("MYR", saved.Currency)
	suite.NotEmpty(saved.TripID)
}

func (suite *TripServiceTestSuite) TestCreateTrip_UppercasesCurrency() {
	var saved domain.Trip
	suite.mockTripRepo.On("SaveTrip", mock.Anything, mock.AnythingOfType("domain.Trip")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Trip)
		}).Return(nil).Once()

	_, err := suite.service.CreateTrip(context.Background(), dto.CreateTripRequest{Name: "Tokyo 2025", Currency: "jpy"})

	suite.Require().NoError(err)
	suite.Equal("JPY", saved.Currency)
}

func (suite *TripServiceTestSuite) TestUpdateTrip_PartialFields() {
	budget := decimal.NewFromInt(2000)
	existing := &domain.Trip{TripID: "trip-1", Name: "Tokyo 2025", Currency: "JPY", BudgetMYR: &budget}
	suite.mockTripRepo.On("FindTripByID", mock.Anything, "trip-1").Return(existing, nil).Once()

	var updated domain.Trip
	suite.mockTripRepo.On("UpdateTrip", mock.Anything, mock.AnythingOfType("domain.Trip")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Trip)
		}).Return(nil).Once()

	name := "Tokyo spring 2025"
	trip, err := suite.service.UpdateTrip(context.Background(), "trip-1", dto.UpdateTripRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal("Tokyo spring 2025", updated.Name)
	suite.Equal("JPY", updated.Currency, "untouched fields survive")
	suite.Require().NotNil(trip.BudgetMYR)
	suite.True(trip.BudgetMYR.Equal(budget))
}

func (suite *TripServiceTestSuite) TestDeleteTrip_NotFound() {
	suite.mockTripRepo.On("FindTripByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("trip not found")).Once()

	err := suite.service.DeleteTrip(context.Background(), "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTripRepo.AssertNotCalled(suite.T(), "DeleteTrip")
}

func (suite *TripServiceTestSuite) TestListTrips_PassesThroughTotals() {
	trips := []domain.TripWithTotals{
		{Trip: domain.Trip{TripID: "trip-1"}, TotalExpected: decimal.NewFromInt(1300), TotalActual: decimal.NewFromInt(1500)},
	}
	suite.mockTripRepo.On("ListTripsWithTotals", mock.Anything).Return(trips, nil).Once()

	got, err := suite.service.ListTrips(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].TotalActual.Equal(decimal.NewFromInt(1500)))
}

func TestTripServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TripServiceTestSuite))
}

// --- BudgetService ---

type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.CategoryBudget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryBudget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByTrip(ctx context.Context, tripID string) ([]domain.CategoryBudget, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryBudget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.CategoryBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudgetLimit(ctx context.Context, budgetID string, limitMYR decimal.Decimal) error {
	args := m.Called(ctx, budgetID, limitMYR)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockTripReader *MockTripReader
	service        *services.BudgetService
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockTripReader = new(MockTripReader)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockTripReader)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RejectsNonPositiveLimit() {
	suite.mockTripReader.On("FindTripByID", mock.Anything, "trip-1").
		Return(&domain.Trip{TripID: "trip-1"}, nil).Once()

	budget, err := suite.service.CreateBudget(context.Background(), "trip-1", dto.CreateBudgetRequest{
		CategoryID: "cat-food",
		LimitMYR:   decimal.Zero,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(budget)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget")
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Succeeds() {
	suite.mockTripReader.On("FindTripByID", mock.Anything, "trip-1").
		Return(&domain.Trip{TripID: "trip-1"}, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", mock.Anything, mock.MatchedBy(func(b domain.CategoryBudget) bool {
		return b.TripID == "trip-1" && b.CategoryID == "cat-food" && b.LimitMYR.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	budget, err := suite.service.CreateBudget(context.Background(), "trip-1", dto.CreateBudgetRequest{
		CategoryID: "cat-food",
		LimitMYR:   decimal.NewFromInt(500),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_ChangesLimit() {
	existing := &domain.CategoryBudget{BudgetID: "budget-1", TripID: "trip-1", LimitMYR: decimal.NewFromInt(500)}
	suite.mockBudgetRepo.On("FindBudgetByID", mock.Anything, "budget-1").Return(existing, nil).Once()
	suite.mockBudgetRepo.On("UpdateBudgetLimit", mock.Anything, "budget-1", decimal.NewFromInt(750)).Return(nil).Once()

	budget, err := suite.service.UpdateBudget(context.Background(), "budget-1", dto.UpdateBudgetRequest{
		LimitMYR: decimal.NewFromInt(750),
	})

	suite.Require().NoError(err)
	suite.True(budget.LimitMYR.Equal(decimal.NewFromInt(750)))
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
