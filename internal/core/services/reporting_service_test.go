package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryReader ---
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockTripReader   *MockTripReader
	mockItemRepo     *MockItemRepository
	mockCategoryRepo *MockCategoryReader
	service          *services.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTripReader = new(MockTripReader)
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewReportingService(suite.mockTripReader, suite.mockItemRepo, suite.mockCategoryRepo)
}

func myrItem(dateTime time.Time, categoryID *string, expected, actual *decimal.Decimal) domain.ItineraryItem {
	return domain.ItineraryItem{
		TripID:      "trip-1",
		DateTime:    dateTime,
		Currency:    "MYR",
		CategoryID:  categoryID,
		MYRExpected: expected,
		MYRActual:   actual,
	}
}

func (suite *ReportingServiceTestSuite) TestTripSummary_TotalsAndBudget() {
	start := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
	budget := decimal.NewFromInt(2000)
	perDiem := decimal.NewFromInt(300)
	trip := &domain.Trip{
		TripID:     "trip-1",
		Name:       "Tokyo 2025",
		StartDate:  &start,
		EndDate:    &end,
		BudgetMYR:  &budget,
		PerDiemMYR: &perDiem,
	}
	suite.mockTripReader.On("FindTripByID", mock.Anything, "trip-1").Return(trip, nil).Once()

	day := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	suite.mockItemRepo.On("ListItemsByTrip", mock.Anything, "trip-1").Return([]domain.ItineraryItem{
		myrItem(day, nil, ptr(decimal.NewFromInt(500)), ptr(decimal.NewFromInt(450))),
		myrItem(day, nil, ptr(decimal.NewFromInt(800)), nil),
		myrItem(day, nil, nil, ptr(decimal.NewFromInt(1050))),
		myrItem(day, nil, nil, nil), // unresolved rate, contributes zero
	}, nil).Once()

	summary, err := suite.service.TripSummary(context.Background(), "trip-1")

	suite.Require().NoError(err)
	suite.True(summary.TotalExpected.Equal(decimal.NewFromInt(1300)))
	suite.True(summary.TotalActual.Equal(decimal.NewFromInt(1500)))
	suite.True(summary.Remaining.Equal(decimal.NewFromInt(-200)))

	suite.Require().NotNil(summary.BudgetRemaining)
	suite.True(summary.BudgetRemaining.Equal(decimal.NewFromInt(500)))
	suite.Require().NotNil(summary.BudgetVariance)
	suite.True(summary.BudgetVariance.Equal(decimal.NewFromInt(-500)), "under budget reads negative")

	suite.Require().NotNil(summary.TripDays)
	suite.Equal(5, *summary.TripDays, "both endpoint days count")
	suite.Require().NotNil(summary.PerDiemTotal)
	suite.True(summary.PerDiemTotal.Equal(decimal.NewFromInt(1500)))
	suite.Require().NotNil(summary.PerDiemVariance)
	suite.True(summary.PerDiemVariance.Equal(decimal.Zero))

	suite.True(summary.PercentActualLogged.Equal(decimal.NewFromInt(50)), "2 of 4 items have actuals")
}

func (suite *ReportingServiceTestSuite) TestTripSummary_SingleDayTrip() {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	trip := &domain.Trip{TripID: "trip-1", StartDate: &day, EndDate: &day}
	suite.mockTripReader.On("FindTripByID", mock.Anything, "trip-1").Return(trip, nil).Once()
	suite.mockItemRepo.On("ListItemsByTrip", mock.Anything, "trip-1").Return([]domain.ItineraryItem{}, nil).Once()

	summary, err := suite.service.TripSummary(context.Background(), "trip-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(summary.TripDays)
	suite.Equal(1, *summary.TripDays)
	suite.True(summary.PercentActualLogged.Equal(decimal.Zero))
	suite.Nil(summary.Budget)
}

func (suite *ReportingServiceTestSuite) TestByCategory_UncategorizedFallbackAndSort() {
	foodID := "cat-food"
	danglingID := "cat-gone" // category was deleted, items keep the id
	suite.mockItemRepo.On("ListItemsByTrip", mock.Anything, "trip-1").Return([]domain.ItineraryItem{
		myrItem(time.Now(), &foodID, ptr(decimal.NewFromInt(100)), ptr(decimal.NewFromInt(120))),
		myrItem(time.Now(), &foodID, ptr(decimal.NewFromInt(50)), nil),
		myrItem(time.Now(), nil, ptr(decimal.NewFromInt(30)), nil),
		myrItem(time.Now(), &danglingID, nil, ptr(decimal.NewFromInt(10))),
	}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", mock.Anything).Return([]domain.Category{
		{CategoryID: foodID, Name: "Food"},
	}, nil).Once()

	entries, err := suite.service.ByCategory(context.Background(), "trip-1")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("Food", entries[0].Category)
	suite.True(entries[0].Expected.Equal(decimal.NewFromInt(150)))
	suite.True(entries[0].Actual.Equal(decimal.NewFromInt(120)))
	suite.Equal(2, entries[0].Count)
	suite.True(entries[0].Diff.Equal(decimal.NewFromInt(-30)))

	suite.Equal("Uncategorized", entries[1].Category)
	suite.Equal(2, entries[1].Count, "unknown category ids fold into Uncategorized")
	suite.True(entries[1].Expected.Equal(decimal.NewFromInt(30)))
	suite.True(entries[1].Actual.Equal(decimal.NewFromInt(10)))
}

func (suite *ReportingServiceTestSuite) TestDailyTrend_UTCBucketsSorted() {
	// 07:30 in UTC+8 on March 16 is 23:30 UTC on March 15.
	kl := time.FixedZone("UTC+8", 8*3600)
	suite.mockItemRepo.On("ListItemsByTrip", mock.Anything, "trip-1").Return([]domain.ItineraryItem{
		myrItem(time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC), nil, ptr(decimal.NewFromInt(200)), nil),
		myrItem(time.Date(2025, 3, 16, 7, 30, 0, 0, kl), nil, ptr(decimal.NewFromInt(50)), ptr(decimal.NewFromInt(60))),
		myrItem(time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), nil, nil, ptr(decimal.NewFromInt(40))),
	}, nil).Once()

	entries, err := suite.service.DailyTrend(context.Background(), "trip-1")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("2025-03-15", entries[0].Date)
	suite.True(entries[0].Expected.Equal(decimal.NewFromInt(50)), "UTC+8 early morning folds into the prior UTC day")
	suite.True(entries[0].Actual.Equal(decimal.NewFromInt(100)))
	suite.Equal("2025-03-16", entries[1].Date)
	suite.True(entries[1].Expected.Equal(decimal.NewFromInt(200)))
}

func (suite *ReportingServiceTestSuite) TestExportRows_IncludesCategoryNames() {
	trip := &domain.Trip{TripID: "trip-1", Name: "Tokyo 2025"}
	foodID := "cat-food"
	items := []domain.ItineraryItem{
		myrItem(time.Now(), &foodID, ptr(decimal.NewFromInt(100)), nil),
	}
	suite.mockTripReader.On("FindTripByID", mock.Anything, "trip-1").Return(trip, nil).Once()
	suite.mockItemRepo.On("ListItemsByTrip", mock.Anything, "trip-1").Return(items, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", mock.Anything).Return([]domain.Category{
		{CategoryID: foodID, Name: "Food"},
	}, nil).Once()

	gotTrip, gotItems, names, err := suite.service.ExportRows(context.Background(), "trip-1")

	suite.Require().NoError(err)
	suite.Equal(trip, gotTrip)
	suite.Len(gotItems, 1)
	suite.Equal("Food", names[foodID])
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
