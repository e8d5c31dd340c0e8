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

// --- Mock TemplateRepository ---
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.ItemTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemTemplate), args.Error(1)
}

func (m *MockTemplateRepository) ListTemplatesByTrip(ctx context.Context, tripID string) ([]domain.ItemTemplate, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemTemplate), args.Error(1)
}

func (m *MockTemplateRepository) SaveTemplate(ctx context.Context, template domain.ItemTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) UpdateTemplate(ctx context.Context, template domain.ItemTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

// --- Test Suite ---
type TemplateServiceTestSuite struct {
	suite.Suite
	mockTemplateRepo *MockTemplateRepository
	mockItemRepo     *MockItemRepository
	service          *services.TemplateService
}

func (suite *TemplateServiceTestSuite) SetupTest() {
	suite.mockTemplateRepo = new(MockTemplateRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.service = services.NewTemplateService(suite.mockTemplateRepo, suite.mockItemRepo)
}

func (suite *TemplateServiceTestSuite) TestCreateTemplate_DefaultsCurrencyAndStatus() {
	var saved domain.ItemTemplate
	suite.mockTemplateRepo.On("SaveTemplate", mock.Anything, mock.AnythingOfType("domain.ItemTemplate")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ItemTemplate)
		}).Return(nil).Once()

	template, err := suite.service.CreateTemplate(context.Background(), "trip-1", dto.CreateTemplateRequest{
		Title: "Morning coffee",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(template)
	suite.Equal("MYR", saved.Currency)
	suite.Equal(domain.StatusPlanned, saved.DefaultStatus)
	suite.Equal("trip-1", saved.TripID)
}

func (suite *TemplateServiceTestSuite) TestApplyTemplate_UsesStoredRateVerbatim() {
	rate := decimal.NewFromFloat(0.03)
	cost := decimal.NewFromInt(1200)
	template := &domain.ItemTemplate{
		TemplateID:    "tpl-1",
		TripID:        "trip-1",
		Title:         "Ramen",
		ExpectedCost:  &cost,
		Currency:      "JPY",
		ExchangeRate:  &rate,
		DefaultStatus: domain.StatusPlanned,
	}
	suite.mockTemplateRepo.On("FindTemplateByID", mock.Anything, "tpl-1").Return(template, nil).Once()

	var saved domain.ItineraryItem
	suite.mockItemRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("domain.ItineraryItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ItineraryItem)
		}).Return(nil).Once()

	when := time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC)
	item, err := suite.service.ApplyTemplate(context.Background(), "trip-1", "tpl-1", dto.ApplyTemplateRequest{
		DateTime: &when,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.Equal(when, saved.DateTime)
	suite.Require().NotNil(saved.ExchangeRate)
	suite.True(saved.ExchangeRate.Equal(rate), "stored rate is copied, never re-resolved")
	suite.False(saved.AutoFx)
	suite.Require().NotNil(saved.MYRExpected)
	suite.True(saved.MYRExpected.Equal(decimal.NewFromInt(36)))
}

func (suite *TemplateServiceTestSuite) TestApplyTemplate_HomeCurrencyRoundsCost() {
	cost, _ := decimal.NewFromString("19.99999")
	template := &domain.ItemTemplate{
		TemplateID:    "tpl-1",
		TripID:        "trip-1",
		Title:         "Parking",
		ExpectedCost:  &cost,
		Currency:      "MYR",
		DefaultStatus: domain.StatusPlanned,
	}
	suite.mockTemplateRepo.On("FindTemplateByID", mock.Anything, "tpl-1").Return(template, nil).Once()

	var saved domain.ItineraryItem
	suite.mockItemRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("domain.ItineraryItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ItineraryItem)
		}).Return(nil).Once()

	_, err := suite.service.ApplyTemplate(context.Background(), "trip-1", "tpl-1", dto.ApplyTemplateRequest{})

	suite.Require().NoError(err)
	suite.Require().NotNil(saved.MYRExpected)
	expected, _ := decimal.NewFromString("20.0000")
	suite.True(saved.MYRExpected.Equal(expected))
}

func (suite *TemplateServiceTestSuite) TestApplyTemplate_ForeignCurrencyWithoutRateLeavesMYRNull() {
	cost := decimal.NewFromInt(100)
	template := &domain.ItemTemplate{
		TemplateID:    "tpl-1",
		TripID:        "trip-1",
		Title:         "Souvenirs",
		ExpectedCost:  &cost,
		Currency:      "USD",
		DefaultStatus: domain.StatusPlanned,
	}
	suite.mockTemplateRepo.On("FindTemplateByID", mock.Anything, "tpl-1").Return(template, nil).Once()

	var saved domain.ItineraryItem
	suite.mockItemRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("domain.ItineraryItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ItineraryItem)
		}).Return(nil).Once()

	item, err := suite.service.ApplyTemplate(context.Background(), "trip-1", "tpl-1", dto.ApplyTemplateRequest{})

	suite.Require().NoError(err, "applying never fails on FX grounds")
	suite.Require().NotNil(item)
	suite.Nil(saved.MYRExpected)
	suite.Nil(saved.ExchangeRate)
}

func (suite *TemplateServiceTestSuite) TestApplyTemplate_WrongTripRejected() {
	template := &domain.ItemTemplate{
		TemplateID: "tpl-1",
		TripID:     "trip-other",
		Title:      "Ramen",
		Currency:   "JPY",
	}
	suite.mockTemplateRepo.On("FindTemplateByID", mock.Anything, "tpl-1").Return(template, nil).Once()

	item, err := suite.service.ApplyTemplate(context.Background(), "trip-1", "tpl-1", dto.ApplyTemplateRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(item)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem")
}

func (suite *TemplateServiceTestSuite) TestApplyTemplate_CostOverrideWins() {
	rate := decimal.NewFromFloat(4.5)
	cost := decimal.NewFromInt(100)
	template := &domain.ItemTemplate{
		TemplateID:    "tpl-1",
		TripID:        "trip-1",
		Title:         "Hotel night",
		ExpectedCost:  &cost,
		Currency:      "USD",
		ExchangeRate:  &rate,
		DefaultStatus: domain.StatusBooked,
	}
	suite.mockTemplateRepo.On("FindTemplateByID", mock.Anything, "tpl-1").Return(template, nil).Once()

	var saved domain.ItineraryItem
	suite.mockItemRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("domain.ItineraryItem")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ItineraryItem)
		}).Return(nil).Once()

	override := decimal.NewFromInt(200)
	newStatus := "Completed"
	_, err := suite.service.ApplyTemplate(context.Background(), "trip-1", "tpl-1", dto.ApplyTemplateRequest{
		ExpectedCostOverride: &override,
		StatusOverride:       &newStatus,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(saved.MYRExpected)
	suite.True(saved.MYRExpected.Equal(decimal.NewFromInt(900)))
	suite.Equal(domain.StatusCompleted, saved.Status)
}

func TestTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateServiceTestSuite))
}
