package services_test

import (
	"context"
	"testing"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/core/services"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	MockCategoryReader
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SeedDefaultCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          *services.CategoryService
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_MarksCustom() {
	var saved domain.Category
	suite.mockCategoryRepo.On("SaveCategory", mock.Anything, mock.AnythingOfType("domain.Category")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Category)
		}).Return(nil).Once()

	category, err := suite.service.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "Onsen"})

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.True(saved.Custom)
	suite.Equal("Onsen", saved.Name)
	suite.NotEmpty(saved.CategoryID)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateSurfaces() {
	suite.mockCategoryRepo.On("SaveCategory", mock.Anything, mock.AnythingOfType("domain.Category")).
		Return(apperrors.NewAppError(409, "category name already exists", apperrors.ErrDuplicate)).Once()

	category, err := suite.service.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "Food"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(category)
}

func (suite *CategoryServiceTestSuite) TestEnsureDefaultCategories_SeedsBuiltInSet() {
	suite.mockCategoryRepo.On("SeedDefaultCategories", mock.Anything, mock.MatchedBy(func(cats []domain.Category) bool {
		if len(cats) != len(domain.DefaultCategoryNames) {
			return false
		}
		for i, c := range cats {
			if c.Name != domain.DefaultCategoryNames[i] || c.Custom || c.CategoryID == "" {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	err := suite.service.EnsureDefaultCategories(context.Background())

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
