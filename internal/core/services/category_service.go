package services

import (
	"context"
	"fmt"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/google/uuid"
)

// CategoryService provides business logic for categories.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a custom category. Duplicate names surface
// apperrors.ErrDuplicate.
func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Custom:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories retrieves all categories ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	return categories, nil
}

// EnsureDefaultCategories seeds the built-in category set, skipping names
// that already exist. Called once at startup.
func (s *CategoryService) EnsureDefaultCategories(ctx context.Context) error {
	now := time.Now()
	defaults := make([]domain.Category, len(domain.DefaultCategoryNames))
	for i, name := range domain.DefaultCategoryNames {
		defaults[i] = domain.Category{
			CategoryID: uuid.NewString(),
			Name:       name,
			Custom:     false,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}
	if err := s.categoryRepo.SeedDefaultCategories(ctx, defaults); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}
