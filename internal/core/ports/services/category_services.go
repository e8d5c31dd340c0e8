package services

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/dto"
)

// CategorySvcFacade provides business logic for categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// EnsureDefaultCategories seeds the built-in category set, skipping names
	// that already exist. Called once at startup.
	EnsureDefaultCategories(ctx context.Context) error
}
