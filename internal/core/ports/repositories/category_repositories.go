package repositories

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category. Returns apperrors.ErrDuplicate
	// when the name already exists.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SeedDefaultCategories inserts the given non-custom categories,
	// skipping names that already exist.
	SeedDefaultCategories(ctx context.Context, categories []domain.Category) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
