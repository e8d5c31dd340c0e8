package dto

import (
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
)

// CreateCategoryRequest defines the structure for creating a custom category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse defines the structure for API responses containing category details.
type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Custom     bool      `json:"custom"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Custom:     c.Custom,
		CreatedAt:  c.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
