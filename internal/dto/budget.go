package dto

import (
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the structure for creating a category budget.
type CreateBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	LimitMYR   decimal.Decimal `json:"limitMYR" binding:"required"`
}

// UpdateBudgetRequest defines the structure for changing a budget limit.
type UpdateBudgetRequest struct {
	LimitMYR decimal.Decimal `json:"limitMYR" binding:"required"`
}

// BudgetResponse defines the structure for API responses containing budget details.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	TripID     string          `json:"tripID"`
	CategoryID string          `json:"categoryID"`
	LimitMYR   decimal.Decimal `json:"limitMYR"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToBudgetResponse converts a domain.CategoryBudget to BudgetResponse DTO
func ToBudgetResponse(b *domain.CategoryBudget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		TripID:     b.TripID,
		CategoryID: b.CategoryID,
		LimitMYR:   b.LimitMYR,
		CreatedAt:  b.CreatedAt,
	}
}

// ToListBudgetResponse converts a slice of domain budgets to response DTOs.
func ToListBudgetResponse(budgets []domain.CategoryBudget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		responses[i] = ToBudgetResponse(&budgets[i])
	}
	return responses
}
