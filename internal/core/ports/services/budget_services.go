package services

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/dto"
)

// BudgetSvcFacade provides business logic for per-trip category budgets.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, tripID string, req dto.CreateBudgetRequest) (*domain.CategoryBudget, error)
	ListBudgets(ctx context.Context, tripID string) ([]domain.CategoryBudget, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.CategoryBudget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
}
