package repositories

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetReader defines read operations for category budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a budget by its ID.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.CategoryBudget, error)

	// ListBudgetsByTrip retrieves the budgets of a trip, oldest first.
	ListBudgetsByTrip(ctx context.Context, tripID string) ([]domain.CategoryBudget, error)
}

// BudgetWriter defines write operations for category budget data
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.CategoryBudget) error

	// UpdateBudgetLimit changes the MYR limit of an existing budget.
	UpdateBudgetLimit(ctx context.Context, budgetID string, limitMYR decimal.Decimal) error

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
