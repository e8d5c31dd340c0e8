package services

import (
	"context"
	"fmt"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/google/uuid"
)

// BudgetService provides business logic for per-trip category budgets.
type BudgetService struct {
	budgetRepo portsrepo.BudgetRepositoryFacade
	tripRepo   portsrepo.TripReader
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, tripRepo portsrepo.TripReader) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		tripRepo:   tripRepo,
	}
}

// CreateBudget creates a category budget for a trip.
func (s *BudgetService) CreateBudget(ctx context.Context, tripID string, req dto.CreateBudgetRequest) (*domain.CategoryBudget, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, err
	}
	if !req.LimitMYR.IsPositive() {
		return nil, fmt.Errorf("%w: limitMYR must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	budget := domain.CategoryBudget{
		BudgetID:   uuid.NewString(),
		TripID:     tripID,
		CategoryID: req.CategoryID,
		LimitMYR:   req.LimitMYR,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget in service: %w", err)
	}
	return &budget, nil
}

// ListBudgets retrieves a trip's budgets, oldest first.
func (s *BudgetService) ListBudgets(ctx context.Context, tripID string) ([]domain.CategoryBudget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets in service: %w", err)
	}
	return budgets, nil
}

// UpdateBudget changes a budget's MYR limit.
func (s *BudgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.CategoryBudget, error) {
	if !req.LimitMYR.IsPositive() {
		return nil, fmt.Errorf("%w: limitMYR must be positive", apperrors.ErrValidation)
	}
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if err := s.budgetRepo.UpdateBudgetLimit(ctx, budgetID, req.LimitMYR); err != nil {
		return nil, fmt.Errorf("failed to update budget in service: %w", err)
	}
	budget.LimitMYR = req.LimitMYR
	budget.LastUpdatedAt = time.Now()
	return budget, nil
}

// DeleteBudget removes a budget.
func (s *BudgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget in service: %w", err)
	}
	return nil
}
