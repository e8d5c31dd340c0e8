package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/models"
	"github.com/amirulhm/tripwise_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxBudgetRepository implements the budget repository facade using pgxpool.
type PgxBudgetRepository struct {
	BaseRepository
}

// NewPgxBudgetRepository creates a new PgxBudgetRepository.
func NewPgxBudgetRepository(db *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveBudget persists a new category budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.CategoryBudget) error {
	m := mapping.ToModelCategoryBudget(budget)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO category_budgets (budget_id, trip_id, category_id, limit_myr, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.BudgetID, m.TripID, m.CategoryID, m.LimitMYR, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save budget", err)
	}
	return nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.CategoryBudget, error) {
	var m models.CategoryBudget
	err := r.Pool.QueryRow(ctx, `
		SELECT budget_id, trip_id, category_id, limit_myr, created_at, last_updated_at
		FROM category_budgets
		WHERE budget_id = $1`, budgetID).Scan(
		&m.BudgetID, &m.TripID, &m.CategoryID, &m.LimitMYR, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget with ID " + budgetID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find budget", err)
	}

	domainBudget := mapping.ToDomainCategoryBudget(m)
	return &domainBudget, nil
}

// ListBudgetsByTrip retrieves the budgets of a trip, oldest first.
func (r *PgxBudgetRepository) ListBudgetsByTrip(ctx context.Context, tripID string) ([]domain.CategoryBudget, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT budget_id, trip_id, category_id, limit_myr, created_at, last_updated_at
		FROM category_budgets
		WHERE trip_id = $1
		ORDER BY created_at ASC`, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list budgets", err)
	}
	defer rows.Close()

	var budgets []domain.CategoryBudget
	for rows.Next() {
		var m models.CategoryBudget
		err := rows.Scan(&m.BudgetID, &m.TripID, &m.CategoryID, &m.LimitMYR, &m.CreatedAt, &m.LastUpdatedAt)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget", err)
		}
		budgets = append(budgets, mapping.ToDomainCategoryBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating budgets", err)
	}
	return budgets, nil
}

// UpdateBudgetLimit changes the MYR limit of an existing budget.
func (r *PgxBudgetRepository) UpdateBudgetLimit(ctx context.Context, budgetID string, limitMYR decimal.Decimal) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE category_budgets
		SET limit_myr = $1, last_updated_at = $2
		WHERE budget_id = $3`,
		limitMYR, time.Now(), budgetID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget with ID " + budgetID + " not found")
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM category_budgets WHERE budget_id = $1`, budgetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget with ID " + budgetID + " not found")
	}
	return nil
}
