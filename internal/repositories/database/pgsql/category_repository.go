package pgsql

import (
	"context"
	"errors"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/models"
	"github.com/amirulhm/tripwise_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCategoryRepository implements the category repository facade using pgxpool.
type PgxCategoryRepository struct {
	BaseRepository
}

// NewPgxCategoryRepository creates a new PgxCategoryRepository.
func NewPgxCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// SaveCategory persists a new category. A name collision surfaces as
// apperrors.ErrDuplicate.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO categories (category_id, name, custom, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.CategoryID, m.Name, m.Custom, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.NewAppError(409, "category name already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save category", err)
	}
	return nil
}

// ListCategories retrieves all categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT category_id, name, custom, created_at, last_updated_at
		FROM categories
		ORDER BY name ASC`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list categories", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryID, &m.Name, &m.Custom, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category", err)
		}
		categories = append(categories, mapping.ToDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating categories", err)
	}
	return categories, nil
}

// SeedDefaultCategories inserts the given non-custom categories, skipping
// names that already exist.
func (r *PgxCategoryRepository) SeedDefaultCategories(ctx context.Context, categories []domain.Category) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, category := range categories {
		m := mapping.ToModelCategory(category)
		_, err := tx.Exec(ctx, `
			INSERT INTO categories (category_id, name, custom, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO NOTHING`,
			m.CategoryID, m.Name, m.Custom, m.CreatedAt, m.LastUpdatedAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to seed category "+category.Name, err)
		}
	}
	return r.Commit(ctx, tx)
}
