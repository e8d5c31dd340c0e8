package pgsql

import (
	"context"
	"errors"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/models"
	"github.com/amirulhm/tripwise_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxTemplateRepository implements the template repository facade using pgxpool.
type PgxTemplateRepository struct {
	BaseRepository
}

// NewPgxTemplateRepository creates a new PgxTemplateRepository.
func NewPgxTemplateRepository(db *pgxpool.Pool) *PgxTemplateRepository {
	return &PgxTemplateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const templateColumns = `
	template_id, trip_id, title, expected_cost, currency, exchange_rate,
	category_id, location, notes, default_status, created_at, last_updated_at`

func scanTemplate(row pgx.Row) (*models.ItemTemplate, error) {
	var m models.ItemTemplate
	var expected, rate decimal.NullDecimal
	err := row.Scan(
		&m.TemplateID, &m.TripID, &m.Title, &expected, &m.Currency, &rate,
		&m.CategoryID, &m.Location, &m.Notes, &m.DefaultStatus, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.ExpectedCost = fromNullDecimal(expected)
	m.ExchangeRate = fromNullDecimal(rate)
	return &m, nil
}

// SaveTemplate persists a new item template.
func (r *PgxTemplateRepository) SaveTemplate(ctx context.Context, template domain.ItemTemplate) error {
	m := mapping.ToModelItemTemplate(template)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO item_templates (`+templateColumns+`
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		m.TemplateID, m.TripID, m.Title, toNullDecimal(m.ExpectedCost), m.Currency,
		toNullDecimal(m.ExchangeRate), m.CategoryID, m.Location, m.Notes, m.DefaultStatus,
		m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save template", err)
	}
	return nil
}

// FindTemplateByID retrieves a template by its ID.
func (r *PgxTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.ItemTemplate, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM item_templates
		WHERE template_id = $1`, templateID)

	m, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("template with ID " + templateID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find template", err)
	}

	domainTemplate := mapping.ToDomainItemTemplate(*m)
	return &domainTemplate, nil
}

// ListTemplatesByTrip retrieves the templates of a trip, oldest first.
func (r *PgxTemplateRepository) ListTemplatesByTrip(ctx context.Context, tripID string) ([]domain.ItemTemplate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM item_templates
		WHERE trip_id = $1
		ORDER BY created_at ASC`, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list templates", err)
	}
	defer rows.Close()

	var templates []domain.ItemTemplate
	for rows.Next() {
		m, err := scanTemplate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan template", err)
		}
		templates = append(templates, mapping.ToDomainItemTemplate(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating templates", err)
	}
	return templates, nil
}

// UpdateTemplate persists changes to an existing template.
func (r *PgxTemplateRepository) UpdateTemplate(ctx context.Context, template domain.ItemTemplate) error {
	m := mapping.ToModelItemTemplate(template)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE item_templates
		SET title = $1, expected_cost = $2, currency = $3, exchange_rate = $4,
			category_id = $5, location = $6, notes = $7, default_status = $8,
			last_updated_at = $9
		WHERE template_id = $10`,
		m.Title, toNullDecimal(m.ExpectedCost), m.Currency, toNullDecimal(m.ExchangeRate),
		m.CategoryID, m.Location, m.Notes, m.DefaultStatus, m.LastUpdatedAt, m.TemplateID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update template", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("template with ID " + template.TemplateID + " not found")
	}
	return nil
}

// DeleteTemplate removes a template.
func (r *PgxTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM item_templates WHERE template_id = $1`, templateID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete template", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("template with ID " + templateID + " not found")
	}
	return nil
}
