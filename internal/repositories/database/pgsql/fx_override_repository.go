package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	"github.com/amirulhm/tripwise_backend/internal/models"
	"github.com/amirulhm/tripwise_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFxOverrideRepository implements the fx override repository facade using pgxpool.
type PgxFxOverrideRepository struct {
	BaseRepository
}

// NewPgxFxOverrideRepository creates a new PgxFxOverrideRepository.
func NewPgxFxOverrideRepository(db *pgxpool.Pool) *PgxFxOverrideRepository {
	return &PgxFxOverrideRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const overrideColumns = `override_id, date_only, currency, rate, created_at, last_updated_at`

func scanOverride(row pgx.Row) (*models.FxRateOverride, error) {
	var m models.FxRateOverride
	err := row.Scan(&m.OverrideID, &m.DateOnly, &m.Currency, &m.Rate, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindOverride retrieves the pinned rate for a (dateOnly, currency) key.
func (r *PgxFxOverrideRepository) FindOverride(ctx context.Context, dateOnly time.Time, currency string) (*domain.FxRateOverride, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+overrideColumns+`
		FROM fx_rate_overrides
		WHERE date_only = $1 AND currency = $2`, dateOnly, currency)

	m, err := scanOverride(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate override for " + currency + " on " + dateOnly.Format("2006-01-02"))
		}
		return nil, apperrors.NewAppError(500, "failed to find rate override", err)
	}

	domainOverride := mapping.ToDomainFxRateOverride(*m)
	return &domainOverride, nil
}

// ListOverrides retrieves overrides matching the filter, date ascending.
func (r *PgxFxOverrideRepository) ListOverrides(ctx context.Context, filter portsrepo.FxOverrideFilter) ([]domain.FxRateOverride, error) {
	query := `
		SELECT ` + overrideColumns + `
		FROM fx_rate_overrides
		WHERE 1=1`
	args := []any{}

	if filter.Currency != nil {
		args = append(args, *filter.Currency)
		query += ` AND currency = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND date_only >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND date_only <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY date_only ASC, currency ASC`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rate overrides", err)
	}
	defer rows.Close()

	var overrides []domain.FxRateOverride
	for rows.Next() {
		m, err := scanOverride(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate override", err)
		}
		overrides = append(overrides, mapping.ToDomainFxRateOverride(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rate overrides", err)
	}
	return overrides, nil
}

// UpsertOverride inserts the override or, when the (dateOnly, currency) key
// already exists, atomically replaces its rate.
func (r *PgxFxOverrideRepository) UpsertOverride(ctx context.Context, override domain.FxRateOverride) (*domain.FxRateOverride, error) {
	m := mapping.ToModelFxRateOverride(override)

	row := r.Pool.QueryRow(ctx, `
		INSERT INTO fx_rate_overrides (`+overrideColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date_only, currency) DO UPDATE
		SET rate = EXCLUDED.rate, last_updated_at = EXCLUDED.last_updated_at
		RETURNING `+overrideColumns,
		m.OverrideID, m.DateOnly, m.Currency, m.Rate, m.CreatedAt, m.LastUpdatedAt,
	)

	saved, err := scanOverride(row)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to upsert rate override", err)
	}

	domainOverride := mapping.ToDomainFxRateOverride(*saved)
	return &domainOverride, nil
}

// DeleteOverride removes an override by ID.
func (r *PgxFxOverrideRepository) DeleteOverride(ctx context.Context, overrideID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM fx_rate_overrides WHERE override_id = $1`, overrideID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete rate override", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("rate override with ID " + overrideID + " not found")
	}
	return nil
}
