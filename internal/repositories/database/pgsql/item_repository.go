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

// PgxItemRepository implements the item repository facade using pgxpool.
type PgxItemRepository struct {
	BaseRepository
}

// NewPgxItemRepository creates a new PgxItemRepository.
func NewPgxItemRepository(db *pgxpool.Pool) *PgxItemRepository {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const itemColumns = `
	item_id, trip_id, title, date_time, expected_cost, actual_cost, currency,
	exchange_rate, auto_fx, myr_expected, myr_actual, status, notes, location,
	category_id, deleted_at, created_at, last_updated_at`

func scanItem(row pgx.Row) (*models.ItineraryItem, error) {
	var m models.ItineraryItem
	var expected, actual, rate, myrExpected, myrActual decimal.NullDecimal
	err := row.Scan(
		&m.ItemID, &m.TripID, &m.Title, &m.DateTime, &expected, &actual, &m.Currency,
		&rate, &m.AutoFx, &myrExpected, &myrActual, &m.Status, &m.Notes, &m.Location,
		&m.CategoryID, &m.DeletedAt, &m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.ExpectedCost = fromNullDecimal(expected)
	m.ActualCost = fromNullDecimal(actual)
	m.ExchangeRate = fromNullDecimal(rate)
	m.MYRExpected = fromNullDecimal(myrExpected)
	m.MYRActual = fromNullDecimal(myrActual)
	return &m, nil
}

// SaveItem persists a new itinerary item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.ItineraryItem) error {
	m := mapping.ToModelItineraryItem(item)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO itinerary_items (`+itemColumns+`
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		m.ItemID, m.TripID, m.Title, m.DateTime, toNullDecimal(m.ExpectedCost),
		toNullDecimal(m.ActualCost), m.Currency, toNullDecimal(m.ExchangeRate), m.AutoFx,
		toNullDecimal(m.MYRExpected), toNullDecimal(m.MYRActual), m.Status, m.Notes,
		m.Location, m.CategoryID, m.DeletedAt, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save item", err)
	}
	return nil
}

// FindItemByID retrieves an item by ID, scoped to a trip. Soft-deleted items
// are returned too; callers inspect DeletedAt.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, tripID, itemID string) (*domain.ItineraryItem, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM itinerary_items
		WHERE trip_id = $1 AND item_id = $2`, tripID, itemID)

	m, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("item with ID " + itemID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find item", err)
	}

	domainItem := mapping.ToDomainItineraryItem(*m)
	return &domainItem, nil
}

// ListItemsByTrip retrieves the non-deleted items of a trip ordered by
// date_time ascending.
func (r *PgxItemRepository) ListItemsByTrip(ctx context.Context, tripID string) ([]domain.ItineraryItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM itinerary_items
		WHERE trip_id = $1 AND deleted_at IS NULL
		ORDER BY date_time ASC`, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list items", err)
	}
	defer rows.Close()

	var items []domain.ItineraryItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item", err)
		}
		items = append(items, mapping.ToDomainItineraryItem(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating items", err)
	}
	return items, nil
}

// UpdateItem persists changes to an existing item.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.ItineraryItem) error {
	m := mapping.ToModelItineraryItem(item)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE itinerary_items
		SET title = $1, date_time = $2, expected_cost = $3, actual_cost = $4,
			currency = $5, exchange_rate = $6, auto_fx = $7, myr_expected = $8,
			myr_actual = $9, status = $10, notes = $11, location = $12,
			category_id = $13, last_updated_at = $14
		WHERE item_id = $15`,
		m.Title, m.DateTime, toNullDecimal(m.ExpectedCost), toNullDecimal(m.ActualCost),
		m.Currency, toNullDecimal(m.ExchangeRate), m.AutoFx, toNullDecimal(m.MYRExpected),
		toNullDecimal(m.MYRActual), m.Status, m.Notes, m.Location, m.CategoryID,
		m.LastUpdatedAt, m.ItemID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item with ID " + item.ItemID + " not found")
	}
	return nil
}

// SetItemDeleted sets or clears the soft-delete marker.
func (r *PgxItemRepository) SetItemDeleted(ctx context.Context, itemID string, deletedAt *time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE itinerary_items
		SET deleted_at = $1, last_updated_at = $2
		WHERE item_id = $3`,
		deletedAt, time.Now(), itemID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set item deletion state", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item with ID " + itemID + " not found")
	}
	return nil
}
