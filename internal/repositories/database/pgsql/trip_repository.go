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

// PgxTripRepository implements the trip repository facade using pgxpool.
type PgxTripRepository struct {
	BaseRepository
}

// NewPgxTripRepository creates a new PgxTripRepository.
func NewPgxTripRepository(db *pgxpool.Pool) *PgxTripRepository {
	return &PgxTripRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveTrip inserts a new trip.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	modelTrip := mapping.ToModelTrip(trip)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO trips (
			trip_id, name, description, start_date, end_date, currency,
			budget_myr, per_diem_myr, created_at, last_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		modelTrip.TripID, modelTrip.Name, modelTrip.Description, modelTrip.StartDate,
		modelTrip.EndDate, modelTrip.Currency, toNullDecimal(modelTrip.BudgetMYR),
		toNullDecimal(modelTrip.PerDiemMYR), modelTrip.CreatedAt, modelTrip.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save trip", err)
	}
	return nil
}

// FindTripByID retrieves a trip by its ID.
func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	query := `
		SELECT
			trip_id, name, description, start_date, end_date, currency,
			budget_myr, per_diem_myr, created_at, last_updated_at
		FROM trips
		WHERE trip_id = $1;
	`

	var modelTrip models.Trip
	var budget, perDiem decimal.NullDecimal
	err := r.Pool.QueryRow(ctx, query, tripID).Scan(
		&modelTrip.TripID, &modelTrip.Name, &modelTrip.Description, &modelTrip.StartDate,
		&modelTrip.EndDate, &modelTrip.Currency, &budget, &perDiem,
		&modelTrip.CreatedAt, &modelTrip.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("trip with ID " + tripID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find trip", err)
	}
	modelTrip.BudgetMYR = fromNullDecimal(budget)
	modelTrip.PerDiemMYR = fromNullDecimal(perDiem)

	domainTrip := mapping.ToDomainTrip(modelTrip)
	return &domainTrip, nil
}

// ListTripsWithTotals retrieves all trips, newest first, with MYR totals
// aggregated over their non-deleted items.
func (r *PgxTripRepository) ListTripsWithTotals(ctx context.Context) ([]domain.TripWithTotals, error) {
	query := `
		SELECT
			t.trip_id, t.name, t.description, t.start_date, t.end_date, t.currency,
			t.budget_myr, t.per_diem_myr, t.created_at, t.last_updated_at,
			COALESCE(SUM(i.myr_expected), 0) AS total_expected,
			COALESCE(SUM(i.myr_actual), 0) AS total_actual
		FROM trips t
		LEFT JOIN itinerary_items i
			ON i.trip_id = t.trip_id AND i.deleted_at IS NULL
		GROUP BY t.trip_id
		ORDER BY t.created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list trips", err)
	}
	defer rows.Close()

	var trips []domain.TripWithTotals
	for rows.Next() {
		var modelTrip models.Trip
		var budget, perDiem decimal.NullDecimal
		var totalExpected, totalActual decimal.Decimal
		err := rows.Scan(
			&modelTrip.TripID, &modelTrip.Name, &modelTrip.Description, &modelTrip.StartDate,
			&modelTrip.EndDate, &modelTrip.Currency, &budget, &perDiem,
			&modelTrip.CreatedAt, &modelTrip.LastUpdatedAt,
			&totalExpected, &totalActual,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trip", err)
		}
		modelTrip.BudgetMYR = fromNullDecimal(budget)
		modelTrip.PerDiemMYR = fromNullDecimal(perDiem)
		trips = append(trips, domain.TripWithTotals{
			Trip:          mapping.ToDomainTrip(modelTrip),
			TotalExpected: totalExpected,
			TotalActual:   totalActual,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trips", err)
	}
	return trips, nil
}

// UpdateTrip persists changes to an existing trip.
func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	modelTrip := mapping.ToModelTrip(trip)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE trips
		SET name = $1, description = $2, start_date = $3, end_date = $4,
			currency = $5, budget_myr = $6, per_diem_myr = $7, last_updated_at = $8
		WHERE trip_id = $9`,
		modelTrip.Name, modelTrip.Description, modelTrip.StartDate, modelTrip.EndDate,
		modelTrip.Currency, toNullDecimal(modelTrip.BudgetMYR), toNullDecimal(modelTrip.PerDiemMYR),
		modelTrip.LastUpdatedAt, modelTrip.TripID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update trip", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trip with ID " + trip.TripID + " not found")
	}
	return nil
}

// DeleteTrip removes a trip; dependents go with it via FK cascade.
func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1`, tripID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete trip", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trip with ID " + tripID + " not found")
	}
	return nil
}
