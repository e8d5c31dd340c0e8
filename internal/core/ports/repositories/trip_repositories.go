package repositories

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
)

// TripReader defines read operations for trip data
type TripReader interface {
	// FindTripByID retrieves a trip by its ID.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTripsWithTotals retrieves all trips, newest first, each with MYR
	// expected/actual totals aggregated over its non-deleted items.
	ListTripsWithTotals(ctx context.Context) ([]domain.TripWithTotals, error)
}

// TripWriter defines write operations for trip data
type TripWriter interface {
	// SaveTrip persists a new trip.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// UpdateTrip persists changes to an existing trip.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes a trip and, via FK cascade, its dependents.
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripRepositoryFacade combines all trip-related repository interfaces
type TripRepositoryFacade interface {
	TripReader
	TripWriter
}
