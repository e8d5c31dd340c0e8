package services

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/dto"
)

// TripSvcFacade provides business logic for trips.
type TripSvcFacade interface {
	CreateTrip(ctx context.Context, req dto.CreateTripRequest) (*domain.Trip, error)
	GetTrip(ctx context.Context, tripID string) (*domain.Trip, error)
	ListTrips(ctx context.Context) ([]domain.TripWithTotals, error)
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error
}
