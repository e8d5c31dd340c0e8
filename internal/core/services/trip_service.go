package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/google/uuid"
)

// TripService provides business logic for trips.
type TripService struct {
	tripRepo portsrepo.TripRepositoryFacade
}

// NewTripService creates a new TripService.
func NewTripService(tripRepo portsrepo.TripRepositoryFacade) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// CreateTrip creates a trip. The display currency defaults to MYR.
func (s *TripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest) (*domain.Trip, error) {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = domain.HomeCurrencyCode
	}

	now := time.Now()
	trip := domain.Trip{
		TripID:      uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Currency:    currency,
		BudgetMYR:   req.BudgetMYR,
		PerDiemMYR:  req.PerDiemMYR,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip in service: %w", err)
	}
	return &trip, nil
}

// GetTrip retrieves a trip by ID.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	return s.tripRepo.FindTripByID(ctx, tripID)
}

// ListTrips retrieves all trips, newest first, with MYR totals over their
// non-deleted items.
func (s *TripService) ListTrips(ctx context.Context) ([]domain.TripWithTotals, error) {
	trips, err := s.tripRepo.ListTripsWithTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips in service: %w", err)
	}
	return trips, nil
}

// UpdateTrip applies a partial update to a trip.
func (s *TripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.StartDate != nil {
		trip.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = req.EndDate
	}
	if req.Currency != nil {
		trip.Currency = strings.ToUpper(*req.Currency)
	}
	if req.BudgetMYR != nil {
		trip.BudgetMYR = req.BudgetMYR
	}
	if req.PerDiemMYR != nil {
		trip.PerDiemMYR = req.PerDiemMYR
	}
	trip.LastUpdatedAt = time.Now()

	if err := s.tripRepo.UpdateTrip(ctx, *trip); err != nil {
		return nil, fmt.Errorf("failed to update trip in service: %w", err)
	}
	return trip, nil
}

// DeleteTrip removes a trip; FK cascade removes its items, budgets and
// templates.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return err
	}
	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		return fmt.Errorf("failed to delete trip in service: %w", err)
	}
	return nil
}
