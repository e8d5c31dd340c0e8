package services

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/dto"
)

// ReportingSvcFacade computes analytics over already-resolved MYR fields.
// It never re-resolves exchange rates.
type ReportingSvcFacade interface {
	TripSummary(ctx context.Context, tripID string) (*dto.TripSummaryResponse, error)
	ByCategory(ctx context.Context, tripID string) ([]dto.CategoryBreakdownEntry, error)
	DailyTrend(ctx context.Context, tripID string) ([]dto.DailyTrendEntry, error)

	// ExportRows returns the trip, its items and a categoryID-to-name map
	// for tabular export.
	ExportRows(ctx context.Context, tripID string) (*domain.Trip, []domain.ItineraryItem, map[string]string, error)
}
