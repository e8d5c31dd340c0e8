package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ReportingService computes analytics over a trip's stored MYR fields.
// Rates are never re-resolved here: an item whose rate could not be resolved
// contributes zero, exactly as it displays.
type ReportingService struct {
	tripRepo     portsrepo.TripReader
	itemRepo     portsrepo.ItemReader
	categoryRepo portsrepo.CategoryReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(tripRepo portsrepo.TripReader, itemRepo portsrepo.ItemReader, categoryRepo portsrepo.CategoryReader) *ReportingService {
	return &ReportingService{
		tripRepo:     tripRepo,
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// TripSummary aggregates a trip's totals, budget and per-diem variances.
func (s *ReportingService) TripSummary(ctx context.Context, tripID string) (*dto.TripSummaryResponse, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListItemsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for summary: %w", err)
	}

	totalExpected := decimal.Zero
	totalActual := decimal.Zero
	itemsWithActual := 0
	for i := range items {
		totalExpected = totalExpected.Add(orZero(items[i].MYRExpected))
		totalActual = totalActual.Add(orZero(items[i].MYRActual))
		if items[i].MYRActual != nil {
			itemsWithActual++
		}
	}

	summary := &dto.TripSummaryResponse{
		TotalExpected: totalExpected,
		TotalActual:   totalActual,
		Remaining:     totalExpected.Sub(totalActual),
	}

	if trip.BudgetMYR != nil {
		budget := *trip.BudgetMYR
		remaining := budget.Sub(totalActual)
		variance := totalActual.Sub(budget) // positive = overspend
		summary.Budget = &budget
		summary.BudgetRemaining = &remaining
		summary.BudgetVariance = &variance
	}

	if trip.StartDate != nil && trip.EndDate != nil {
		days := int(math.Round(trip.EndDate.Sub(*trip.StartDate).Hours()/24)) + 1
		if days < 1 {
			days = 1
		}
		summary.TripDays = &days
		if trip.PerDiemMYR != nil {
			perDiem := *trip.PerDiemMYR
			perDiemTotal := perDiem.Mul(decimal.NewFromInt(int64(days)))
			perDiemVariance := totalActual.Sub(perDiemTotal)
			summary.PerDiem = &perDiem
			summary.PerDiemTotal = &perDiemTotal
			summary.PerDiemVariance = &perDiemVariance
		}
	} else if trip.PerDiemMYR != nil {
		perDiem := *trip.PerDiemMYR
		summary.PerDiem = &perDiem
	}

	if len(items) > 0 {
		summary.PercentActualLogged = decimal.NewFromInt(int64(itemsWithActual * 100)).
			Div(decimal.NewFromInt(int64(len(items))))
	} else {
		summary.PercentActualLogged = decimal.Zero
	}

	return summary, nil
}

// ByCategory breaks a trip's MYR totals down per category name.
func (s *ReportingService) ByCategory(ctx context.Context, tripID string) ([]dto.CategoryBreakdownEntry, error) {
	items, err := s.itemRepo.ListItemsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for breakdown: %w", err)
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for breakdown: %w", err)
	}

	names := make(map[string]string, len(categories))
	for i := range categories {
		names[categories[i].CategoryID] = categories[i].Name
	}

	type bucket struct {
		expected decimal.Decimal
		actual   decimal.Decimal
		count    int
	}
	buckets := make(map[string]*bucket)
	for i := range items {
		name := "Uncategorized"
		if items[i].CategoryID != nil {
			if n, ok := names[*items[i].CategoryID]; ok {
				name = n
			}
		}
		b, ok := buckets[name]
		if !ok {
			b = &bucket{expected: decimal.Zero, actual: decimal.Zero}
			buckets[name] = b
		}
		b.expected = b.expected.Add(orZero(items[i].MYRExpected))
		b.actual = b.actual.Add(orZero(items[i].MYRActual))
		b.count++
	}

	entries := make([]dto.CategoryBreakdownEntry, 0, len(buckets))
	for name, b := range buckets {
		entries = append(entries, dto.CategoryBreakdownEntry{
			Category: name,
			Expected: b.expected,
			Actual:   b.actual,
			Count:    b.count,
			Diff:     b.actual.Sub(b.expected),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Category < entries[j].Category })
	return entries, nil
}

// DailyTrend aggregates a trip's MYR totals per UTC calendar date, ascending.
func (s *ReportingService) DailyTrend(ctx context.Context, tripID string) ([]dto.DailyTrendEntry, error) {
	items, err := s.itemRepo.ListItemsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items for trend: %w", err)
	}

	type bucket struct {
		expected decimal.Decimal
		actual   decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for i := range items {
		date := items[i].DateTime.UTC().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{expected: decimal.Zero, actual: decimal.Zero}
			buckets[date] = b
		}
		b.expected = b.expected.Add(orZero(items[i].MYRExpected))
		b.actual = b.actual.Add(orZero(items[i].MYRActual))
	}

	entries := make([]dto.DailyTrendEntry, 0, len(buckets))
	for date, b := range buckets {
		entries = append(entries, dto.DailyTrendEntry{Date: date, Expected: b.expected, Actual: b.actual})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

// ExportRows returns a trip, its items and a categoryID-to-name map for
// tabular export.
func (s *ReportingService) ExportRows(ctx context.Context, tripID string) (*domain.Trip, []domain.ItineraryItem, map[string]string, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.itemRepo.ListItemsByTrip(ctx, tripID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load items for export: %w", err)
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load categories for export: %w", err)
	}
	names := make(map[string]string, len(categories))
	for i := range categories {
		names[categories[i].CategoryID] = categories[i].Name
	}
	return trip, items, names, nil
}
