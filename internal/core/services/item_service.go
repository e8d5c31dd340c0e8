package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	portssvc "github.com/amirulhm/tripwise_backend/internal/core/ports/services"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/amirulhm/tripwise_backend/internal/utils/fxmath"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemService provides business logic for itinerary items. It is the caller
// of the conversion policy: MYR amounts are derived once at write time and
// stored alongside the resolved rate snapshot. Readers (analytics, exports)
// consume the stored MYR fields and never re-resolve rates.
type ItemService struct {
	itemRepo   portsrepo.ItemRepositoryFacade
	tripRepo   portsrepo.TripReader
	conversion portssvc.ConversionSvcFacade
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade, tripRepo portsrepo.TripReader, conversion portssvc.ConversionSvcFacade) *ItemService {
	return &ItemService{
		itemRepo:   itemRepo,
		tripRepo:   tripRepo,
		conversion: conversion,
	}
}

// validateCost rejects non-positive monetary amounts before rate resolution
// is invoked.
func validateCost(name string, cost *decimal.Decimal) error {
	if cost != nil && !cost.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, name)
	}
	return nil
}

// CreateItem creates an itinerary item, resolving its exchange rate and
// derived MYR amounts. Fails with apperrors.ErrLiveFxUnavailable when a cost
// was supplied in a foreign currency and no rate source could serve it.
func (s *ItemService) CreateItem(ctx context.Context, tripID string, req dto.CreateItemRequest) (*domain.ItineraryItem, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, err
	}
	if err := validateCost("expectedCost", req.ExpectedCost); err != nil {
		return nil, err
	}
	if err := validateCost("actualCost", req.ActualCost); err != nil {
		return nil, err
	}

	cur := strings.ToUpper(req.Currency)
	resolution, err := s.conversion.ResolveForCreate(ctx, domain.ConversionRequest{
		Currency: cur,
		ItemDate: req.DateTime,
		UserRate: req.ExchangeRate,
		HasCost:  req.ExpectedCost != nil || req.ActualCost != nil,
	})
	if err != nil {
		return nil, err
	}

	status := domain.ItemStatus(req.Status)
	if status == "" {
		status = domain.StatusPlanned
	}

	now := time.Now()
	item := domain.ItineraryItem{
		ItemID:       uuid.NewString(),
		TripID:       tripID,
		Title:        req.Title,
		DateTime:     req.DateTime,
		ExpectedCost: req.ExpectedCost,
		ActualCost:   req.ActualCost,
		Currency:     cur,
		ExchangeRate: resolution.Rate,
		AutoFx:       resolution.AutoFx,
		MYRExpected:  fxmath.DeriveMYR(req.ExpectedCost, resolution.Rate),
		MYRActual:    fxmath.DeriveMYR(req.ActualCost, resolution.Rate),
		Status:       status,
		Notes:        req.Notes,
		Location:     req.Location,
		CategoryID:   req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item in service: %w", err)
	}
	return &item, nil
}

// ListItems retrieves the non-deleted items of a trip, dateTime ascending.
func (s *ItemService) ListItems(ctx context.Context, tripID string) ([]domain.ItineraryItem, error) {
	items, err := s.itemRepo.ListItemsByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items in service: %w", err)
	}
	return items, nil
}

// UpdateItem applies a partial update, re-running rate resolution with the
// item's prior state. Unlike creation, an unresolvable rate does not reject
// the write: the item is stored with null rate and MYR fields.
func (s *ItemService) UpdateItem(ctx context.Context, tripID, itemID string, req dto.UpdateItemRequest) (*domain.ItineraryItem, error) {
	existing, err := s.itemRepo.FindItemByID(ctx, tripID, itemID)
	if err != nil {
		return nil, err
	}
	if err := validateCost("expectedCost", req.ExpectedCost); err != nil {
		return nil, err
	}
	if err := validateCost("actualCost", req.ActualCost); err != nil {
		return nil, err
	}

	newCurrency := existing.Currency
	if req.Currency != nil {
		newCurrency = strings.ToUpper(*req.Currency)
	}
	newDate := existing.DateTime
	if req.DateTime != nil {
		newDate = *req.DateTime
	}

	resolution, err := s.conversion.ResolveForUpdate(ctx,
		domain.ConversionRequest{
			Currency: newCurrency,
			ItemDate: newDate,
			UserRate: req.ExchangeRate,
		},
		domain.ConversionPriorState{
			Currency: existing.Currency,
			Rate:     existing.ExchangeRate,
			AutoFx:   existing.AutoFx,
		},
	)
	if err != nil {
		return nil, err
	}

	item := *existing
	item.Currency = newCurrency
	item.DateTime = newDate
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.ExpectedCost != nil {
		item.ExpectedCost = req.ExpectedCost
	}
	if req.ActualCost != nil {
		item.ActualCost = req.ActualCost
	}
	if req.Status != nil {
		item.Status = domain.ItemStatus(*req.Status)
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.CategoryID != nil {
		item.CategoryID = req.CategoryID
	}

	item.ExchangeRate = resolution.Rate
	item.AutoFx = resolution.AutoFx
	item.MYRExpected = fxmath.DeriveMYR(item.ExpectedCost, resolution.Rate)
	item.MYRActual = fxmath.DeriveMYR(item.ActualCost, resolution.Rate)
	item.LastUpdatedAt = time.Now()

	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item in service: %w", err)
	}
	return &item, nil
}

// DeleteItem soft-deletes an item. Items are never physically removed by a
// normal delete; a second delete of an already-deleted item is a no-op.
func (s *ItemService) DeleteItem(ctx context.Context, tripID, itemID string) error {
	existing, err := s.itemRepo.FindItemByID(ctx, tripID, itemID)
	if err != nil {
		return err
	}
	if existing.IsDeleted() {
		return nil
	}
	now := time.Now()
	if err := s.itemRepo.SetItemDeleted(ctx, itemID, &now); err != nil {
		return fmt.Errorf("failed to delete item in service: %w", err)
	}
	return nil
}

// RestoreItem clears the soft-delete marker. Restoring a live item returns it
// unchanged.
func (s *ItemService) RestoreItem(ctx context.Context, tripID, itemID string) (*domain.ItineraryItem, error) {
	existing, err := s.itemRepo.FindItemByID(ctx, tripID, itemID)
	if err != nil {
		return nil, err
	}
	if !existing.IsDeleted() {
		return existing, nil
	}
	if err := s.itemRepo.SetItemDeleted(ctx, itemID, nil); err != nil {
		return nil, fmt.Errorf("failed to restore item in service: %w", err)
	}
	existing.DeletedAt = nil
	return existing, nil
}
