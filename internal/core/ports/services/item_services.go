package services

import (
	"context"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/dto"
)

// ItemSvcFacade provides business logic for itinerary items, including the
// monetary conversion performed at create and update time.
type ItemSvcFacade interface {
	CreateItem(ctx context.Context, tripID string, req dto.CreateItemRequest) (*domain.ItineraryItem, error)
	ListItems(ctx context.Context, tripID string) ([]domain.ItineraryItem, error)
	UpdateItem(ctx context.Context, tripID, itemID string, req dto.UpdateItemRequest) (*domain.ItineraryItem, error)

	// DeleteItem soft-deletes; deleting an already-deleted item is a no-op.
	DeleteItem(ctx context.Context, tripID, itemID string) error

	// RestoreItem clears the soft-delete marker.
	RestoreItem(ctx context.Context, tripID, itemID string) (*domain.ItineraryItem, error)
}
