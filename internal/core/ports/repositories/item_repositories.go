package repositories

import (
	"context"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
)

// ItemReader defines read operations for itinerary item data
type ItemReader interface {
	// FindItemByID retrieves an item by ID, scoped to a trip.
	// Soft-deleted items are still returned; callers inspect DeletedAt.
	FindItemByID(ctx context.Context, tripID, itemID string) (*domain.ItineraryItem, error)

	// ListItemsByTrip retrieves the non-deleted items of a trip ordered by
	// dateTime ascending.
	ListItemsByTrip(ctx context.Context, tripID string) ([]domain.ItineraryItem, error)
}

// ItemWriter defines write operations for itinerary item data
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.ItineraryItem) error

	// UpdateItem persists changes to an existing item.
	UpdateItem(ctx context.Context, item domain.ItineraryItem) error

	// SetItemDeleted sets or clears the soft-delete marker.
	SetItemDeleted(ctx context.Context, itemID string, deletedAt *time.Time) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
