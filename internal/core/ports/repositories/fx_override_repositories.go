package repositories

import (
	"context"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
)

// FxOverrideFilter narrows an override listing. Currency is matched exactly
// (upper-cased at the boundary); From/To bound the override date inclusively.
type FxOverrideFilter struct {
	Currency *string
	From     *time.Time
	To       *time.Time
}

// FxOverrideReader defines read operations for pinned exchange rates
type FxOverrideReader interface {
	// FindOverride retrieves the override for a (dateOnly, currency) key.
	// Returns apperrors.ErrNotFound when no override is pinned for the key.
	FindOverride(ctx context.Context, dateOnly time.Time, currency string) (*domain.FxRateOverride, error)

	// ListOverrides retrieves overrides matching the filter, date ascending.
	ListOverrides(ctx context.Context, filter FxOverrideFilter) ([]domain.FxRateOverride, error)
}

// FxOverrideWriter defines write operations for pinned exchange rates
type FxOverrideWriter interface {
	// UpsertOverride inserts the override or, when the (dateOnly, currency)
	// key already exists, atomically replaces its rate.
	UpsertOverride(ctx context.Context, override domain.FxRateOverride) (*domain.FxRateOverride, error)

	// DeleteOverride removes an override by ID.
	DeleteOverride(ctx context.Context, overrideID string) error
}

// FxOverrideRepositoryFacade combines all override-related repository interfaces
type FxOverrideRepositoryFacade interface {
	FxOverrideReader
	FxOverrideWriter
}
