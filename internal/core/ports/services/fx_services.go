package services

import (
	"context"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LiveRateProvider resolves a currency's MYR rate from live sources. It never
// returns an error: every provider failure degrades to ok=false. A shared
// deadline bounds the whole attempt chain.
type LiveRateProvider interface {
	ResolveLive(ctx context.Context, currency string) (decimal.Decimal, bool)
}

// RateCache memoizes live-fetched rates per currency with a fixed TTL.
// Expired and missing entries are indistinguishable. Failures are never cached.
type RateCache interface {
	Get(currency string) (decimal.Decimal, bool)
	Put(currency string, rate decimal.Decimal)
}

// ConversionSvcFacade is the decision procedure that picks exactly one rate
// source for an item write. Precedence: MYR identity, user-supplied rate,
// prior rate on unchanged currency (update only), pinned override, live chain.
type ConversionSvcFacade interface {
	// ResolveForCreate resolves a rate for a brand-new item. When a cost was
	// supplied in a foreign currency and no source yields a rate, it fails
	// with apperrors.ErrLiveFxUnavailable so the caller can prompt for a
	// manual rate instead of persisting a cost with no MYR equivalent.
	ResolveForCreate(ctx context.Context, req domain.ConversionRequest) (domain.RateResolution, error)

	// ResolveForUpdate resolves a rate for an existing item. It never fails:
	// when no source yields a rate the resolution carries a nil rate and the
	// item is stored with null MYR fields.
	ResolveForUpdate(ctx context.Context, req domain.ConversionRequest, prior domain.ConversionPriorState) (domain.RateResolution, error)
}

// FxOverrideSvcFacade manages the pinned (date, currency) rate table consumed
// by the admin UI. Pass-through beyond key normalization and validation.
type FxOverrideSvcFacade interface {
	ListOverrides(ctx context.Context, req dto.ListFxOverridesRequest) ([]domain.FxRateOverride, error)
	UpsertOverride(ctx context.Context, req dto.UpsertFxOverrideRequest) (*domain.FxRateOverride, error)
	DeleteOverride(ctx context.Context, overrideID string) error
	FindOverride(ctx context.Context, dateOnly time.Time, currency string) (*domain.FxRateOverride, error)
}
