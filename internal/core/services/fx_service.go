package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/apperrors"
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portsrepo "github.com/amirulhm/tripwise_backend/internal/core/ports/repositories"
	portssvc "github.com/amirulhm/tripwise_backend/internal/core/ports/services"
	"github.com/amirulhm/tripwise_backend/internal/dto"
	"github.com/amirulhm/tripwise_backend/internal/utils/dateutils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConversionService decides, for one item write, which exchange rate source
// applies. First matching rule wins; strict precedence, not a scored blend:
//
//  1. MYR identity (rate 1, never auto), unconditional, beats user input
//  2. user-supplied positive rate (never auto)
//  3. update only: reuse the prior rate when the currency is unchanged,
//     keeping its prior autoFx, even if the cache has since gone stale
//  4. pinned override for (dateOnly(itemDate), currency) (treated as manual)
//  5. live provider chain (auto)
//
// A stored rate is a point-in-time snapshot; nothing here ever rewrites a
// previously persisted item.
type ConversionService struct {
	overrideRepo portsrepo.FxOverrideReader
	live         portssvc.LiveRateProvider
}

// NewConversionService creates a new ConversionService.
func NewConversionService(overrideRepo portsrepo.FxOverrideReader, live portssvc.LiveRateProvider) *ConversionService {
	return &ConversionService{
		overrideRepo: overrideRepo,
		live:         live,
	}
}

var one = decimal.NewFromInt(1)

// ResolveForCreate resolves the rate for a brand-new item. The override and
// live steps only run when a cost was supplied: a currency with no monetary
// amount yet does not need a resolved rate. When a cost is present and no
// source yields a rate, the create must fail rather than persist a cost with
// no MYR equivalent.
func (s *ConversionService) ResolveForCreate(ctx context.Context, req domain.ConversionRequest) (domain.RateResolution, error) {
	cur := strings.ToUpper(req.Currency)

	if cur == domain.HomeCurrencyCode {
		r := one
		return domain.RateResolution{Rate: &r, AutoFx: false}, nil
	}
	if req.UserRate != nil && req.UserRate.IsPositive() {
		r := *req.UserRate
		return domain.RateResolution{Rate: &r, AutoFx: false}, nil
	}
	if !req.HasCost {
		return domain.RateResolution{}, nil
	}

	res, found, err := s.resolveStoredOrLive(ctx, req.ItemDate, cur)
	if err != nil {
		return domain.RateResolution{}, err
	}
	if !found {
		return domain.RateResolution{}, fmt.Errorf("%w: no rate resolvable for %s", apperrors.ErrLiveFxUnavailable, cur)
	}
	return res, nil
}

// ResolveForUpdate resolves the rate for an existing item. Unlike the create
// path it never fails: an unresolvable rate yields a nil-rate resolution and
// the caller stores null MYR fields.
func (s *ConversionService) ResolveForUpdate(ctx context.Context, req domain.ConversionRequest, prior domain.ConversionPriorState) (domain.RateResolution, error) {
	cur := strings.ToUpper(req.Currency)

	if cur == domain.HomeCurrencyCode {
		r := one
		return domain.RateResolution{Rate: &r, AutoFx: false}, nil
	}
	if req.UserRate != nil && req.UserRate.IsPositive() {
		r := *req.UserRate
		return domain.RateResolution{Rate: &r, AutoFx: false}, nil
	}
	if prior.Rate != nil && strings.ToUpper(prior.Currency) == cur {
		// Rate already accepted for this exact currency; reuse it verbatim
		// without re-fetching or re-validating.
		r := *prior.Rate
		return domain.RateResolution{Rate: &r, AutoFx: prior.AutoFx}, nil
	}

	res, found, err := s.resolveStoredOrLive(ctx, req.ItemDate, cur)
	if err != nil {
		return domain.RateResolution{}, err
	}
	if !found {
		return domain.RateResolution{}, nil
	}
	return res, nil
}

// resolveStoredOrLive runs the shared tail of both paths: override lookup,
// then the live chain.
func (s *ConversionService) resolveStoredOrLive(ctx context.Context, itemDate time.Time, cur string) (domain.RateResolution, bool, error) {
	override, err := s.overrideRepo.FindOverride(ctx, dateutils.DateOnly(itemDate), cur)
	if err == nil {
		r := override.Rate
		return domain.RateResolution{Rate: &r, AutoFx: false}, true, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return domain.RateResolution{}, false, fmt.Errorf("failed to look up FX override: %w", err)
	}

	if rate, ok := s.live.ResolveLive(ctx, cur); ok {
		return domain.RateResolution{Rate: &rate, AutoFx: true}, true, nil
	}
	return domain.RateResolution{}, false, nil
}

// FxOverrideService manages the pinned (date, currency) rate table.
type FxOverrideService struct {
	overrideRepo portsrepo.FxOverrideRepositoryFacade
}

// NewFxOverrideService creates a new FxOverrideService.
func NewFxOverrideService(overrideRepo portsrepo.FxOverrideRepositoryFacade) *FxOverrideService {
	return &FxOverrideService{overrideRepo: overrideRepo}
}

// ListOverrides retrieves overrides, optionally filtered by currency and an
// inclusive date range, ordered by date ascending.
func (s *FxOverrideService) ListOverrides(ctx context.Context, req dto.ListFxOverridesRequest) ([]domain.FxRateOverride, error) {
	filter := portsrepo.FxOverrideFilter{From: req.From, To: req.To}
	if req.Currency != nil {
		cur := strings.ToUpper(*req.Currency)
		filter.Currency = &cur
	}
	overrides, err := s.overrideRepo.ListOverrides(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list FX overrides: %w", err)
	}
	return overrides, nil
}

// UpsertOverride pins a rate for one UTC calendar date and currency,
// replacing the stored rate when the key already exists.
func (s *FxOverrideService) UpsertOverride(ctx context.Context, req dto.UpsertFxOverrideRequest) (*domain.FxRateOverride, error) {
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: override rate must be positive", apperrors.ErrValidation)
	}
	cur := strings.ToUpper(req.Currency)
	if cur == domain.HomeCurrencyCode {
		return nil, fmt.Errorf("%w: %s is always 1 and cannot be overridden", apperrors.ErrValidation, domain.HomeCurrencyCode)
	}

	now := time.Now()
	override := domain.FxRateOverride{
		OverrideID: uuid.NewString(),
		Date:       dateutils.DateOnly(req.Date),
		Currency:   cur,
		Rate:       req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.overrideRepo.UpsertOverride(ctx, override)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert FX override: %w", err)
	}
	return saved, nil
}

// DeleteOverride removes an override by ID.
func (s *FxOverrideService) DeleteOverride(ctx context.Context, overrideID string) error {
	if err := s.overrideRepo.DeleteOverride(ctx, overrideID); err != nil {
		return fmt.Errorf("failed to delete FX override: %w", err)
	}
	return nil
}

// FindOverride retrieves the override pinned for a (dateOnly, currency) key.
func (s *FxOverrideService) FindOverride(ctx context.Context, dateOnly time.Time, currency string) (*domain.FxRateOverride, error) {
	return s.overrideRepo.FindOverride(ctx, dateutils.DateOnly(dateOnly), strings.ToUpper(currency))
}
