package services_test

import (
	"testing"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRateCache_HitWithinTTL(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache := services.NewRateCacheWithClock(10*time.Minute, func() time.Time { return now })

	cache.Put("USD", decimal.NewFromFloat(4.5))

	rate, ok := cache.Get("USD")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(4.5)))
}

func TestRateCache_MissWhenAbsent(t *testing.T) {
	cache := services.NewRateCacheWithClock(10*time.Minute, time.Now)

	_, ok := cache.Get("JPY")
	assert.False(t, ok)
}

func TestRateCache_JustUnderTTLStillUsable(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache := services.NewRateCacheWithClock(10*time.Minute, func() time.Time { return now })

	cache.Put("USD", decimal.NewFromFloat(4.5))
	now = base.Add(10*time.Minute - time.Millisecond)

	_, ok := cache.Get("USD")
	assert.True(t, ok)
}

func TestRateCache_ExactTTLBoundaryExpired(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache := services.NewRateCacheWithClock(10*time.Minute, func() time.Time { return now })

	cache.Put("USD", decimal.NewFromFloat(4.5))

	// Usability is strict: now - fetchedAt must be < TTL.
	now = base.Add(10 * time.Minute)
	_, ok := cache.Get("USD")
	assert.False(t, ok)

	now = base.Add(10*time.Minute + time.Millisecond)
	_, ok = cache.Get("USD")
	assert.False(t, ok)
}

func TestRateCache_CaseInsensitiveKeys(t *testing.T) {
	cache := services.NewRateCacheWithClock(10*time.Minute, time.Now)

	cache.Put("usd", decimal.NewFromFloat(4.5))

	rate, ok := cache.Get("USD")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(4.5)))
}

func TestRateCache_PutRefreshesEntry(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	cache := services.NewRateCacheWithClock(10*time.Minute, func() time.Time { return now })

	cache.Put("USD", decimal.NewFromFloat(4.5))
	now = base.Add(9 * time.Minute)
	cache.Put("USD", decimal.NewFromFloat(4.6))

	now = base.Add(15 * time.Minute)
	rate, ok := cache.Get("USD")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(4.6)))
}
