package services

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRateCacheTTL is how long a live-fetched rate stays usable.
const DefaultRateCacheTTL = 10 * time.Minute

type rateCacheEntry struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// InMemoryRateCache is a process-wide, time-bounded memoization of
// live-fetched rates per currency code. Entries are soft state: not
// persisted, lost on restart. Expired and missing entries look identical to
// callers. Failed lookups are never cached (callers only Put on success).
//
// A single shared instance serves all requests; concurrent writers for the
// same currency may race, which is acceptable because either writer's value
// is valid within the TTL window.
type InMemoryRateCache struct {
	mu      sync.Mutex
	entries map[string]rateCacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewRateCache creates a rate cache with the default TTL and wall clock.
func NewRateCache() *InMemoryRateCache {
	return NewRateCacheWithClock(DefaultRateCacheTTL, time.Now)
}

// NewRateCacheWithClock creates a rate cache with an explicit TTL and clock,
// letting tests drive time deterministically.
func NewRateCacheWithClock(ttl time.Duration, now func() time.Time) *InMemoryRateCache {
	return &InMemoryRateCache{
		entries: make(map[string]rateCacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached rate for a currency. A value is usable iff
// now - fetchedAt < TTL; anything older reports absent.
func (c *InMemoryRateCache) Get(currency string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[strings.ToUpper(currency)]
	if !ok {
		return decimal.Decimal{}, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		return decimal.Decimal{}, false
	}
	return entry.rate, true
}

// Put records a freshly fetched rate for a currency.
func (c *InMemoryRateCache) Put(currency string, rate decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[strings.ToUpper(currency)] = rateCacheEntry{rate: rate, fetchedAt: c.now()}
}
