package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChain(t *testing.T, primary, tertiary http.HandlerFunc) (*services.RateProviderChain, *services.InMemoryRateCache) {
	t.Helper()
	primarySrv := httptest.NewServer(primary)
	t.Cleanup(primarySrv.Close)
	tertiarySrv := httptest.NewServer(tertiary)
	t.Cleanup(tertiarySrv.Close)

	cache := services.NewRateCacheWithClock(10*time.Minute, time.Now)
	chain := services.NewRateProviderChain(primarySrv.Client(), cache, primarySrv.URL, tertiarySrv.URL, 3*time.Second, nil)
	return chain, cache
}

func TestChain_DirectQuoteSuccess(t *testing.T) {
	chain, cache := newTestChain(t,
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "USD", r.URL.Query().Get("base"))
			assert.Equal(t, "MYR", r.URL.Query().Get("symbols"))
			w.Write([]byte(`{"rates":{"MYR":4.5}}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("tertiary provider should not be consulted")
		},
	)

	rate, ok := chain.ResolveLive(context.Background(), "USD")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(4.5)))

	cached, ok := cache.Get("USD")
	require.True(t, ok)
	assert.True(t, cached.Equal(decimal.NewFromFloat(4.5)))
}

func TestChain_InvertedQuoteFallback(t *testing.T) {
	chain, _ := newTestChain(t,
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("base") == "MYR" {
				// inverted quote: 1 MYR = 0.25 XAB, so 1 XAB = 4 MYR
				w.Write([]byte(`{"rates":{"XAB":0.25}}`))
				return
			}
			// direct quote has no MYR leg
			w.Write([]byte(`{"rates":{}}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("tertiary provider should not be consulted")
		},
	)

	rate, ok := chain.ResolveLive(context.Background(), "XAB")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(4)))
}

func TestChain_TertiaryFallback(t *testing.T) {
	chain, _ := newTestChain(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/JPY", r.URL.Path)
			w.Write([]byte(`{"rates":{"MYR":0.03,"USD":0.0067}}`))
		},
	)

	rate, ok := chain.ResolveLive(context.Background(), "JPY")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.03)))
}

func TestChain_AllProvidersFail(t *testing.T) {
	chain, cache := newTestChain(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		},
	)

	_, ok := chain.ResolveLive(context.Background(), "XYZ")
	assert.False(t, ok)

	// failures are never cached
	_, ok = cache.Get("XYZ")
	assert.False(t, ok)
}

func TestChain_RejectsNonPositiveRates(t *testing.T) {
	chain, _ := newTestChain(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":{"MYR":0,"XAB":-2}}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":{"MYR":-1}}`))
		},
	)

	_, ok := chain.ResolveLive(context.Background(), "XAB")
	assert.False(t, ok)
}

func TestChain_CacheHitShortCircuits(t *testing.T) {
	calls := 0
	chain, cache := newTestChain(t,
		func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Write([]byte(`{"rates":{"MYR":4.5}}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("tertiary provider should not be consulted")
		},
	)
	cache.Put("USD", decimal.NewFromFloat(4.4))

	rate, ok := chain.ResolveLive(context.Background(), "USD")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromFloat(4.4)))
	assert.Zero(t, calls)
}

func TestChain_SharedDeadlineSkipsRemainingAttempts(t *testing.T) {
	tertiaryCalled := false
	primarySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"rates":{}}`))
	}))
	t.Cleanup(primarySrv.Close)
	tertiarySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tertiaryCalled = true
		w.Write([]byte(`{"rates":{"MYR":4.5}}`))
	}))
	t.Cleanup(tertiarySrv.Close)

	cache := services.NewRateCacheWithClock(10*time.Minute, time.Now)
	chain := services.NewRateProviderChain(primarySrv.Client(), cache, primarySrv.URL, tertiarySrv.URL, 100*time.Millisecond, nil)

	start := time.Now()
	_, ok := chain.ResolveLive(context.Background(), "USD")
	elapsed := time.Since(start)

	assert.False(t, ok)
	assert.False(t, tertiaryCalled, "deadline spent on primary must skip the tertiary attempt")
	assert.Less(t, elapsed, 2*time.Second)
}
