package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	portssvc "github.com/amirulhm/tripwise_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DefaultChainTimeout bounds one whole resolution chain, measured from chain
// entry and shared across all provider attempts.
const DefaultChainTimeout = 3 * time.Second

// providerRates is the minimal response shape both providers share.
type providerRates struct {
	Rates map[string]float64 `json:"rates"`
}

// RateProviderChain resolves currency→MYR rates from live providers, tried in
// strict order, first success wins:
//
//  1. primary provider, direct quote (?base=CUR&symbols=MYR)
//  2. primary provider, inverted quote (?base=MYR&symbols=CUR, rate = 1/inv)
//  3. tertiary provider, MYR leg of the currency's rate basket (/{CUR})
//
// Every provider failure (network, non-2xx, malformed body, non-positive or
// non-finite rate) is logged and swallowed; the chain degrades to ok=false
// rather than returning an error. A successful resolution is written to the
// cache before returning; a cache hit short-circuits the chain entirely.
type RateProviderChain struct {
	client      *http.Client
	cache       portssvc.RateCache
	primaryURL  string
	tertiaryURL string
	timeout     time.Duration
	logger      *slog.Logger
}

// NewRateProviderChain creates a chain over the given provider base URLs.
// primaryURL serves exchangerate.host-style ?base=&symbols= queries;
// tertiaryURL serves open.er-api.com-style /{currency} lookups.
func NewRateProviderChain(client *http.Client, cache portssvc.RateCache, primaryURL, tertiaryURL string, timeout time.Duration, logger *slog.Logger) *RateProviderChain {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultChainTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RateProviderChain{
		client:      client,
		cache:       cache,
		primaryURL:  primaryURL,
		tertiaryURL: tertiaryURL,
		timeout:     timeout,
		logger:      logger,
	}
}

// ResolveLive resolves the MYR rate for a currency. It never returns an
// error; all failure modes degrade to ok=false.
func (p *RateProviderChain) ResolveLive(ctx context.Context, currency string) (decimal.Decimal, bool) {
	cur := strings.ToUpper(currency)

	if cached, ok := p.cache.Get(cur); ok {
		return cached, true
	}

	// One deadline for the whole chain. If it elapses mid-chain the
	// remaining attempts are skipped, and cancellation tears down any
	// in-flight connection rather than merely abandoning the wait.
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if rate, ok := p.resolveDirect(ctx, cur); ok {
		p.cache.Put(cur, rate)
		return rate, true
	}
	if rate, ok := p.resolveInverted(ctx, cur); ok {
		p.cache.Put(cur, rate)
		return rate, true
	}
	if rate, ok := p.resolveTertiary(ctx, cur); ok {
		p.logger.Warn("used tertiary FX provider", slog.String("currency", cur))
		p.cache.Put(cur, rate)
		return rate, true
	}
	return decimal.Decimal{}, false
}

// resolveDirect queries the primary provider for currency→MYR.
func (p *RateProviderChain) resolveDirect(ctx context.Context, cur string) (decimal.Decimal, bool) {
	endpoint := fmt.Sprintf("%s?base=%s&symbols=%s", p.primaryURL, url.QueryEscape(cur), domain.HomeCurrencyCode)
	body, err := p.fetch(ctx, endpoint)
	if err != nil {
		p.logger.Warn("primary FX provider failed", slog.String("currency", cur), slog.String("error", err.Error()))
		return decimal.Decimal{}, false
	}
	rate, ok := validRate(body.Rates[domain.HomeCurrencyCode])
	if !ok {
		p.logger.Warn("primary FX provider returned unusable rate", slog.String("currency", cur))
	}
	return rate, ok
}

// resolveInverted queries the primary provider for MYR→currency and inverts.
// Used when the direct-quote endpoint lacks the pair.
func (p *RateProviderChain) resolveInverted(ctx context.Context, cur string) (decimal.Decimal, bool) {
	endpoint := fmt.Sprintf("%s?base=%s&symbols=%s", p.primaryURL, domain.HomeCurrencyCode, url.QueryEscape(cur))
	body, err := p.fetch(ctx, endpoint)
	if err != nil {
		p.logger.Warn("fallback FX invert failed", slog.String("currency", cur), slog.String("error", err.Error()))
		return decimal.Decimal{}, false
	}
	inv := body.Rates[cur]
	if !math.IsNaN(inv) && !math.IsInf(inv, 0) && inv > 0 {
		return decimal.NewFromFloat(1).Div(decimal.NewFromFloat(inv)), true
	}
	p.logger.Warn("fallback FX invert returned unusable rate", slog.String("currency", cur))
	return decimal.Decimal{}, false
}

// resolveTertiary queries the independent tertiary provider for the
// currency's full basket and extracts the MYR leg.
func (p *RateProviderChain) resolveTertiary(ctx context.Context, cur string) (decimal.Decimal, bool) {
	endpoint := fmt.Sprintf("%s/%s", strings.TrimRight(p.tertiaryURL, "/"), url.PathEscape(cur))
	body, err := p.fetch(ctx, endpoint)
	if err != nil {
		p.logger.Warn("tertiary FX provider failed", slog.String("currency", cur), slog.String("error", err.Error()))
		return decimal.Decimal{}, false
	}
	rate, ok := validRate(body.Rates[domain.HomeCurrencyCode])
	if !ok {
		p.logger.Warn("tertiary FX provider missing MYR rate", slog.String("currency", cur))
	}
	return rate, ok
}

// fetch performs one bounded GET and decodes the shared rates shape.
func (p *RateProviderChain) fetch(ctx context.Context, endpoint string) (*providerRates, error) {
	if err := ctx.Err(); err != nil {
		// Shared deadline already spent; skip the attempt.
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("provider response not ok (%d)", resp.StatusCode)
	}
	var body providerRates
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("malformed provider body: %w", err)
	}
	return &body, nil
}

// validRate accepts only finite, strictly positive rates.
func validRate(v float64) (decimal.Decimal, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(v), true
}
