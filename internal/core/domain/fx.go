package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRateOverride pins an authoritative exchange rate for one UTC calendar date
// and one currency, pre-empting any live provider lookup. Keyed uniquely by
// (Date, Currency); upserting an existing key replaces the rate. Overrides
// never expire on their own.
type FxRateOverride struct {
	OverrideID string          `json:"overrideID"`
	Date       time.Time       `json:"date"` // UTC midnight, time-of-day zeroed
	Currency   string          `json:"currency"`
	Rate       decimal.Decimal `json:"rate"` // 1 unit of Currency = Rate units of MYR
	AuditFields
}

// ConversionRequest is the input to the conversion policy for one item write.
// UserRate, when present, has already passed boundary validation (finite, > 0
// enforced at the DTO layer); HasCost reports whether at least one of
// expected/actual cost was supplied.
type ConversionRequest struct {
	Currency string
	ItemDate time.Time
	UserRate *decimal.Decimal
	HasCost  bool
}

// ConversionPriorState carries the already-persisted rate fields of an item
// being updated.
type ConversionPriorState struct {
	Currency string
	Rate     *decimal.Decimal
	AutoFx   bool
}

// RateResolution is the outcome of the conversion policy for one item write.
// Rate is nil when no source could supply one. AutoFx is true only when the
// rate was obtained from a live provider (or its still-fresh cached value),
// never for user input, overrides, or the MYR identity.
type RateResolution struct {
	Rate   *decimal.Decimal
	AutoFx bool
}
