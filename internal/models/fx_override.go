package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRateOverride is the database representation of a pinned exchange rate.
// (DateOnly, Currency) is unique; rate is NUMERIC.
type FxRateOverride struct {
	OverrideID string          `json:"overrideID"`
	DateOnly   time.Time       `json:"date"`
	Currency   string          `json:"currency"`
	Rate       decimal.Decimal `json:"rate"`
	AuditFields
}
