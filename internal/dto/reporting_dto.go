package dto

import "github.com/shopspring/decimal"

// TripSummaryResponse aggregates a trip's already-resolved MYR fields.
// Rates are never re-resolved here.
type TripSummaryResponse struct {
	TotalExpected       decimal.Decimal  `json:"totalExpected"`
	TotalActual         decimal.Decimal  `json:"totalActual"`
	Remaining           decimal.Decimal  `json:"remaining"`
	Budget              *decimal.Decimal `json:"budget"`
	BudgetRemaining     *decimal.Decimal `json:"budgetRemaining"`
	BudgetVariance      *decimal.Decimal `json:"budgetVariance"` // positive = overspend
	PerDiem             *decimal.Decimal `json:"perDiem"`
	TripDays            *int             `json:"tripDays"`
	PerDiemTotal        *decimal.Decimal `json:"perDiemTotal"`
	PerDiemVariance     *decimal.Decimal `json:"perDiemVariance"`
	PercentActualLogged decimal.Decimal  `json:"percentActualLogged"`
}

// CategoryBreakdownEntry is one row of the per-category analytics view.
type CategoryBreakdownEntry struct {
	Category string          `json:"category"`
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	Count    int             `json:"count"`
	Diff     decimal.Decimal `json:"diff"`
}

// DailyTrendEntry is one row of the daily spending trend, keyed by the item's
// UTC calendar date.
type DailyTrendEntry struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
}
