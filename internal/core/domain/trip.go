package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip groups itinerary items under one journey with an optional overall
// budget and per-diem allowance, both denominated in MYR.
type Trip struct {
	TripID      string           `json:"tripID"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Currency    string           `json:"currency"` // default display currency for new items
	BudgetMYR   *decimal.Decimal `json:"budgetMYR,omitempty"`
	PerDiemMYR  *decimal.Decimal `json:"perDiemMYR,omitempty"`
	AuditFields
}

// TripWithTotals carries a trip plus MYR aggregates over its non-deleted items.
type TripWithTotals struct {
	Trip
	TotalExpected decimal.Decimal `json:"totalExpected"`
	TotalActual   decimal.Decimal `json:"totalActual"`
}
