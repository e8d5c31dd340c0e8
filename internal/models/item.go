package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItineraryItem is the database representation of an itinerary item row.
// Monetary columns use NUMERIC and scan into decimal.Decimal.
type ItineraryItem struct {
	ItemID       string           `json:"itemID"`
	TripID       string           `json:"tripID"`
	Title        string           `json:"title"`
	DateTime     time.Time        `json:"dateTime"`
	ExpectedCost *decimal.Decimal `json:"expectedCost"`
	ActualCost   *decimal.Decimal `json:"actualCost"`
	Currency     string           `json:"currency"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	AutoFx       bool             `json:"autoFx"`
	MYRExpected  *decimal.Decimal `json:"myrExpected"`
	MYRActual    *decimal.Decimal `json:"myrActual"`
	Status       string           `json:"status"`
	Notes        string           `json:"notes"`
	Location     string           `json:"location"`
	CategoryID   *string          `json:"categoryID"`
	DeletedAt    *time.Time       `json:"deletedAt"`
	AuditFields
}
