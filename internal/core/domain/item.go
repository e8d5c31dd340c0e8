package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus indicates the lifecycle state of an itinerary item.
type ItemStatus string

const (
	StatusPlanned   ItemStatus = "Planned"
	StatusBooked    ItemStatus = "Booked"
	StatusCompleted ItemStatus = "Completed"
	StatusCancelled ItemStatus = "Cancelled"
)

// ItineraryItem is a single planned or incurred expense within a trip.
//
// ExchangeRate is a point-in-time snapshot taken when the item was written;
// later overrides or cache refreshes never mutate it. MYRExpected/MYRActual
// are derived as round4(cost * rate) and are only present when both sides are.
type ItineraryItem struct {
	ItemID       string           `json:"itemID"`
	TripID       string           `json:"tripID"`
	Title        string           `json:"title"`
	DateTime     time.Time        `json:"dateTime"`
	ExpectedCost *decimal.Decimal `json:"expectedCost,omitempty"`
	ActualCost   *decimal.Decimal `json:"actualCost,omitempty"`
	Currency     string           `json:"currency"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
	AutoFx       bool             `json:"autoFx"` // true only when the rate came from a live provider
	MYRExpected  *decimal.Decimal `json:"myrExpected,omitempty"`
	MYRActual    *decimal.Decimal `json:"myrActual,omitempty"`
	Status       ItemStatus       `json:"status"`
	Notes        string           `json:"notes,omitempty"`
	Location     string           `json:"location,omitempty"`
	CategoryID   *string          `json:"categoryID,omitempty"`
	DeletedAt    *time.Time       `json:"deletedAt,omitempty"`
	AuditFields
}

// IsDeleted reports whether the item carries a soft-delete marker.
func (i *ItineraryItem) IsDeleted() bool {
	return i.DeletedAt != nil
}
