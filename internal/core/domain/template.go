package domain

import "github.com/shopspring/decimal"

// ItemTemplate is a reusable blueprint for recurring itinerary items
// (e.g. a nightly hotel charge). Applying a template instantiates an item
// using the template's stored rate verbatim; no live resolution happens.
type ItemTemplate struct {
	TemplateID    string           `json:"templateID"`
	TripID        string           `json:"tripID"`
	Title         string           `json:"title"`
	ExpectedCost  *decimal.Decimal `json:"expectedCost,omitempty"`
	Currency      string           `json:"currency"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate,omitempty"`
	CategoryID    *string          `json:"categoryID,omitempty"`
	Location      string           `json:"location,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	DefaultStatus ItemStatus       `json:"defaultStatus"`
	AuditFields
}
