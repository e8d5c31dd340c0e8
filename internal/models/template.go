package models

import "github.com/shopspring/decimal"

// ItemTemplate is the database representation of an item template row.
type ItemTemplate struct {
	TemplateID    string           `json:"templateID"`
	TripID        string           `json:"tripID"`
	Title         string           `json:"title"`
	ExpectedCost  *decimal.Decimal `json:"expectedCost"`
	Currency      string           `json:"currency"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate"`
	CategoryID    *string          `json:"categoryID"`
	Location      string           `json:"location"`
	Notes         string           `json:"notes"`
	DefaultStatus string           `json:"defaultStatus"`
	AuditFields
}
