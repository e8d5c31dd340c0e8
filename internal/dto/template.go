package dto

import (
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTemplateRequest defines the structure for creating an item template.
type CreateTemplateRequest struct {
	Title         string           `json:"title" binding:"required"`
	ExpectedCost  *decimal.Decimal `json:"expectedCost"`
	Currency      string           `json:"currency" binding:"omitempty,currencycode"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate"`
	CategoryID    *string          `json:"categoryID"`
	Location      string           `json:"location"`
	Notes         string           `json:"notes"`
	DefaultStatus string           `json:"defaultStatus" binding:"omitempty,oneof=Planned Booked Completed Cancelled"`
}

// UpdateTemplateRequest defines the structure for updating an item template.
// Nil fields are left unchanged.
type UpdateTemplateRequest struct {
	Title         *string          `json:"title"`
	ExpectedCost  *decimal.Decimal `json:"expectedCost"`
	Currency      *string          `json:"currency" binding:"omitempty,currencycode"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate"`
	CategoryID    *string          `json:"categoryID"`
	Location      *string          `json:"location"`
	Notes         *string          `json:"notes"`
	DefaultStatus *string          `json:"defaultStatus" binding:"omitempty,oneof=Planned Booked Completed Cancelled"`
}

// ApplyTemplateRequest defines the structure for instantiating an item from a
// template. DateTime defaults to now when absent.
type ApplyTemplateRequest struct {
	DateTime             *time.Time       `json:"dateTime"`
	ExpectedCostOverride *decimal.Decimal `json:"expectedCostOverride"`
	StatusOverride       *string          `json:"statusOverride" binding:"omitempty,oneof=Planned Booked Completed Cancelled"`
}

// TemplateResponse defines the structure for API responses containing template details.
type TemplateResponse struct {
	TemplateID    string           `json:"templateID"`
	TripID        string           `json:"tripID"`
	Title         string           `json:"title"`
	ExpectedCost  *decimal.Decimal `json:"expectedCost,omitempty"`
	Currency      string           `json:"currency"`
	ExchangeRate  *decimal.Decimal `json:"exchangeRate,omitempty"`
	CategoryID    *string          `json:"categoryID,omitempty"`
	Location      string           `json:"location,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	DefaultStatus string           `json:"defaultStatus"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ToTemplateResponse converts a domain.ItemTemplate to TemplateResponse DTO
func ToTemplateResponse(t *domain.ItemTemplate) TemplateResponse {
	return TemplateResponse{
		TemplateID:    t.TemplateID,
		TripID:        t.TripID,
		Title:         t.Title,
		ExpectedCost:  t.ExpectedCost,
		Currency:      t.Currency,
		ExchangeRate:  t.ExchangeRate,
		CategoryID:    t.CategoryID,
		Location:      t.Location,
		Notes:         t.Notes,
		DefaultStatus: string(t.DefaultStatus),
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTemplateResponse converts a slice of domain templates to response DTOs.
func ToListTemplateResponse(templates []domain.ItemTemplate) []TemplateResponse {
	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = ToTemplateResponse(&templates[i])
	}
	return responses
}
