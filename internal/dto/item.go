package dto

import (
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the structure for creating an itinerary item.
// ExchangeRate, when supplied, means "1 unit of Currency = ExchangeRate MYR";
// a non-positive value is ignored rather than rejected, matching the rate
// precedence rules (the next rate source is consulted instead).
type CreateItemRequest struct {
	Title        string           `json:"title" binding:"required"`
	DateTime     time.Time        `json:"dateTime" binding:"required"`
	Currency     string           `json:"currency" binding:"required,currencycode"`
	ExpectedCost *decimal.Decimal `json:"expectedCost"`
	ActualCost   *decimal.Decimal `json:"actualCost"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	Status       string           `json:"status" binding:"omitempty,oneof=Planned Booked Completed Cancelled"`
	Notes        string           `json:"notes"`
	Location     string           `json:"location"`
	CategoryID   *string          `json:"categoryID"`
}

// UpdateItemRequest defines the structure for updating an itinerary item.
// Nil fields are left unchanged.
type UpdateItemRequest struct {
	Title        *string          `json:"title"`
	DateTime     *time.Time       `json:"dateTime"`
	Currency     *string          `json:"currency" binding:"omitempty,currencycode"`
	ExpectedCost *decimal.Decimal `json:"expectedCost"`
	ActualCost   *decimal.Decimal `json:"actualCost"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	Status       *string          `json:"status" binding:"omitempty,oneof=Planned Booked Completed Cancelled"`
	Notes        *string          `json:"notes"`
	Location     *string          `json:"location"`
	CategoryID   *string          `json:"categoryID"`
}

// ItemResponse defines the structure for API responses containing item details.
type ItemResponse struct {
	ItemID       string           `json:"itemID"`
	TripID       string           `json:"tripID"`
	Title        string           `json:"title"`
	DateTime     time.Time        `json:"dateTime"`
	Currency     string           `json:"currency"`
	ExpectedCost *decimal.Decimal `json:"expectedCost,omitempty"`
	ActualCost   *decimal.Decimal `json:"actualCost,omitempty"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
	AutoFx       bool             `json:"autoFx"`
	MYRExpected  *decimal.Decimal `json:"myrExpected,omitempty"`
	MYRActual    *decimal.Decimal `json:"myrActual,omitempty"`
	Status       string           `json:"status"`
	Notes        string           `json:"notes,omitempty"`
	Location     string           `json:"location,omitempty"`
	CategoryID   *string          `json:"categoryID,omitempty"`
	DeletedAt    *time.Time       `json:"deletedAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ToItemResponse converts a domain.ItineraryItem to ItemResponse DTO
func ToItemResponse(i *domain.ItineraryItem) ItemResponse {
	return ItemResponse{
		ItemID:       i.ItemID,
		TripID:       i.TripID,
		Title:        i.Title,
		DateTime:     i.DateTime,
		Currency:     i.Currency,
		ExpectedCost: i.ExpectedCost,
		ActualCost:   i.ActualCost,
		ExchangeRate: i.ExchangeRate,
		AutoFx:       i.AutoFx,
		MYRExpected:  i.MYRExpected,
		MYRActual:    i.MYRActual,
		Status:       string(i.Status),
		Notes:        i.Notes,
		Location:     i.Location,
		CategoryID:   i.CategoryID,
		DeletedAt:    i.DeletedAt,
		CreatedAt:    i.CreatedAt,
	}
}

// ToListItemResponse converts a slice of domain items to response DTOs.
func ToListItemResponse(items []domain.ItineraryItem) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}
