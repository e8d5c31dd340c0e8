package dto

import (
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertFxOverrideRequest defines the structure for pinning an exchange rate.
// Date may carry a time-of-day component; it is normalized to its UTC calendar
// day before use. Rate must be strictly positive (checked at the boundary).
type UpsertFxOverrideRequest struct {
	Date     time.Time       `json:"date" binding:"required"`
	Currency string          `json:"currency" binding:"required,currencycode"`
	Rate     decimal.Decimal `json:"rate" binding:"required"`
}

// ListFxOverridesRequest captures the optional query filters of the override
// listing endpoint.
type ListFxOverridesRequest struct {
	Currency *string    `form:"currency"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
}

// FxOverrideResponse defines the structure for API responses containing override details.
type FxOverrideResponse struct {
	OverrideID string          `json:"overrideID"`
	Date       time.Time       `json:"date"`
	Currency   string          `json:"currency"`
	Rate       decimal.Decimal `json:"rate"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ToFxOverrideResponse converts a domain.FxRateOverride to FxOverrideResponse DTO
func ToFxOverrideResponse(o *domain.FxRateOverride) FxOverrideResponse {
	return FxOverrideResponse{
		OverrideID: o.OverrideID,
		Date:       o.Date,
		Currency:   o.Currency,
		Rate:       o.Rate,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.LastUpdatedAt,
	}
}

// ToListFxOverrideResponse converts a slice of domain overrides to response DTOs.
func ToListFxOverrideResponse(overrides []domain.FxRateOverride) []FxOverrideResponse {
	responses := make([]FxOverrideResponse, len(overrides))
	for i := range overrides {
		responses[i] = ToFxOverrideResponse(&overrides[i])
	}
	return responses
}
