package dto

import (
	"time"

	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTripRequest defines the structure for creating a new trip.
type CreateTripRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Currency    string           `json:"currency" binding:"omitempty,currencycode"`
	BudgetMYR   *decimal.Decimal `json:"budgetMYR"`
	PerDiemMYR  *decimal.Decimal `json:"perDiemMYR"`
}

// UpdateTripRequest defines the structure for updating a trip. Nil fields are
// left unchanged.
type UpdateTripRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Currency    *string          `json:"currency" binding:"omitempty,currencycode"`
	BudgetMYR   *decimal.Decimal `json:"budgetMYR"`
	PerDiemMYR  *decimal.Decimal `json:"perDiemMYR"`
}

// TripResponse defines the structure for API responses containing trip details.
type TripResponse struct {
	TripID      string           `json:"tripID"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"startDate,omitempty"`
	EndDate     *time.Time       `json:"endDate,omitempty"`
	Currency    string           `json:"currency"`
	BudgetMYR   *decimal.Decimal `json:"budgetMYR,omitempty"`
	PerDiemMYR  *decimal.Decimal `json:"perDiemMYR,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// TripWithTotalsResponse adds MYR aggregates to a trip listing entry.
type TripWithTotalsResponse struct {
	TripResponse
	TotalExpected decimal.Decimal `json:"totalExpected"`
	TotalActual   decimal.Decimal `json:"totalActual"`
}

// ToTripResponse converts a domain.Trip to TripResponse DTO
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		TripID:      t.TripID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Currency:    t.Currency,
		BudgetMYR:   t.BudgetMYR,
		PerDiemMYR:  t.PerDiemMYR,
		CreatedAt:   t.CreatedAt,
	}
}

// ToListTripWithTotalsResponse converts trip aggregates to response DTOs.
func ToListTripWithTotalsResponse(trips []domain.TripWithTotals) []TripWithTotalsResponse {
	responses := make([]TripWithTotalsResponse, len(trips))
	for i, t := range trips {
		responses[i] = TripWithTotalsResponse{
			TripResponse:  ToTripResponse(&t.Trip),
			TotalExpected: t.TotalExpected,
			TotalActual:   t.TotalActual,
		}
	}
	return responses
}
