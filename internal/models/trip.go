package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is the database representation of a trip row.
type Trip struct {
	TripID      string           `json:"tripID"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Currency    string           `json:"currency"`
	BudgetMYR   *decimal.Decimal `json:"budgetMYR"`
	PerDiemMYR  *decimal.Decimal `json:"perDiemMYR"`
	AuditFields
}
