package models

import "github.com/shopspring/decimal"

// CategoryBudget is the database representation of a per-trip category budget row.
type CategoryBudget struct {
	BudgetID   string          `json:"budgetID"`
	TripID     string          `json:"tripID"`
	CategoryID string          `json:"categoryID"`
	LimitMYR   decimal.Decimal `json:"limitMYR"`
	AuditFields
}
