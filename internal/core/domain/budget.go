package domain

import "github.com/shopspring/decimal"

// CategoryBudget caps spending for one category within one trip, in MYR.
type CategoryBudget struct {
	BudgetID   string          `json:"budgetID"`
	TripID     string          `json:"tripID"`
	CategoryID string          `json:"categoryID"`
	LimitMYR   decimal.Decimal `json:"limitMYR"`
	AuditFields
}
