package domain

// Category labels itinerary items for budgeting and analytics.
// Non-custom categories are seeded at startup and shared across trips.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Custom     bool   `json:"custom"`
	AuditFields
}

// DefaultCategoryNames are seeded on startup if missing.
var DefaultCategoryNames = []string{"Flight", "Hotel", "Food", "Transport", "Shopping", "Entertainment"}
