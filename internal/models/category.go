package models

// Category is the database representation of a category row.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"` // unique
	Custom     bool   `json:"custom"`
	AuditFields
}
