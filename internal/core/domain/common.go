package domain

import "time"

// HomeCurrencyCode is the single settlement currency every monetary field is
// normalized to. All stored exchange rates mean "1 unit of item currency =
// rate units of MYR".
const HomeCurrencyCode = "MYR"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
