package mapping

import (
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/models"
)

// ToModelFxRateOverride converts a domain FxRateOverride to a model FxRateOverride.
func ToModelFxRateOverride(d domain.FxRateOverride) models.FxRateOverride {
	return models.FxRateOverride{
		OverrideID:  d.OverrideID,
		DateOnly:    d.Date,
		Currency:    d.Currency,
		Rate:        d.Rate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFxRateOverride converts a model FxRateOverride to a domain FxRateOverride.
func ToDomainFxRateOverride(m models.FxRateOverride) domain.FxRateOverride {
	return domain.FxRateOverride{
		OverrideID:  m.OverrideID,
		Date:        m.DateOnly,
		Currency:    m.Currency,
		Rate:        m.Rate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
