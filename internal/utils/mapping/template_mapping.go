package mapping

import (
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/models"
)

// ToModelItemTemplate converts a domain ItemTemplate to a model ItemTemplate.
func ToModelItemTemplate(d domain.ItemTemplate) models.ItemTemplate {
	return models.ItemTemplate{
		TemplateID:    d.TemplateID,
		TripID:        d.TripID,
		Title:         d.Title,
		ExpectedCost:  d.ExpectedCost,
		Currency:      d.Currency,
		ExchangeRate:  d.ExchangeRate,
		CategoryID:    d.CategoryID,
		Location:      d.Location,
		Notes:         d.Notes,
		DefaultStatus: string(d.DefaultStatus),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItemTemplate converts a model ItemTemplate to a domain ItemTemplate.
func ToDomainItemTemplate(m models.ItemTemplate) domain.ItemTemplate {
	return domain.ItemTemplate{
		TemplateID:    m.TemplateID,
		TripID:        m.TripID,
		Title:         m.Title,
		ExpectedCost:  m.ExpectedCost,
		Currency:      m.Currency,
		ExchangeRate:  m.ExchangeRate,
		CategoryID:    m.CategoryID,
		Location:      m.Location,
		Notes:         m.Notes,
		DefaultStatus: domain.ItemStatus(m.DefaultStatus),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
