package mapping

import (
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/models"
)

// ToModelItineraryItem converts a domain ItineraryItem to a model ItineraryItem.
func ToModelItineraryItem(d domain.ItineraryItem) models.ItineraryItem {
	return models.ItineraryItem{
		ItemID:       d.ItemID,
		TripID:       d.TripID,
		Title:        d.Title,
		DateTime:     d.DateTime,
		ExpectedCost: d.ExpectedCost,
		ActualCost:   d.ActualCost,
		Currency:     d.Currency,
		ExchangeRate: d.ExchangeRate,
		AutoFx:       d.AutoFx,
		MYRExpected:  d.MYRExpected,
		MYRActual:    d.MYRActual,
		Status:       string(d.Status),
		Notes:        d.Notes,
		Location:     d.Location,
		CategoryID:   d.CategoryID,
		DeletedAt:    d.DeletedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItineraryItem converts a model ItineraryItem to a domain ItineraryItem.
func ToDomainItineraryItem(m models.ItineraryItem) domain.ItineraryItem {
	return domain.ItineraryItem{
		ItemID:       m.ItemID,
		TripID:       m.TripID,
		Title:        m.Title,
		DateTime:     m.DateTime,
		ExpectedCost: m.ExpectedCost,
		ActualCost:   m.ActualCost,
		Currency:     m.Currency,
		ExchangeRate: m.ExchangeRate,
		AutoFx:       m.AutoFx,
		MYRExpected:  m.MYRExpected,
		MYRActual:    m.MYRActual,
		Status:       domain.ItemStatus(m.Status),
		Notes:        m.Notes,
		Location:     m.Location,
		CategoryID:   m.CategoryID,
		DeletedAt:    m.DeletedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
