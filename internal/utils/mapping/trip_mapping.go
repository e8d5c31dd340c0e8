package mapping

import (
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/models"
)

// ToModelTrip converts a domain Trip to a model Trip.
func ToModelTrip(d domain.Trip) models.Trip {
	return models.Trip{
		TripID:      d.TripID,
		Name:        d.Name,
		Description: d.Description,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Currency:    d.Currency,
		BudgetMYR:   d.BudgetMYR,
		PerDiemMYR:  d.PerDiemMYR,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrip converts a model Trip to a domain Trip.
func ToDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:      m.TripID,
		Name:        m.Name,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Currency:    m.Currency,
		BudgetMYR:   m.BudgetMYR,
		PerDiemMYR:  m.PerDiemMYR,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
