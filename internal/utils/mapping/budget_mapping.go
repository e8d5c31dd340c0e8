package mapping

import (
	"github.com/amirulhm/tripwise_backend/internal/core/domain"
	"github.com/amirulhm/tripwise_backend/internal/models"
)

// ToModelCategoryBudget converts a domain CategoryBudget to a model CategoryBudget.
func ToModelCategoryBudget(d domain.CategoryBudget) models.CategoryBudget {
	return models.CategoryBudget{
		BudgetID:    d.BudgetID,
		TripID:      d.TripID,
		CategoryID:  d.CategoryID,
		LimitMYR:    d.LimitMYR,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategoryBudget converts a model CategoryBudget to a domain CategoryBudget.
func ToDomainCategoryBudget(m models.CategoryBudget) domain.CategoryBudget {
	return domain.CategoryBudget{
		BudgetID:    m.BudgetID,
		TripID:      m.TripID,
		CategoryID:  m.CategoryID,
		LimitMYR:    m.LimitMYR,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
