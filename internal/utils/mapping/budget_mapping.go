package mapping

import (
	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/lodgebook/lodgebook/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget.
// Derived fields (ActualAmount, Variance) are not persisted.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:       d.BudgetID,
		Name:           d.Name,
		Category:       d.Category,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		BudgetedAmount: d.BudgetedAmount,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget.
// ActualAmount and Variance are left zero for the caller to derive.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:       m.BudgetID,
		Name:           m.Name,
		Category:       m.Category,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		BudgetedAmount: m.BudgetedAmount,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
