package mapping

import (
	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/lodgebook/lodgebook/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:        d.AccountID,
		AccountCode:      d.AccountCode,
		Name:             d.Name,
		AccountType:      models.AccountType(d.AccountType),
		Category:         d.Category,
		NormalBalance:    string(d.NormalBalance),
		Balance:          d.Balance,
		IsCashEquivalent: d.IsCashEquivalent,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		AccountCode:      m.AccountCode,
		Name:             m.Name,
		AccountType:      domain.AccountType(m.AccountType),
		Category:         m.Category,
		NormalBalance:    domain.NormalBalance(m.NormalBalance),
		Balance:          m.Balance,
		IsCashEquivalent: m.IsCashEquivalent,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
