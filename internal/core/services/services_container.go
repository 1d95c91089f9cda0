package services

import (
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	portssvc "github.com/lodgebook/lodgebook/internal/core/ports/services"
)

// NewServiceContainer wires every service with its repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo),
		Ledger:    NewLedgerService(repos.LedgerRepo, repos.AccountRepo),
		Reporting: NewReportingService(repos.ReportingRepo),
		Budget:    NewBudgetService(repos.BudgetRepo),
	}
}
