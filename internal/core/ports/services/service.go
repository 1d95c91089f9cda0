package services

// ServiceContainer bundles every service for injection into handlers.
type ServiceContainer struct {
	Account   AccountService
	Ledger    LedgerService
	Reporting ReportingService
	Budget    BudgetService
}
