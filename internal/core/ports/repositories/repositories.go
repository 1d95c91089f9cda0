package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	LedgerRepo    LedgerRepository
	ReportingRepo ReportingRepository
	BudgetRepo    BudgetRepository
}
