package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo)
	reportingRepo := newReportingRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		LedgerRepo:    ledgerRepo,
		ReportingRepo: reportingRepo,
		BudgetRepo:    budgetRepo,
	}
}
