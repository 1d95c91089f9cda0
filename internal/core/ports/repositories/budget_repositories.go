package repositories

import (
	"context"
	"time"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetRepository persists budgets. Actual spend is always derived from
// ledger postings at read time, never stored.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
	// GetActualSpend sums net expense postings to accounts in the given
	// category within [from, to].
	GetActualSpend(ctx context.Context, category string, from, to time.Time) (decimal.Decimal, error)
}
