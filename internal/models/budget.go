package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the budgets table row. Actuals are never stored; they are
// aggregated from journal entries at read time.
type Budget struct {
	BudgetID       string          `db:"budget_id"`
	Name           string          `db:"name"`
	Category       string          `db:"category"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	BudgetedAmount decimal.Decimal `db:"budgeted_amount"`
	AuditFields
}
