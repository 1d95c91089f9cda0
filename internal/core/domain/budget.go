package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending target scoped to an expense category and date range.
// ActualAmount and Variance are derived from ledger postings on every read;
// they are never stored as ground truth.
type Budget struct {
	BudgetID       string          `json:"budgetID"` // Primary key (UUID)
	Name           string          `json:"name"`
	Category       string          `json:"category"` // Matches Account.Category on expense accounts
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	BudgetedAmount decimal.Decimal `json:"budgetedAmount"`
	ActualAmount   decimal.Decimal `json:"actualAmount"`
	Variance       decimal.Decimal `json:"variance"` // BudgetedAmount - ActualAmount
	AuditFields
}
