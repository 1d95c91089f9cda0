package dto

import (
	"time"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	Name           string          `json:"name" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	StartDate      time.Time       `json:"startDate" binding:"required"`
	EndDate        time.Time       `json:"endDate" binding:"required"`
	BudgetedAmount decimal.Decimal `json:"budgetedAmount" binding:"required"`
}

// BudgetResponse defines the data returned for a budget, with actuals and
// variance derived from the ledger at read time.
type BudgetResponse struct {
	BudgetID       string          `json:"budgetID"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	BudgetedAmount decimal.Decimal `json:"budgetedAmount"`
	ActualAmount   decimal.Decimal `json:"actualAmount"`
	Variance       decimal.Decimal `json:"variance"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:       b.BudgetID,
		Name:           b.Name,
		Category:       b.Category,
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		BudgetedAmount: b.BudgetedAmount,
		ActualAmount:   b.ActualAmount,
		Variance:       b.Variance,
		CreatedAt:      b.CreatedAt,
		CreatedBy:      b.CreatedBy,
	}
}

// ToListBudgetsResponse converts a slice of domain.Budget to the list DTO
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Budgets: res}
}
