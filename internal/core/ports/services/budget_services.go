package services

import (
	"context"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/lodgebook/lodgebook/internal/dto"
)

// BudgetService manages budgets and derives their actuals from the ledger.
type BudgetService interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}
