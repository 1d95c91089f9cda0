package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	portssvc "github.com/lodgebook/lodgebook/internal/core/ports/services"
	"github.com/lodgebook/lodgebook/internal/dto"
)

// budgetService manages spending targets per expense category. Actuals come
// from the ledger on every read, so a budget can never drift out of sync
// with posted transactions.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepository
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository) portssvc.BudgetService {
	return &budgetService{budgetRepo: budgetRepo}
}

var _ portssvc.BudgetService = (*budgetService)(nil)

// CreateBudget validates and stores a new budget.
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: budget end date is before start date", apperrors.ErrValidation)
	}
	if !req.BudgetedAmount.IsPositive() {
		return nil, fmt.Errorf("%w: budgeted amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:       uuid.NewString(),
		Name:           req.Name,
		Category:       req.Category,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		BudgetedAmount: req.BudgetedAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget")
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	// A freshly created budget has no actuals yet; variance starts at the
	// full budgeted amount.
	budget.Variance = budget.BudgetedAmount
	return &budget, nil
}

// GetBudgetByID retrieves a budget with actuals derived from the ledger.
func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget %s: %w", budgetID, err)
	}
	if err := s.enrichActuals(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// ListBudgets retrieves all budgets with derived actuals.
func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	for i := range budgets {
		if err := s.enrichActuals(ctx, &budgets[i]); err != nil {
			return nil, err
		}
	}
	return budgets, nil
}

func (s *budgetService) enrichActuals(ctx context.Context, budget *domain.Budget) error {
	actual, err := s.budgetRepo.GetActualSpend(ctx, budget.Category, budget.StartDate, budget.EndDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to derive actual spend for budget")
		return fmt.Errorf("failed to derive actual spend for budget %s: %w", budget.BudgetID, err)
	}
	budget.ActualAmount = actual
	budget.Variance = budget.BudgetedAmount.Sub(actual)
	return nil
}
