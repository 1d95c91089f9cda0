package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	"github.com/lodgebook/lodgebook/internal/models"
	"github.com/lodgebook/lodgebook/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const budgetColumns = `budget_id, name, category, start_date, end_date, budgeted_amount, created_at, created_by, last_updated_at, last_updated_by`

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.Name,
		&m.Category,
		&m.StartDate,
		&m.EndDate,
		&m.BudgetedAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBudget inserts a new budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.Name,
		modelBudget.Category,
		modelBudget.StartDate,
		modelBudget.EndDate,
		modelBudget.BudgetedAmount,
		modelBudget.CreatedAt,
		modelBudget.CreatedBy,
		modelBudget.LastUpdatedAt,
		modelBudget.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget %s already exists", apperrors.ErrDuplicate, modelBudget.BudgetID)
		}
		return fmt.Errorf("failed to save budget %s: %w", modelBudget.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`

	modelBudget, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	domainBudget := mapping.ToDomainBudget(modelBudget)
	return &domainBudget, nil
}

// ListBudgets retrieves all budgets, most recent period first.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets ORDER BY start_date DESC, name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		modelBudget, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(modelBudget))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	return budgets, nil
}

// GetActualSpend sums net expense postings to accounts in the given category
// within [from, to], in normal-balance terms. Reversal entries net out, so a
// reversed expense does not count against the budget.
func (r *PgxBudgetRepository) GetActualSpend(ctx context.Context, category string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(` + signedNet + `), 0) AS actual
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		JOIN transactions t ON e.transaction_id = t.transaction_id
		WHERE t.transaction_date BETWEEN $1 AND $2
			AND a.account_type = 'EXPENSE'
			AND a.category = $3;
	`
	var actual decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to, category).Scan(&actual); err != nil {
		return decimal.Zero, fmt.Errorf("failed to query actual spend for category %s: %w", category, err)
	}
	return actual, nil
}
