package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository aggregates journal entries for financial statements.
// Every amount is computed in normal-balance terms: an entry whose side
// matches the account's normal balance counts positive, the opposite side
// counts negative. Reversal entries are included and cancel their originals
// arithmetically, so no status filtering is needed.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// signedNet is the per-entry signed amount in normal-balance terms.
const signedNet = `CASE WHEN e.entry_type = a.normal_balance THEN e.amount ELSE -e.amount END`

func (r *reportingRepository) queryAccountAmounts(ctx context.Context, query string, args ...interface{}) ([]domain.AccountAmount, []string, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying report data: %w", err)
	}
	defer rows.Close()

	amounts := []domain.AccountAmount{}
	types := []string{}
	for rows.Next() {
		var accountType string
		var amount domain.AccountAmount
		if err := rows.Scan(&accountType, &amount.AccountID, &amount.AccountCode, &amount.Name, &amount.NetAmount); err != nil {
			return nil, nil, fmt.Errorf("error scanning report row: %w", err)
		}
		amounts = append(amounts, amount)
		types = append(types, accountType)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return amounts, types, nil
}

// GetProfitAndLossData returns per-account net activity for revenue and
// expense accounts within [from, to]. Accounts with no postings in the
// period are absent.
func (r *reportingRepository) GetProfitAndLossData(ctx context.Context, from, to time.Time) ([]domain.AccountAmount, []domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.account_id,
			a.account_code,
			a.name,
			SUM(` + signedNet + `) AS net
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		JOIN transactions t ON e.transaction_id = t.transaction_id
		WHERE t.transaction_date BETWEEN $1 AND $2
			AND a.account_type IN ('REVENUE', 'EXPENSE')
		GROUP BY a.account_type, a.account_id, a.account_code, a.name
		ORDER BY a.account_code;
	`
	amounts, types, err := r.queryAccountAmounts(ctx, query, from, to)
	if err != nil {
		return nil, nil, err
	}

	revenue := []domain.AccountAmount{}
	expenses := []domain.AccountAmount{}
	for i, amount := range amounts {
		if types[i] == string(domain.Revenue) {
			revenue = append(revenue, amount)
		} else {
			expenses = append(expenses, amount)
		}
	}
	return revenue, expenses, nil
}

// GetBalanceSheetData returns cumulative per-account balances for asset,
// liability and equity accounts through asOf.
func (r *reportingRepository) GetBalanceSheetData(ctx context.Context, asOf time.Time) ([]domain.AccountAmount, []domain.AccountAmount, []domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.account_id,
			a.account_code,
			a.name,
			SUM(` + signedNet + `) AS net
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		JOIN transactions t ON e.transaction_id = t.transaction_id
		WHERE t.transaction_date <= $1
			AND a.account_type IN ('ASSET', 'LIABILITY', 'EQUITY')
		GROUP BY a.account_type, a.account_id, a.account_code, a.name
		ORDER BY a.account_code;
	`
	amounts, types, err := r.queryAccountAmounts(ctx, query, asOf)
	if err != nil {
		return nil, nil, nil, err
	}

	assets := []domain.AccountAmount{}
	liabilities := []domain.AccountAmount{}
	equity := []domain.AccountAmount{}
	for i, amount := range amounts {
		switch types[i] {
		case string(domain.Asset):
			assets = append(assets, amount)
		case string(domain.Liability):
			liabilities = append(liabilities, amount)
		default:
			equity = append(equity, amount)
		}
	}
	return assets, liabilities, equity, nil
}

// GetNetIncomeThrough returns total revenue minus total expenses from the
// beginning of the ledger through asOf. The reporting layer folds this into
// equity as the retained-earnings line.
func (r *reportingRepository) GetNetIncomeThrough(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN a.account_type = 'REVENUE'
				THEN ` + signedNet + `
				ELSE -(` + signedNet + `)
			END
		), 0) AS net_income
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		JOIN transactions t ON e.transaction_id = t.transaction_id
		WHERE t.transaction_date <= $1
			AND a.account_type IN ('REVENUE', 'EXPENSE');
	`
	var netIncome decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, asOf).Scan(&netIncome); err != nil {
		return decimal.Zero, fmt.Errorf("error querying net income: %w", err)
	}
	return netIncome, nil
}

// GetCashFlowData returns per-account net movement of cash-equivalent asset
// accounts within [from, to].
func (r *reportingRepository) GetCashFlowData(ctx context.Context, from, to time.Time) ([]domain.AccountAmount, error) {
	query := `
		SELECT
			a.account_type,
			a.account_id,
			a.account_code,
			a.name,
			SUM(` + signedNet + `) AS net
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		JOIN transactions t ON e.transaction_id = t.transaction_id
		WHERE t.transaction_date BETWEEN $1 AND $2
			AND a.account_type = 'ASSET'
			AND a.is_cash_equivalent = TRUE
		GROUP BY a.account_type, a.account_id, a.account_code, a.name
		ORDER BY a.account_code;
	`
	amounts, _, err := r.queryAccountAmounts(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	return amounts, nil
}
