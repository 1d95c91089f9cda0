package repositories

import (
	"context"
	"time"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository aggregates posted journal entries for financial
// statements. All methods are read-only; reversed activity cancels itself
// out arithmetically, so no filtering of reversals is needed.
type ReportingRepository interface {
	// GetProfitAndLossData returns per-account net activity for revenue and
	// expense accounts within [from, to]. Accounts with no activity are absent.
	GetProfitAndLossData(ctx context.Context, from, to time.Time) (revenue, expenses []domain.AccountAmount, err error)
	// GetBalanceSheetData returns cumulative per-account balances for asset,
	// liability and equity accounts through asOf.
	GetBalanceSheetData(ctx context.Context, asOf time.Time) (assets, liabilities, equity []domain.AccountAmount, err error)
	// GetNetIncomeThrough returns total revenue minus total expenses from the
	// beginning of the ledger through asOf, used as the virtual
	// retained-earnings equity line.
	GetNetIncomeThrough(ctx context.Context, asOf time.Time) (decimal.Decimal, error)
	// GetCashFlowData returns per-account net movement of cash-equivalent
	// asset accounts within [from, to].
	GetCashFlowData(ctx context.Context, from, to time.Time) ([]domain.AccountAmount, error)
}
