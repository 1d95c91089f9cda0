package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader provides read access to the chart of accounts.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)
}

// AccountWriter persists new accounts. Account balances are deliberately
// absent here: they are only ever touched through the ledger posting path.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountBalanceUpdater is the ledger-internal surface for balance updates.
// Both methods operate inside an open pgx transaction so that account locking
// and balance mutation share the posting's atomicity boundary.
type AccountBalanceUpdater interface {
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepository aggregates the full account persistence surface.
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountBalanceUpdater
}
