package repositories

import (
	"context"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository persists transactions and their journal entries.
//
// SaveTransaction and SaveReversal are the only writes in the whole ledger;
// each one runs in a single database transaction that inserts the header and
// entry rows, locks the touched accounts, and applies the balance deltas, so
// a posting either lands completely or not at all. Both return the
// transaction number assigned from the database sequence.
type LedgerRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, balanceChanges map[string]decimal.Decimal) (string, error)
	// SaveReversal additionally flips the original transaction to REVERSED
	// and links the two, inside the same database transaction.
	SaveReversal(ctx context.Context, reversal domain.Transaction, entries []domain.JournalEntry, balanceChanges map[string]decimal.Decimal, originalTransactionID string) (string, error)

	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}
