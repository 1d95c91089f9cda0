package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus indicates the state of a posted transaction.
type TransactionStatus string

const (
	Posted   TransactionStatus = "POSTED"
	Reversed TransactionStatus = "REVERSED"
)

// Transaction is the transactions table row. One row per balanced event;
// the journal entry lines live in journal_entries.
type Transaction struct {
	TransactionID           string            `db:"transaction_id"`
	TransactionNumber       string            `db:"transaction_number"` // Unique, from a sequence
	TransactionDate         time.Time         `db:"transaction_date"`
	TransactionType         string            `db:"transaction_type"`
	Description             string            `db:"description"`
	TotalAmount             decimal.Decimal   `db:"total_amount"`
	Status                  TransactionStatus `db:"status"`
	ReversalOfTransactionID *string           `db:"reversal_of_transaction_id"`
	ReversedByTransactionID *string           `db:"reversed_by_transaction_id"`
	AuditFields
}

// JournalEntry is the journal_entries table row.
type JournalEntry struct {
	EntryID       string          `db:"entry_id"`
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	EntryType     string          `db:"entry_type"`
	Amount        decimal.Decimal `db:"amount"`
	AccountName   string          `db:"account_name"` // Joined display name, not a column on the table
	AuditFields
}
