package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the business event behind a posting.
type TransactionType string

const (
	TxnRevenue    TransactionType = "REVENUE"
	TxnExpense    TransactionType = "EXPENSE"
	TxnTransfer   TransactionType = "TRANSFER"
	TxnAdjustment TransactionType = "ADJUSTMENT"
	TxnReversal   TransactionType = "REVERSAL"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	switch t {
	case TxnRevenue, TxnExpense, TxnTransfer, TxnAdjustment, TxnReversal:
		return true
	}
	return false
}

// TransactionStatus tracks whether a posted transaction has since been reversed.
type TransactionStatus string

const (
	Posted   TransactionStatus = "POSTED"
	Reversed TransactionStatus = "REVERSED"
)

// EntryType indicates whether a journal entry is a debit or a credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// Opposite returns the mirrored entry type, used when building reversals.
func (e EntryType) Opposite() EntryType {
	if e == Debit {
		return Credit
	}
	return Debit
}

// TransactionFilter narrows transaction listings. Nil fields match everything.
type TransactionFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	TransactionType *TransactionType
}

// Transaction is a single balanced financial event. It owns at least two
// journal entries whose debit and credit amounts sum to the same total.
// Transactions are append-only: corrections are posted as new reversal
// transactions, never by editing history.
type Transaction struct {
	TransactionID     string            `json:"transactionID"`     // Primary key (UUID)
	TransactionNumber string            `json:"transactionNumber"` // Unique, monotonically increasing, e.g. "TXN-000042"
	TransactionDate   time.Time         `json:"transactionDate"`
	TransactionType   TransactionType   `json:"transactionType"`
	Description       string            `json:"description"`
	TotalAmount       decimal.Decimal   `json:"totalAmount"` // Sum of the debit side
	Status            TransactionStatus `json:"status"`
	// Set on a reversal to link back to the transaction it negates.
	ReversalOfTransactionID *string `json:"reversalOfTransactionID,omitempty"`
	// Set on a reversed original to link forward to its reversal.
	ReversedByTransactionID *string        `json:"reversedByTransactionID,omitempty"`
	Entries                 []JournalEntry `json:"entries,omitempty"`
	AuditFields
}

// JournalEntry is one single-sided posting to one account, always created as
// part of its owning transaction's atomic post.
type JournalEntry struct {
	EntryID       string          `json:"entryID"`       // Primary key (UUID)
	TransactionID string          `json:"transactionID"` // FK -> Transaction
	AccountID     string          `json:"accountID"`     // FK -> Account
	EntryType     EntryType       `json:"entryType"`
	Amount        decimal.Decimal `json:"amount"`                // Always positive
	AccountName   string          `json:"accountName,omitempty"` // Display name, populated on reads
	AuditFields
}
