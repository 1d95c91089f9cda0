package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType for storage.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is the accounts table row.
type Account struct {
	AccountID        string          `db:"account_id"`
	AccountCode      string          `db:"account_code"` // Unique, human-readable
	Name             string          `db:"name"`
	AccountType      AccountType     `db:"account_type"`
	Category         string          `db:"category"`
	NormalBalance    string          `db:"normal_balance"`
	Balance          decimal.Decimal `db:"balance"` // Cached running total, maintained by ledger postings only
	IsCashEquivalent bool            `db:"is_cash_equivalent"`
	IsActive         bool            `db:"is_active"`
	AuditFields
}
