package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalBalance is the side on which increases to an account are recorded.
type NormalBalance string

const (
	DebitNormal  NormalBalance = "DEBIT"
	CreditNormal NormalBalance = "CREDIT"
)

// NormalBalanceFor derives the normal-balance side from the account type.
// Asset and expense accounts increase on debit; everything else on credit.
// The mapping is fixed: callers never supply a normal balance themselves.
func NormalBalanceFor(t AccountType) NormalBalance {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// ValidAccountType reports whether t is one of the five accounting types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// AccountFilter narrows account listings. Nil fields match everything.
type AccountFilter struct {
	AccountType *AccountType
	IsActive    *bool
}

// Account represents one entry in the chart of accounts.
// Balance is a cached running total; it is only ever mutated by the ledger
// repository as part of an atomic posting, so it always equals the signed sum
// of all journal entries applied to the account.
type Account struct {
	AccountID        string          `json:"accountID"`   // Primary key (UUID)
	AccountCode      string          `json:"accountCode"` // Unique human-readable code, e.g. "4000"
	Name             string          `json:"name"`
	AccountType      AccountType     `json:"accountType"`
	Category         string          `json:"category"` // Free-text grouping, e.g. "Room Revenue"
	NormalBalance    NormalBalance   `json:"normalBalance"`
	Balance          decimal.Decimal `json:"balance"`
	IsCashEquivalent bool            `json:"isCashEquivalent"` // Included in cash-flow reporting
	IsActive         bool            `json:"isActive"`
	AuditFields
}
