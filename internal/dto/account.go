package dto

import (
	"time"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// The normal balance is derived from the account type server-side and cannot
// be supplied by the caller.
type CreateAccountRequest struct {
	AccountCode      string             `json:"accountCode" binding:"required"`
	Name             string             `json:"name" binding:"required"`
	AccountType      domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Category         string             `json:"category"`
	IsCashEquivalent bool               `json:"isCashEquivalent"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string             `json:"accountID"`
	AccountCode      string             `json:"accountCode"`
	Name             string             `json:"name"`
	AccountType      domain.AccountType `json:"accountType"`
	Category         string             `json:"category"`
	NormalBalance    string             `json:"normalBalance"`
	Balance          decimal.Decimal    `json:"balance"`
	IsCashEquivalent bool               `json:"isCashEquivalent"`
	IsActive         bool               `json:"isActive"`
	CreatedAt        time.Time          `json:"createdAt"`
	CreatedBy        string             `json:"createdBy"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	AccountType *domain.AccountType `form:"accountType"`
	IsActive    *bool               `form:"isActive"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        acc.AccountID,
		AccountCode:      acc.AccountCode,
		Name:             acc.Name,
		AccountType:      acc.AccountType,
		Category:         acc.Category,
		NormalBalance:    string(acc.NormalBalance),
		Balance:          acc.Balance,
		IsCashEquivalent: acc.IsCashEquivalent,
		IsActive:         acc.IsActive,
		CreatedAt:        acc.CreatedAt,
		CreatedBy:        acc.CreatedBy,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}
