package services

import (
	"context"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/lodgebook/lodgebook/internal/dto"
)

// AccountService manages the chart of accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}
