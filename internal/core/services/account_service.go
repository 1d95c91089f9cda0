package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	portssvc "github.com/lodgebook/lodgebook/internal/core/ports/services"
	"github.com/lodgebook/lodgebook/internal/dto"
	"github.com/shopspring/decimal"
)

// accountService manages the chart of accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountService {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountService = (*accountService)(nil)

// CreateAccount creates a new account with a zero balance. The normal
// balance is always derived from the account type; callers cannot override it.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !domain.ValidAccountType(req.AccountType) {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if req.IsCashEquivalent && req.AccountType != domain.Asset {
		return nil, fmt.Errorf("%w: only asset accounts can be cash equivalents", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:        uuid.NewString(),
		AccountCode:      req.AccountCode,
		Name:             req.Name,
		AccountType:      req.AccountType,
		Category:         req.Category,
		NormalBalance:    domain.NormalBalanceFor(req.AccountType),
		Balance:          decimal.Zero,
		IsCashEquivalent: req.IsCashEquivalent,
		IsActive:         true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		// ErrDuplicate surfaces the account-code collision to the caller.
		s.LogError(ctx, err, "Failed to save account", slog.String("account_code", req.AccountCode))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_code", account.AccountCode))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts retrieves accounts, optionally filtered by type and status.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	filter := domain.AccountFilter{
		AccountType: params.AccountType,
		IsActive:    params.IsActive,
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
