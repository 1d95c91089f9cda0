package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	portssvc "github.com/lodgebook/lodgebook/internal/core/ports/services"
	"github.com/lodgebook/lodgebook/internal/dto"
	"github.com/lodgebook/lodgebook/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	// ErrAlreadyReversed is returned when reversing a transaction twice, or
	// when the target is itself a reversal.
	ErrAlreadyReversed = fmt.Errorf("%w: transaction has already been reversed", apperrors.ErrConflict)
	// ErrAccountInactive is returned when a posting references a deactivated account.
	ErrAccountInactive = fmt.Errorf("%w: account is inactive", apperrors.ErrValidation)
)

// ledgerService posts balanced double-entry transactions against the chart
// of accounts. All validation runs before any storage write; persistence is
// delegated to the repository, which wraps each posting in a single database
// transaction with the touched account rows locked.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	accountRepo portsrepo.AccountRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, accountRepo portsrepo.AccountRepository) portssvc.LedgerService {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerService = (*ledgerService)(nil)

// balanceChangesFor computes the net signed balance delta per account for a
// set of entries, using each account's normal-balance side.
func (s *ledgerService) balanceChangesFor(entries []domain.JournalEntry, accounts map[string]domain.Account) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal)
	for _, e := range entries {
		acc, ok := accounts[e.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, e.AccountID)
		}
		signed, err := accounting.SignedAmount(e, acc.NormalBalance)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate signed amount: %w", err)
		}
		changes[e.AccountID] = changes[e.AccountID].Add(signed)
	}
	return changes, nil
}

// fetchEntryAccounts loads and validates every account referenced by the entries.
func (s *ledgerService) fetchEntryAccounts(ctx context.Context, entries []domain.JournalEntry) (map[string]domain.Account, error) {
	seen := make(map[string]struct{}, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AccountID]; !ok {
			seen[e.AccountID] = struct{}{}
			ids = append(ids, e.AccountID)
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range ids {
		acc, found := accounts[id]
		if !found {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrAccountInactive, id)
		}
	}
	return accounts, nil
}

// PostTransaction validates and atomically persists a balanced transaction.
func (s *ledgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if !domain.ValidTransactionType(req.TransactionType) || req.TransactionType == domain.TxnReversal {
		return nil, fmt.Errorf("%w: transaction type %q cannot be posted directly", apperrors.ErrValidation, req.TransactionType)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	transactionID := uuid.NewString()

	entries := make([]domain.JournalEntry, len(req.Entries))
	for i, entryReq := range req.Entries {
		entries[i] = domain.JournalEntry{
			EntryID:       uuid.NewString(),
			TransactionID: transactionID,
			AccountID:     entryReq.AccountID,
			EntryType:     entryReq.EntryType,
			Amount:        entryReq.Amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	// The double-entry balance check runs before anything touches storage,
	// so a failing transaction never moves an account balance.
	if err := accounting.ValidateEntries(entries); err != nil {
		return nil, err
	}

	accounts, err := s.fetchEntryAccounts(ctx, entries)
	if err != nil {
		s.LogWarn(ctx, "Account validation failed for posting", slog.String("error", err.Error()))
		return nil, err
	}

	balanceChanges, err := s.balanceChangesFor(entries, accounts)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   transactionID,
		TransactionDate: req.TransactionDate,
		TransactionType: req.TransactionType,
		Description:     req.Description,
		TotalAmount:     accounting.DebitTotal(entries),
		Status:          domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	number, err := s.ledgerRepo.SaveTransaction(ctx, txn, entries, balanceChanges)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	txn.TransactionNumber = number

	for i := range entries {
		entries[i].AccountName = accounts[entries[i].AccountID].Name
	}
	txn.Entries = entries

	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("transaction_number", txn.TransactionNumber),
		slog.String("total_amount", txn.TotalAmount.String()))
	return &txn, nil
}

// ReverseTransaction posts a new transaction whose entries are the exact
// mirror image of the original's. The original is never deleted or edited;
// it only gains a REVERSED status marker and a link to its reversal.
func (s *ledgerService) ReverseTransaction(ctx context.Context, transactionID, reason, userID string) (*domain.Transaction, error) {
	original, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch transaction for reversal", slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	if original.Status == domain.Reversed {
		return nil, ErrAlreadyReversed
	}
	if original.TransactionType == domain.TxnReversal {
		return nil, fmt.Errorf("%w: cannot reverse a reversal", apperrors.ErrConflict)
	}

	originalEntries, err := s.ledgerRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries for transaction %s: %w", transactionID, err)
	}

	now := time.Now().UTC()
	reversalID := uuid.NewString()

	reversalEntries := make([]domain.JournalEntry, len(originalEntries))
	for i, orig := range originalEntries {
		reversalEntries[i] = domain.JournalEntry{
			EntryID:       uuid.NewString(),
			TransactionID: reversalID,
			AccountID:     orig.AccountID,
			EntryType:     orig.EntryType.Opposite(),
			Amount:        orig.Amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	accounts, err := s.fetchEntryAccounts(ctx, reversalEntries)
	if err != nil {
		return nil, err
	}
	balanceChanges, err := s.balanceChangesFor(reversalEntries, accounts)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Reversal of %s: %s", original.TransactionNumber, reason)
	reversal := domain.Transaction{
		TransactionID:           reversalID,
		TransactionDate:         now,
		TransactionType:         domain.TxnReversal,
		Description:             description,
		TotalAmount:             original.TotalAmount,
		Status:                  domain.Posted,
		ReversalOfTransactionID: &original.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	number, err := s.ledgerRepo.SaveReversal(ctx, reversal, reversalEntries, balanceChanges, original.TransactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to save reversal", slog.String("original_transaction_id", transactionID))
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}
	reversal.TransactionNumber = number

	for i := range reversalEntries {
		reversalEntries[i].AccountName = accounts[reversalEntries[i].AccountID].Name
	}
	reversal.Entries = reversalEntries

	s.LogInfo(ctx, "Transaction reversed",
		slog.String("original_transaction_id", transactionID),
		slog.String("reversal_transaction_id", reversalID))
	return &reversal, nil
}

// GetTransactionByID retrieves a transaction with its full entry breakdown.
func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	entries, err := s.ledgerRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries for transaction %s: %w", transactionID, err)
	}
	txn.Entries = entries
	return txn, nil
}

// ListTransactions retrieves a page of transactions with nested entries.
func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := domain.TransactionFilter{
		StartDate:       params.StartDate,
		EndDate:         params.EndDate,
		TransactionType: params.TransactionType,
	}

	txns, nextToken, err := s.ledgerRepo.ListTransactions(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nextToken, nil
}
