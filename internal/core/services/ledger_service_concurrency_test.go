package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	"github.com/lodgebook/lodgebook/internal/core/services"
	"github.com/lodgebook/lodgebook/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// memoryLedger is an in-memory stand-in for the database layer. It applies
// each posting under one lock, mirroring the row-lock-in-transaction
// behaviour of the real repository.
type memoryLedger struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	txns     map[string]domain.Transaction
	entries  map[string][]domain.JournalEntry
	sequence int
}

func newMemoryLedger(accounts ...domain.Account) *memoryLedger {
	m := &memoryLedger{
		accounts: make(map[string]domain.Account),
		txns:     make(map[string]domain.Transaction),
		entries:  make(map[string][]domain.JournalEntry),
	}
	for _, acc := range accounts {
		m.accounts[acc.AccountID] = acc
	}
	return m
}

var (
	_ portsrepo.LedgerRepository  = (*memoryLedger)(nil)
	_ portsrepo.AccountRepository = (*memoryLedger)(nil)
)

func (m *memoryLedger) SaveAccount(ctx context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.AccountID] = account
	return nil
}

func (m *memoryLedger) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &acc, nil
}

func (m *memoryLedger) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if acc, ok := m.accounts[id]; ok {
			found[id] = acc
		}
	}
	return found, nil
}

func (m *memoryLedger) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	accounts := make([]domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *memoryLedger) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	return m.FindAccountsByIDs(ctx, accountIDs)
}

func (m *memoryLedger) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	for id, delta := range balanceChanges {
		acc := m.accounts[id]
		acc.Balance = acc.Balance.Add(delta)
		m.accounts[id] = acc
	}
	return nil
}

func (m *memoryLedger) apply(txn domain.Transaction, entries []domain.JournalEntry, balanceChanges map[string]decimal.Decimal) string {
	m.sequence++
	txn.TransactionNumber = fmt.Sprintf("TXN-%06d", m.sequence)
	m.txns[txn.TransactionID] = txn
	m.entries[txn.TransactionID] = entries
	for id, delta := range balanceChanges {
		acc := m.accounts[id]
		acc.Balance = acc.Balance.Add(delta)
		m.accounts[id] = acc
	}
	return txn.TransactionNumber
}

func (m *memoryLedger) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, balanceChanges map[string]decimal.Decimal) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apply(txn, entries, balanceChanges), nil
}

func (m *memoryLedger) SaveReversal(ctx context.Context, reversal domain.Transaction, entries []domain.JournalEntry, balanceChanges map[string]decimal.Decimal, originalTransactionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	original, ok := m.txns[originalTransactionID]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	if original.Status == domain.Reversed {
		return "", apperrors.ErrConflict
	}
	number := m.apply(reversal, entries, balanceChanges)
	original.Status = domain.Reversed
	original.ReversedByTransactionID = &reversal.TransactionID
	m.txns[originalTransactionID] = original
	return number, nil
}

func (m *memoryLedger) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	txn, ok := m.txns[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (m *memoryLedger) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[transactionID], nil
}

func (m *memoryLedger) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	txns := make([]domain.Transaction, 0, len(m.txns))
	for _, txn := range m.txns {
		txns = append(txns, txn)
	}
	return txns, nil, nil
}

func (m *memoryLedger) balanceOf(accountID string) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[accountID].Balance
}

func TestPostTransaction_ConcurrentPostings(t *testing.T) {
	cash := domain.Account{
		AccountID:     uuid.NewString(),
		AccountCode:   "1000",
		Name:          "Operating Cash",
		AccountType:   domain.Asset,
		NormalBalance: domain.DebitNormal,
		IsActive:      true,
	}
	revenue := domain.Account{
		AccountID:     uuid.NewString(),
		AccountCode:   "4000",
		Name:          "Rental Income",
		AccountType:   domain.Revenue,
		NormalBalance: domain.CreditNormal,
		IsActive:      true,
	}
	ledger := newMemoryLedger(cash, revenue)
	svc := services.NewLedgerService(ledger, ledger)

	const postings = 25
	amount := decimal.NewFromInt(10)

	var wg sync.WaitGroup
	errs := make(chan error, postings)
	for i := 0; i < postings; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PostTransaction(context.Background(), dto.PostTransactionRequest{
				TransactionType: domain.TxnRevenue,
				TransactionDate: time.Now(),
				Description:     "concurrent booking payment",
				Entries: []dto.PostEntryRequest{
					{AccountID: cash.AccountID, EntryType: domain.Debit, Amount: amount},
					{AccountID: revenue.AccountID, EntryType: domain.Credit, Amount: amount},
				},
			}, "user-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	// Every posting landed exactly once: no lost updates on either side.
	want := amount.Mul(decimal.NewFromInt(postings))
	require.True(t, ledger.balanceOf(cash.AccountID).Equal(want),
		"cash balance %s, want %s", ledger.balanceOf(cash.AccountID), want)
	require.True(t, ledger.balanceOf(revenue.AccountID).Equal(want),
		"revenue balance %s, want %s", ledger.balanceOf(revenue.AccountID), want)
}
