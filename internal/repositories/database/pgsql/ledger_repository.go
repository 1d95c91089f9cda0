package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	"github.com/lodgebook/lodgebook/internal/models"
	"github.com/lodgebook/lodgebook/internal/utils/mapping"
	"github.com/lodgebook/lodgebook/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepository
}

// newPgxLedgerRepository creates a new repository for transaction and
// journal-entry data.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepository) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// nextTransactionNumber draws the next value from the database sequence.
// Numbers are assigned inside the posting's transaction, so they are unique
// and monotonically increasing across concurrent postings.
func (r *PgxLedgerRepository) nextTransactionNumber(ctx context.Context, tx pgx.Tx) (string, error) {
	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('transaction_number_seq');`).Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to assign transaction number: %w", err)
	}
	return fmt.Sprintf("TXN-%06d", seq), nil
}

// insertTransactionInTx inserts the transaction header, locks the touched
// accounts, applies the balance deltas, and batch-inserts the entry rows.
// The caller owns the surrounding database transaction.
func (r *PgxLedgerRepository) insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, entries []domain.JournalEntry, balanceChanges map[string]decimal.Decimal) (string, error) {
	number, err := r.nextTransactionNumber(ctx, tx)
	if err != nil {
		return "", err
	}

	modelTxn := mapping.ToModelTransaction(txn)
	modelTxn.TransactionNumber = number

	headerQuery := `
		INSERT INTO transactions (
			transaction_id, transaction_number, transaction_date, transaction_type,
			description, total_amount, status,
			reversal_of_transaction_id, reversed_by_transaction_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.TransactionNumber,
		modelTxn.TransactionDate,
		modelTxn.TransactionType,
		modelTxn.Description,
		modelTxn.TotalAmount,
		modelTxn.Status,
		modelTxn.ReversalOfTransactionID,
		modelTxn.ReversedByTransactionID,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, err)
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return "", fmt.Errorf("failed to lock accounts for posting: %w", err)
	}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, txn.CreatedBy, txn.CreatedAt); err != nil {
		return "", fmt.Errorf("failed to update account balances: %w", err)
	}

	entryQuery := `
		INSERT INTO journal_entries (
			entry_id, transaction_id, account_id, entry_type, amount,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		modelEntry := mapping.ToModelJournalEntry(entry)
		batch.Queue(entryQuery,
			modelEntry.EntryID,
			modelEntry.TransactionID,
			modelEntry.AccountID,
			modelEntry.EntryType,
			modelEntry.Amount,
			modelEntry.CreatedAt,
			modelEntry.CreatedBy,
			modelEntry.LastUpdatedAt,
			modelEntry.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return "", fmt.Errorf("failed to insert journal entries for transaction %s: %w", modelTxn.TransactionID, err)
	}

	return number, nil
}

// SaveTransaction persists a validated posting atomically: header, account
// locks, balance deltas and entry rows all land in one database transaction.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry, balanceChanges map[string]decimal.Decimal) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	number, err := r.insertTransactionInTx(ctx, tx, txn, entries, balanceChanges)
	if err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return number, nil
}

// SaveReversal persists the reversal posting and, in the same database
// transaction, flips the original to REVERSED and links the two. The status
// guard on the UPDATE makes a concurrent double reversal lose cleanly.
func (r *PgxLedgerRepository) SaveReversal(ctx context.Context, reversal domain.Transaction, entries []domain.JournalEntry, balanceChanges map[string]decimal.Decimal, originalTransactionID string) (string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer r.Rollback(ctx, tx)

	markQuery := `
		UPDATE transactions
		SET status = $2, reversed_by_transaction_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1 AND status = $6;
	`
	cmdTag, err := tx.Exec(ctx, markQuery,
		originalTransactionID,
		models.Reversed,
		reversal.TransactionID,
		reversal.CreatedAt,
		reversal.CreatedBy,
		models.Posted,
	)
	if err != nil {
		return "", fmt.Errorf("failed to mark transaction %s as reversed: %w", originalTransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return "", fmt.Errorf("%w: transaction %s is not in POSTED status", apperrors.ErrConflict, originalTransactionID)
	}

	number, err := r.insertTransactionInTx(ctx, tx, reversal, entries, balanceChanges)
	if err != nil {
		return "", err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return number, nil
}

const transactionColumns = `transaction_id, transaction_number, transaction_date, transaction_type, description, total_amount, status, reversal_of_transaction_id, reversed_by_transaction_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	var reversalOf, reversedBy sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionNumber,
		&m.TransactionDate,
		&m.TransactionType,
		&m.Description,
		&m.TotalAmount,
		&m.Status,
		&reversalOf,
		&reversedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	if reversalOf.Valid {
		m.ReversalOfTransactionID = &reversalOf.String
	}
	if reversedBy.Valid {
		m.ReversedByTransactionID = &reversedBy.String
	}
	return m, nil
}

// FindTransactionByID retrieves a transaction header by its ID.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// FindEntriesByTransactionID retrieves the journal entries of a transaction
// with account display names joined in.
func (r *PgxLedgerRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT e.entry_id, e.transaction_id, e.account_id, e.entry_type, e.amount,
		       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by, a.name
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		WHERE e.transaction_id = $1
		ORDER BY e.entry_type, e.entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		err := rows.Scan(
			&e.EntryID,
			&e.TransactionID,
			&e.AccountID,
			&e.EntryType,
			&e.Amount,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
			&e.AccountName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row for transaction %s: %w", transactionID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows for transaction %s: %w", transactionID, err)
	}

	return mapping.ToDomainJournalEntrySlice(entries), nil
}

// ListTransactions retrieves a page of transactions with nested entries,
// newest first, using token-based cursor pagination. The cursor is the
// (transaction_date, created_at) pair of the last row on the previous page.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND transaction_date <= $%d", len(args))
	}
	if filter.TransactionType != nil {
		args = append(args, string(*filter.TransactionType))
		query += fmt.Sprintf(" AND transaction_type = $%d", len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %s", apperrors.ErrValidation, decodeErr.Error())
		}
		args = append(args, lastDate, lastCreatedAt)
		query += fmt.Sprintf(" AND (transaction_date, created_at) < ($%d, $%d)", len(args)-1, len(args))
	}

	query += " ORDER BY transaction_date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newNextToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		newNextToken = &token
	}

	txns := make([]domain.Transaction, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = mapping.ToDomainTransaction(m)
	}

	if err := r.attachEntries(ctx, txns); err != nil {
		return nil, nil, err
	}
	return txns, newNextToken, nil
}

// attachEntries loads the journal entries for a page of transactions in one
// query and distributes them onto the headers.
func (r *PgxLedgerRepository) attachEntries(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	ids := make([]string, len(txns))
	for i, txn := range txns {
		ids[i] = txn.TransactionID
	}

	query := `
		SELECT e.entry_id, e.transaction_id, e.account_id, e.entry_type, e.amount,
		       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by, a.name
		FROM journal_entries e
		JOIN accounts a ON e.account_id = a.account_id
		WHERE e.transaction_id = ANY($1)
		ORDER BY e.transaction_id, e.entry_type, e.entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query journal entries for transaction page: %w", err)
	}
	defer rows.Close()

	entriesByTxn := make(map[string][]domain.JournalEntry)
	for rows.Next() {
		var e models.JournalEntry
		err := rows.Scan(
			&e.EntryID,
			&e.TransactionID,
			&e.AccountID,
			&e.EntryType,
			&e.Amount,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
			&e.AccountName,
		)
		if err != nil {
			return fmt.Errorf("failed to scan journal entry row for transaction page: %w", err)
		}
		entriesByTxn[e.TransactionID] = append(entriesByTxn[e.TransactionID], mapping.ToDomainJournalEntry(e))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating journal entry rows for transaction page: %w", err)
	}

	for i := range txns {
		txns[i].Entries = entriesByTxn[txns[i].TransactionID]
	}
	return nil
}
