package services

import (
	"context"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/lodgebook/lodgebook/internal/dto"
)

// LedgerService posts and reads balanced double-entry transactions.
type LedgerService interface {
	// PostTransaction validates and atomically persists a balanced
	// transaction, returning it with entries and assigned number attached.
	PostTransaction(ctx context.Context, req dto.PostTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	// ReverseTransaction posts a mirror-image reversal of a previously
	// posted transaction. History is never edited.
	ReverseTransaction(ctx context.Context, transactionID, reason, userID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)
}
