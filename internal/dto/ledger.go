package dto

import (
	"time"

	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostEntryRequest is one debit-or-credit line inside a posting request.
type PostEntryRequest struct {
	AccountID string           `json:"accountID" binding:"required"`
	EntryType domain.EntryType `json:"entryType" binding:"required,oneof=DEBIT CREDIT"`
	Amount    decimal.Decimal  `json:"amount" binding:"required"`
}

// PostTransactionRequest defines the data needed to post a balanced
// transaction. REVERSAL is excluded: reversals are only created through the
// reverse endpoint.
type PostTransactionRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=REVENUE EXPENSE TRANSFER ADJUSTMENT"`
	TransactionDate time.Time              `json:"transactionDate" binding:"required"`
	Description     string                 `json:"description" binding:"required"`
	Entries         []PostEntryRequest     `json:"entries" binding:"required,min=2,dive"`
}

// ReverseTransactionRequest carries the reason for a reversal.
type ReverseTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// JournalEntryResponse defines the data returned for one journal entry line.
type JournalEntryResponse struct {
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	EntryType   string          `json:"entryType"`
	Amount      decimal.Decimal `json:"amount"`
}

// TransactionResponse defines the data returned for a transaction with its
// journal entry breakdown.
type TransactionResponse struct {
	TransactionID           string                 `json:"transactionID"`
	TransactionNumber       string                 `json:"transactionNumber"`
	TransactionDate         time.Time              `json:"transactionDate"`
	TransactionType         string                 `json:"transactionType"`
	Description             string                 `json:"description"`
	TotalAmount             decimal.Decimal        `json:"totalAmount"`
	Status                  string                 `json:"status"`
	ReversalOfTransactionID *string                `json:"reversalOfTransactionID,omitempty"`
	ReversedByTransactionID *string                `json:"reversedByTransactionID,omitempty"`
	Entries                 []JournalEntryResponse `json:"entries"`
	CreatedAt               time.Time              `json:"createdAt"`
	CreatedBy               string                 `json:"createdBy"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	StartDate       *time.Time              `form:"startDate" time_format:"2006-01-02"`
	EndDate         *time.Time              `form:"endDate" time_format:"2006-01-02"`
	TransactionType *domain.TransactionType `form:"transactionType"`
	Limit           int                     `form:"limit,default=20"`
	NextToken       *string                 `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions and the cursor for
// the next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		AccountID:   e.AccountID,
		AccountName: e.AccountName,
		EntryType:   string(e.EntryType),
		Amount:      e.Amount,
	}
}

// ToTransactionResponse converts a domain.Transaction to its DTO, including
// nested entries.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	entries := make([]JournalEntryResponse, len(txn.Entries))
	for i, e := range txn.Entries {
		entries[i] = ToJournalEntryResponse(&e)
	}
	return TransactionResponse{
		TransactionID:           txn.TransactionID,
		TransactionNumber:       txn.TransactionNumber,
		TransactionDate:         txn.TransactionDate,
		TransactionType:         string(txn.TransactionType),
		Description:             txn.Description,
		TotalAmount:             txn.TotalAmount,
		Status:                  string(txn.Status),
		ReversalOfTransactionID: txn.ReversalOfTransactionID,
		ReversedByTransactionID: txn.ReversedByTransactionID,
		Entries:                 entries,
		CreatedAt:               txn.CreatedAt,
		CreatedBy:               txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
