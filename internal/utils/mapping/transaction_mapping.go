package mapping

import (
	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/lodgebook/lodgebook/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:           d.TransactionID,
		TransactionNumber:       d.TransactionNumber,
		TransactionDate:         d.TransactionDate,
		TransactionType:         string(d.TransactionType),
		Description:             d.Description,
		TotalAmount:             d.TotalAmount,
		Status:                  models.TransactionStatus(d.Status),
		ReversalOfTransactionID: d.ReversalOfTransactionID,
		ReversedByTransactionID: d.ReversedByTransactionID,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:           m.TransactionID,
		TransactionNumber:       m.TransactionNumber,
		TransactionDate:         m.TransactionDate,
		TransactionType:         domain.TransactionType(m.TransactionType),
		Description:             m.Description,
		TotalAmount:             m.TotalAmount,
		Status:                  domain.TransactionStatus(m.Status),
		ReversalOfTransactionID: m.ReversalOfTransactionID,
		ReversedByTransactionID: m.ReversedByTransactionID,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:       d.EntryID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		EntryType:     string(d.EntryType),
		Amount:        d.Amount,
		AccountName:   d.AccountName,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		EntryType:     domain.EntryType(m.EntryType),
		Amount:        m.Amount,
		AccountName:   m.AccountName,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of model JournalEntries to domain ones
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
