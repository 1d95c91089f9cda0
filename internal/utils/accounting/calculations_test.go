package accounting_test

import (
	"testing"

	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/lodgebook/lodgebook/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(entryType domain.EntryType, amount int64) domain.JournalEntry {
	return domain.JournalEntry{
		AccountID: "acc-1",
		EntryType: entryType,
		Amount:    decimal.NewFromInt(amount),
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name      string
		entryType domain.EntryType
		normal    domain.NormalBalance
		want      int64
	}{
		{"debit to debit-normal increases", domain.Debit, domain.DebitNormal, 100},
		{"credit to debit-normal decreases", domain.Credit, domain.DebitNormal, -100},
		{"credit to credit-normal increases", domain.Credit, domain.CreditNormal, 100},
		{"debit to credit-normal decreases", domain.Debit, domain.CreditNormal, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.SignedAmount(entry(tt.entryType, 100), tt.normal)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}

	t.Run("unknown normal balance fails", func(t *testing.T) {
		_, err := accounting.SignedAmount(entry(domain.Debit, 100), domain.NormalBalance("SIDEWAYS"))
		assert.Error(t, err)
	})
}

func TestValidateEntries(t *testing.T) {
	t.Run("balanced set passes", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalEntry{
			entry(domain.Debit, 10000),
			entry(domain.Credit, 10000),
		})
		assert.NoError(t, err)
	})

	t.Run("balanced multi-line set passes", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalEntry{
			entry(domain.Debit, 700),
			entry(domain.Credit, 300),
			entry(domain.Credit, 400),
		})
		assert.NoError(t, err)
	})

	t.Run("unbalanced set fails", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalEntry{
			entry(domain.Debit, 10000),
			entry(domain.Credit, 9000),
		})
		assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
	})

	t.Run("single entry fails", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalEntry{entry(domain.Debit, 100)})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("zero amount fails", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalEntry{
			entry(domain.Debit, 0),
			entry(domain.Credit, 0),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("negative amount fails", func(t *testing.T) {
		err := accounting.ValidateEntries([]domain.JournalEntry{
			entry(domain.Debit, -50),
			entry(domain.Credit, -50),
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestDebitTotal(t *testing.T) {
	total := accounting.DebitTotal([]domain.JournalEntry{
		entry(domain.Debit, 700),
		entry(domain.Credit, 300),
		entry(domain.Credit, 400),
	})
	assert.True(t, total.Equal(decimal.NewFromInt(700)))
}
