package accounting

import (
	"fmt"

	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the correct sign to a journal entry amount given the
// account's normal-balance side.
//
// DEBIT entry to a debit-normal account (asset/expense)  -> +amount
// CREDIT entry to a debit-normal account                 -> -amount
// CREDIT entry to a credit-normal account (liability/equity/revenue) -> +amount
// DEBIT entry to a credit-normal account                 -> -amount
func SignedAmount(entry domain.JournalEntry, normal domain.NormalBalance) (decimal.Decimal, error) {
	switch normal {
	case domain.DebitNormal, domain.CreditNormal:
	default:
		return decimal.Zero, fmt.Errorf("unknown normal balance %q for account %s", normal, entry.AccountID)
	}

	matches := (entry.EntryType == domain.Debit && normal == domain.DebitNormal) ||
		(entry.EntryType == domain.Credit && normal == domain.CreditNormal)
	if matches {
		return entry.Amount, nil
	}
	return entry.Amount.Neg(), nil
}

// ValidateEntries enforces the double-entry balance law on a proposed set of
// journal entries: at least two entries, every amount strictly positive, and
// the debit total equal to the credit total. It runs before any storage write
// so a failing transaction never touches an account balance.
func ValidateEntries(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("%w: transaction requires at least two journal entries", apperrors.ErrValidation)
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, e := range entries {
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: entry amount must be positive for account %s", apperrors.ErrValidation, e.AccountID)
		}
		switch e.EntryType {
		case domain.Debit:
			debits = debits.Add(e.Amount)
		case domain.Credit:
			credits = credits.Add(e.Amount)
		default:
			return fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, e.EntryType)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum to %s, credits sum to %s",
			apperrors.ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// DebitTotal returns the sum of the debit side of a balanced entry set,
// which is the transaction's economic value.
func DebitTotal(entries []domain.JournalEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.EntryType == domain.Debit {
			total = total.Add(e.Amount)
		}
	}
	return total
}
