package services

import (
	"context"
	"time"

	"github.com/lodgebook/lodgebook/internal/core/domain"
)

// ReportingService derives financial statements from posted ledger activity.
// All methods are pure reads.
type ReportingService interface {
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error)
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)
	CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error)
}
