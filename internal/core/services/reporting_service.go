package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portsrepo "github.com/lodgebook/lodgebook/internal/core/ports/repositories"
	portssvc "github.com/lodgebook/lodgebook/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// retainedEarningsName is the label of the computed equity line that closes
// accumulated net income into the balance sheet.
const retainedEarningsName = "Retained Earnings"

// reportingService builds financial statements from aggregated ledger data.
// Generating a report never writes anything; calling the same report twice
// with the same arguments yields the same result.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func validatePeriod(from, to time.Time) error {
	if to.Before(from) {
		return fmt.Errorf("%w: period end %s is before period start %s",
			apperrors.ErrValidation, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	return nil
}

func sumAmounts(amounts []domain.AccountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.NetAmount)
	}
	return total
}

// ProfitAndLoss aggregates revenue and expense activity over [from, to].
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	revenue, expenses, err := s.reportingRepo.GetProfitAndLossData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate profit and loss data")
		return nil, fmt.Errorf("failed to aggregate profit and loss data: %w", err)
	}

	report := &domain.ProfitAndLossReport{
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  sumAmounts(revenue),
		TotalExpenses: sumAmounts(expenses),
	}
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)
	return report, nil
}

// BalanceSheet produces a cumulative snapshot through asOf. Net income earned
// through asOf is folded into equity as a retained-earnings line, so the
// accounting identity holds without any period-close posting. IsBalanced is
// recomputed from scratch on every call.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	assets, liabilities, equity, err := s.reportingRepo.GetBalanceSheetData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate balance sheet data")
		return nil, fmt.Errorf("failed to aggregate balance sheet data: %w", err)
	}

	netIncome, err := s.reportingRepo.GetNetIncomeThrough(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute net income for retained earnings")
		return nil, fmt.Errorf("failed to compute retained earnings: %w", err)
	}
	if !netIncome.IsZero() {
		equity = append(equity, domain.AccountAmount{
			Name:      retainedEarningsName,
			NetAmount: netIncome,
		})
	}

	report := &domain.BalanceSheetReport{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      sumAmounts(assets),
		TotalLiabilities: sumAmounts(liabilities),
		TotalEquity:      sumAmounts(equity),
	}
	report.IsBalanced = report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity))

	if !report.IsBalanced {
		s.LogWarn(ctx, "Balance sheet does not balance",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities", report.TotalLiabilities.String()),
			slog.String("total_equity", report.TotalEquity.String()))
	}
	return report, nil
}

// CashFlow summarises net movement of cash-equivalent accounts over [from, to].
func (s *reportingService) CashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowReport, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}

	operating, err := s.reportingRepo.GetCashFlowData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate cash flow data")
		return nil, fmt.Errorf("failed to aggregate cash flow data: %w", err)
	}

	return &domain.CashFlowReport{
		OperatingActivities: operating,
		NetCashFlow:         sumAmounts(operating),
	}, nil
}
