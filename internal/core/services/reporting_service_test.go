package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lodgebook/lodgebook/internal/apperrors"
	"github.com/lodgebook/lodgebook/internal/core/domain"
	portssvc "github.com/lodgebook/lodgebook/internal/core/ports/services"
	"github.com/lodgebook/lodgebook/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
	from              time.Time
	to                time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
	suite.from = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
}

func amount(name string, value int64) domain.AccountAmount {
	return domain.AccountAmount{
		AccountID: uuid.NewString(),
		Name:      name,
		NetAmount: decimal.NewFromInt(value),
	}
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_Totals() {
	ctx := context.Background()
	revenue := []domain.AccountAmount{amount("Rental Income", 5000), amount("Event Income", 1200)}
	expenses := []domain.AccountAmount{amount("Repairs & Maintenance", 800), amount("Utilities", 400)}

	suite.mockReportingRepo.On("GetProfitAndLossData", ctx, suite.from, suite.to).
		Return(revenue, expenses, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(6200)))
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(1200)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(5000)))
	suite.Len(report.Revenue, 2)
	suite.Len(report.Expenses, 2)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_NetLoss() {
	ctx := context.Background()
	revenue := []domain.AccountAmount{amount("Rental Income", 300)}
	expenses := []domain.AccountAmount{amount("Repairs & Maintenance", 900)}

	suite.mockReportingRepo.On("GetProfitAndLossData", ctx, suite.from, suite.to).
		Return(revenue, expenses, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(-600)))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_InvertedPeriod() {
	ctx := context.Background()

	report, err := suite.service.ProfitAndLoss(ctx, suite.to, suite.from)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetProfitAndLossData")
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_RetainedEarningsClosesTheGap() {
	ctx := context.Background()
	asOf := suite.to
	assets := []domain.AccountAmount{amount("Operating Cash", 10000)}
	liabilities := []domain.AccountAmount{amount("Security Deposits Held", 3000)}
	equity := []domain.AccountAmount{amount("Owner Capital", 5000)}

	suite.mockReportingRepo.On("GetBalanceSheetData", ctx, asOf).
		Return(assets, liabilities, equity, nil).Once()
	suite.mockReportingRepo.On("GetNetIncomeThrough", ctx, asOf).
		Return(decimal.NewFromInt(2000), nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(10000)))
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(3000)))
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(7000)))
	suite.True(report.IsBalanced)

	suite.Require().Len(report.Equity, 2)
	suite.Equal("Retained Earnings", report.Equity[1].Name)
	suite.True(report.Equity[1].NetAmount.Equal(decimal.NewFromInt(2000)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_Unbalanced() {
	ctx := context.Background()
	asOf := suite.to
	assets := []domain.AccountAmount{amount("Operating Cash", 10000)}
	liabilities := []domain.AccountAmount{amount("Security Deposits Held", 3000)}
	equity := []domain.AccountAmount{amount("Owner Capital", 5000)}

	suite.mockReportingRepo.On("GetBalanceSheetData", ctx, asOf).
		Return(assets, liabilities, equity, nil).Once()
	suite.mockReportingRepo.On("GetNetIncomeThrough", ctx, asOf).
		Return(decimal.Zero, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.False(report.IsBalanced)
	// No retained-earnings line when net income is zero.
	suite.Len(report.Equity, 1)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_Idempotent() {
	ctx := context.Background()
	asOf := suite.to
	assets := []domain.AccountAmount{amount("Operating Cash", 4000)}
	equity := []domain.AccountAmount{amount("Owner Capital", 4000)}

	suite.mockReportingRepo.On("GetBalanceSheetData", ctx, asOf).
		Return(assets, []domain.AccountAmount{}, equity, nil).Twice()
	suite.mockReportingRepo.On("GetNetIncomeThrough", ctx, asOf).
		Return(decimal.Zero, nil).Twice()

	first, err := suite.service.BalanceSheet(ctx, asOf)
	suite.Require().NoError(err)
	second, err := suite.service.BalanceSheet(ctx, asOf)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCashFlow_NetMovement() {
	ctx := context.Background()
	operating := []domain.AccountAmount{
		amount("Operating Cash", 2500),
		amount("Petty Cash", -300),
	}

	suite.mockReportingRepo.On("GetCashFlowData", ctx, suite.from, suite.to).
		Return(operating, nil).Once()

	report, err := suite.service.CashFlow(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.NetCashFlow.Equal(decimal.NewFromInt(2200)))
	suite.Len(report.OperatingActivities, 2)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
