package domain

import "github.com/shopspring/decimal"

// AccountAmount is one account's aggregated amount inside a financial report.
type AccountAmount struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	NetAmount   decimal.Decimal `json:"netAmount"`
}

// ProfitAndLossReport aggregates revenue and expense activity over a period.
// Accounts with no postings in the period are omitted from the breakdowns.
type ProfitAndLossReport struct {
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport is a cumulative snapshot of assets, liabilities and
// equity as of a date. Equity includes a computed retained-earnings line so
// that the accounting identity holds without a period-close posting.
// IsBalanced is recomputed on every generation, never cached; it is the
// primary correctness signal for the ledger as a whole.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	IsBalanced       bool            `json:"isBalanced"`
}

// CashFlowReport summarises the period's net movement across cash-equivalent
// asset accounts, classified as operating activity.
type CashFlowReport struct {
	OperatingActivities []AccountAmount `json:"operatingActivities"`
	NetCashFlow         decimal.Decimal `json:"netCashFlow"`
}
