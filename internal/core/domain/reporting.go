package domain

import (
	"github.com/shopspring/decimal"
)

// CurrencyAmounts maps a currency to an amount. Currencies are never
// converted into each other.
type CurrencyAmounts map[Currency]decimal.Decimal

// FlowTotals is the income, expense and profit of a group of entries, per currency.
type FlowTotals struct {
	Income   CurrencyAmounts
	Expenses CurrencyAmounts
	Profit   CurrencyAmounts
}

// CategoryStats is the flow of one category.
type CategoryStats struct {
	Category Category
	FlowTotals
}

// CategoryProfit is one row of the profit-by-category breakdown.
type CategoryProfit struct {
	CategoryID   int64
	CategoryName string
	FlowTotals
}

// MonthlyFlow is one row of the monthly breakdown. Month is YYYY-MM.
type MonthlyFlow struct {
	Month string
	FlowTotals
}

// DashboardSummary aggregates done ledger entries over an optional date window.
type DashboardSummary struct {
	FlowTotals
	ProfitByCategory []CategoryProfit
	MonthlyBreakdown []MonthlyFlow
}

// FollowUpFilter narrows the follow-up queue.
type FollowUpFilter struct {
	StartDate     *Date
	EndDate       *Date
	Type          *Direction
	RecurringOnly bool
}
