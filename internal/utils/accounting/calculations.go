package accounting

import (
	"sort"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NewFlowTotals returns empty totals ready for accumulation.
func NewFlowTotals() domain.FlowTotals {
	return domain.FlowTotals{
		Income:   domain.CurrencyAmounts{},
		Expenses: domain.CurrencyAmounts{},
		Profit:   domain.CurrencyAmounts{},
	}
}

// AddToFlow books one entry into the totals. Incoming money adds to income
// and profit; outgoing money adds to expenses and subtracts from profit.
func AddToFlow(totals domain.FlowTotals, txn domain.Transaction) {
	amount := txn.Amount
	switch txn.Type {
	case domain.DirectionIn:
		totals.Income[txn.Currency] = totals.Income[txn.Currency].Add(amount)
		totals.Profit[txn.Currency] = totals.Profit[txn.Currency].Add(amount)
	case domain.DirectionOut:
		totals.Expenses[txn.Currency] = totals.Expenses[txn.Currency].Add(amount)
		totals.Profit[txn.Currency] = totals.Profit[txn.Currency].Sub(amount)
	}
}

// SumFlow aggregates entries per currency. Only done entries count.
func SumFlow(txns []domain.Transaction) domain.FlowTotals {
	totals := NewFlowTotals()
	for _, txn := range txns {
		if txn.Status != domain.StatusDone {
			continue
		}
		AddToFlow(totals, txn)
	}
	return totals
}

// Summarize builds the dashboard view of a set of entries: overall totals,
// per-category profit ordered by category name, and per-month flow ordered
// by month. Entries that are not done are ignored.
func Summarize(txns []domain.Transaction) domain.DashboardSummary {
	summary := domain.DashboardSummary{FlowTotals: NewFlowTotals()}

	byCategory := map[int64]*domain.CategoryProfit{}
	byMonth := map[string]*domain.MonthlyFlow{}
	for _, txn := range txns {
		if txn.Status != domain.StatusDone {
			continue
		}
		AddToFlow(summary.FlowTotals, txn)

		cat, ok := byCategory[txn.CategoryID]
		if !ok {
			cat = &domain.CategoryProfit{CategoryID: txn.CategoryID, CategoryName: txn.CategoryName, FlowTotals: NewFlowTotals()}
			byCategory[txn.CategoryID] = cat
		}
		AddToFlow(cat.FlowTotals, txn)

		month := txn.Date.YearMonth()
		m, ok := byMonth[month]
		if !ok {
			m = &domain.MonthlyFlow{Month: month, FlowTotals: NewFlowTotals()}
			byMonth[month] = m
		}
		AddToFlow(m.FlowTotals, txn)
	}

	summary.ProfitByCategory = make([]domain.CategoryProfit, 0, len(byCategory))
	for _, c := range byCategory {
		summary.ProfitByCategory = append(summary.ProfitByCategory, *c)
	}
	sort.Slice(summary.ProfitByCategory, func(i, j int) bool {
		a, b := summary.ProfitByCategory[i], summary.ProfitByCategory[j]
		if a.CategoryName != b.CategoryName {
			return a.CategoryName < b.CategoryName
		}
		return a.CategoryID < b.CategoryID
	})

	summary.MonthlyBreakdown = make([]domain.MonthlyFlow, 0, len(byMonth))
	for _, m := range byMonth {
		summary.MonthlyBreakdown = append(summary.MonthlyBreakdown, *m)
	}
	sort.Slice(summary.MonthlyBreakdown, func(i, j int) bool {
		return summary.MonthlyBreakdown[i].Month < summary.MonthlyBreakdown[j].Month
	})

	return summary
}

// Total returns the amount for a currency, zero when absent.
func Total(amounts domain.CurrencyAmounts, c domain.Currency) decimal.Decimal {
	if v, ok := amounts[c]; ok {
		return v
	}
	return decimal.Zero
}
