package dto

import (
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateRangeParams defines an optional inclusive date window.
type DateRangeParams struct {
	StartDate *string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   *string `form:"endDate" binding:"omitempty,isodate"`
}

// FollowUpParams defines the query of the follow-up queue.
// Type defaults to "in"; "all" includes both directions.
type FollowUpParams struct {
	DateRangeParams
	Type          *string `form:"type" binding:"omitempty,oneof=in out all"`
	RecurringOnly bool    `form:"recurringOnly"`
}

// FlowResponse is income, expenses and profit keyed by currency code.
type FlowResponse struct {
	Income   map[string]decimal.Decimal `json:"income"`
	Expenses map[string]decimal.Decimal `json:"expenses"`
	Profit   map[string]decimal.Decimal `json:"profit"`
}

// CategoryProfitResponse is one row of the profit-by-category breakdown.
type CategoryProfitResponse struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	FlowResponse
}

// MonthlyFlowResponse is one row of the monthly breakdown.
type MonthlyFlowResponse struct {
	Month string `json:"month"`
	FlowResponse
}

// DashboardSummaryResponse represents the dashboard summary.
type DashboardSummaryResponse struct {
	TotalIncome      map[string]decimal.Decimal `json:"totalIncome"`
	TotalExpenses    map[string]decimal.Decimal `json:"totalExpenses"`
	NetProfit        map[string]decimal.Decimal `json:"netProfit"`
	ProfitByCategory []CategoryProfitResponse   `json:"profitByCategory"`
	MonthlyBreakdown []MonthlyFlowResponse      `json:"monthlyBreakdown"`
}

// ToAmountMap converts currency amounts to a JSON friendly map.
func ToAmountMap(in domain.CurrencyAmounts) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for c, v := range in {
		out[string(c)] = v
	}
	return out
}

// ToFlowResponse converts flow totals.
func ToFlowResponse(f domain.FlowTotals) FlowResponse {
	return FlowResponse{
		Income:   ToAmountMap(f.Income),
		Expenses: ToAmountMap(f.Expenses),
		Profit:   ToAmountMap(f.Profit),
	}
}

// ToDashboardSummaryResponse converts the domain summary.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	resp := DashboardSummaryResponse{
		TotalIncome:      ToAmountMap(s.Income),
		TotalExpenses:    ToAmountMap(s.Expenses),
		NetProfit:        ToAmountMap(s.Profit),
		ProfitByCategory: make([]CategoryProfitResponse, len(s.ProfitByCategory)),
		MonthlyBreakdown: make([]MonthlyFlowResponse, len(s.MonthlyBreakdown)),
	}
	for i, row := range s.ProfitByCategory {
		resp.ProfitByCategory[i] = CategoryProfitResponse{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			FlowResponse: ToFlowResponse(row.FlowTotals),
		}
	}
	for i, row := range s.MonthlyBreakdown {
		resp.MonthlyBreakdown[i] = MonthlyFlowResponse{
			Month:        row.Month,
			FlowResponse: ToFlowResponse(row.FlowTotals),
		}
	}
	return resp
}
