package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// NewReportingService creates a new reporting service
func NewReportingService(repos portsrepo.RepositoryProvider) portssvc.ReportingService {
	return &reportingService{repos: repos}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// DashboardSummary aggregates done entries per currency, per category and per month.
func (s *reportingService) DashboardSummary(ctx context.Context, start, end *domain.Date) (*domain.DashboardSummary, error) {
	txns, err := s.repos.TransactionRepo.ListTransactions(ctx, domain.TransactionFilter{
		Status:    domain.OnlyStatus(domain.StatusDone),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve dashboard data")
		return nil, fmt.Errorf("failed to retrieve dashboard data: %w", err)
	}

	summary := accounting.Summarize(txns)
	s.LogDebug(ctx, "Dashboard summary generated",
		slog.Int("transactions", len(txns)),
		slog.Int("categories", len(summary.ProfitByCategory)),
		slog.Int("months", len(summary.MonthlyBreakdown)))
	return &summary, nil
}

// CategoryStats sums the done entries booked directly on the category.
func (s *reportingService) CategoryStats(ctx context.Context, categoryID int64) (*domain.CategoryStats, error) {
	category, err := s.repos.CategoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	txns, err := s.repos.TransactionRepo.ListTransactions(ctx, domain.TransactionFilter{
		CategoryID: &categoryID,
		Status:     domain.OnlyStatus(domain.StatusDone),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve category transactions", slog.Int64("category_id", categoryID))
		return nil, fmt.Errorf("failed to retrieve category transactions: %w", err)
	}

	return &domain.CategoryStats{Category: *category, FlowTotals: accounting.SumFlow(txns)}, nil
}

// FollowUps lists pending entries, oldest first.
func (s *reportingService) FollowUps(ctx context.Context, filter domain.FollowUpFilter) ([]domain.Transaction, error) {
	txns, err := s.repos.TransactionRepo.ListTransactions(ctx, domain.TransactionFilter{
		Type:          filter.Type,
		Status:        domain.OnlyStatus(domain.StatusPending),
		StartDate:     filter.StartDate,
		EndDate:       filter.EndDate,
		RecurringOnly: filter.RecurringOnly,
		OldestFirst:   true,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve follow-ups")
		return nil, fmt.Errorf("failed to retrieve follow-ups: %w", err)
	}
	return txns, nil
}

// DueTemplates lists active templates due on or before asOf.
func (s *reportingService) DueTemplates(ctx context.Context, asOf domain.Date) ([]domain.RecurringTemplate, error) {
	templates, err := s.repos.RecurringRepo.ListDueRecurring(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve due templates", slog.String("as_of", asOf.String()))
		return nil, fmt.Errorf("failed to retrieve due templates: %w", err)
	}
	return templates, nil
}
