package services

import (
	"context"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
)

// ReportingService defines the read-only views over the ledger and templates.
type ReportingService interface {
	// DashboardSummary aggregates done entries between start and end (inclusive, both optional).
	DashboardSummary(ctx context.Context, start, end *domain.Date) (*domain.DashboardSummary, error)

	// CategoryStats is the flow of done entries of one category.
	CategoryStats(ctx context.Context, categoryID int64) (*domain.CategoryStats, error)

	// FollowUps lists pending entries, oldest date first.
	FollowUps(ctx context.Context, filter domain.FollowUpFilter) ([]domain.Transaction, error)

	// DueTemplates lists active templates due on or before asOf. Read only.
	DueTemplates(ctx context.Context, asOf domain.Date) ([]domain.RecurringTemplate, error)
}
