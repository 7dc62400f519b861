package services

import (
	"context"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Recurring   RecurringSvcFacade
	Advancer    InstallmentAdvancerSvc
	Reporting   ReportingService
	Export      ExportSvc
	Seeder      SeederSvc
	Health      HealthSvc
}

// LedgerEventPublisher receives ledger events after their unit of work
// commits. Implementations must be safe for concurrent use.
type LedgerEventPublisher interface {
	Publish(ctx context.Context, events ...domain.LedgerEvent) error
}
