package services

import (
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/platform/seed"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(store portsrepo.Store, fixtures *seed.Fixtures, publisher portssvc.LedgerEventPublisher) *portssvc.ServiceContainer {
	repos := store.Repositories()

	// The advancer is shared by every path that closes or creates installments.
	advancer := NewInstallmentAdvancer()

	return &portssvc.ServiceContainer{
		Category:    NewCategoryService(repos.CategoryRepo),
		Transaction: NewTransactionService(store, repos, advancer, WithTransactionEvents(publisher)),
		Recurring:   NewRecurringService(store, repos, advancer, WithRecurringEvents(publisher)),
		Advancer:    advancer,
		Reporting:   NewReportingService(repos),
		Export:      NewExportService(repos, store),
		Seeder:      NewSeederService(store, fixtures),
		Health:      NewHealthService(store),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade   = (*transactionService)(nil)
	_ portssvc.RecurringSvcFacade     = (*recurringService)(nil)
	_ portssvc.InstallmentAdvancerSvc = (*installmentAdvancer)(nil)
	_ portssvc.HealthSvc              = (*healthService)(nil)
)
