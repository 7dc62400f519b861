package services

import (
	"context"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
)

// TransactionPage is one page of a ledger listing. Next is nil on the last page.
type TransactionPage struct {
	Items []domain.Transaction
	Next  *domain.LedgerCursor
}

// TransactionReaderSvc defines read operations for ledger entries
type TransactionReaderSvc interface {
	// ListTransactions applies the filter; without a status only done
	// entries are listed.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*TransactionPage, error)

	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for ledger entries
type TransactionWriterSvc interface {
	// CreateTransaction records an entry. When req.Frequency is set a
	// recurring template is created in the same unit of work.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction merges the request over the entry. Closing the
	// template's current installment advances the template.
	UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionSvcFacade combines all ledger service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// InstallmentAdvancerSvc owns the rule that ties installment closure to
// template progression. Every method runs on the repositories it is handed,
// so callers control the transaction boundary.
type InstallmentAdvancerSvc interface {
	// CloseInstallmentAndMaybeAdvance inspects a ledger update. It advances
	// the template one period and ensures the next pending installment
	// only when before was pending, after is done or cancelled, the entry
	// belongs to an active template, and before.Date equals the template's
	// next due date.
	CloseInstallmentAndMaybeAdvance(ctx context.Context, repos portsrepo.RepositoryProvider, before, after domain.Transaction) (*domain.Advancement, error)

	// EnsureInstallment returns the pending installment of template on date,
	// creating it when none exists.
	EnsureInstallment(ctx context.Context, repos portsrepo.RepositoryProvider, template domain.RecurringTemplate, date domain.Date) (*domain.Transaction, bool, error)
}
