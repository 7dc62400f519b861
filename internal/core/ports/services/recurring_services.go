package services

import (
	"context"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
)

// RecurringReaderSvc defines read operations for recurring templates
type RecurringReaderSvc interface {
	ListRecurring(ctx context.Context) ([]domain.RecurringTemplate, error)
	GetRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTemplate, error)
}

// RecurringWriterSvc defines write operations for recurring templates
type RecurringWriterSvc interface {
	// CreateRecurring stores the template and, unless disabled or inactive,
	// its first pending installment in one unit of work.
	CreateRecurring(ctx context.Context, req dto.CreateRecurringRequest) (*domain.RecurringTemplate, *domain.Transaction, error)

	UpdateRecurring(ctx context.Context, recurringID int64, req dto.UpdateRecurringRequest) (*domain.RecurringTemplate, error)

	DeleteRecurring(ctx context.Context, recurringID int64) error

	// ExecuteRecurring ensures a pending installment exists for the
	// template's current due date. It never advances the template.
	ExecuteRecurring(ctx context.Context, recurringID int64) (*domain.Execution, error)
}

// RecurringSvcFacade combines all recurring template service interfaces
type RecurringSvcFacade interface {
	RecurringReaderSvc
	RecurringWriterSvc
}
