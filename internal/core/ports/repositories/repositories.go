package repositories

import (
	"context"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID returns apperrors.ErrNotFound when the category does not exist.
	FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)

	// FindCategoryByName returns apperrors.ErrNotFound when no category has that name.
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)

	// ListCategories returns all categories as a flat list ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// CategoryExists reports whether the category is present.
	CategoryExists(ctx context.Context, categoryID int64) (bool, error)

	CountCategories(ctx context.Context) (int, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory inserts a category and returns the stored row.
	SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error)

	// UpdateCategory overwrites name and parent of an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)

	// DeleteCategory removes a category; the store cascades to its entries,
	// templates and child categories.
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// FindTransactionByID returns the entry joined with its category name.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// LockTransaction is FindTransactionByID that also locks the row until
	// the surrounding transaction ends. Only meaningful inside WithinTx.
	LockTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions applies the filter. Without an explicit status only
	// done entries are returned.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// FindByTemplateAndDate returns the most recently created entry of the
	// template on date whose status is one of statuses (any status when
	// none are given). A miss is (nil, nil), not an error.
	FindByTemplateAndDate(ctx context.Context, recurringID int64, date domain.Date, statuses ...domain.TransactionStatus) (*domain.Transaction, error)

	CountTransactions(ctx context.Context) (int, error)
}

// TransactionWriter defines write operations for ledger entries
type TransactionWriter interface {
	// SaveTransaction inserts an entry and returns it with id and timestamps.
	// A second pending entry for the same template and date is
	// apperrors.ErrDuplicate.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// UpdateTransaction overwrites the mutable fields and refreshes updated_at.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// RecurringReader defines read operations for recurring templates
type RecurringReader interface {
	FindRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTemplate, error)

	// LockRecurring is FindRecurringByID that also locks the row until the
	// surrounding transaction ends.
	LockRecurring(ctx context.Context, recurringID int64) (*domain.RecurringTemplate, error)

	// ListRecurring orders by next_due_date, then id.
	ListRecurring(ctx context.Context) ([]domain.RecurringTemplate, error)

	// ListDueRecurring returns active templates with next_due_date <= asOf,
	// ordered by next_due_date, then id.
	ListDueRecurring(ctx context.Context, asOf domain.Date) ([]domain.RecurringTemplate, error)
}

// RecurringWriter defines write operations for recurring templates
type RecurringWriter interface {
	SaveRecurring(ctx context.Context, template domain.RecurringTemplate) (*domain.RecurringTemplate, error)

	// UpdateRecurring overwrites every mutable column except next_due_date.
	UpdateRecurring(ctx context.Context, template domain.RecurringTemplate) (*domain.RecurringTemplate, error)

	DeleteRecurring(ctx context.Context, recurringID int64) error

	// AdvanceNextDueDate overwrites next_due_date unconditionally. Callers
	// make sure the new date is later than the current one.
	AdvanceNextDueDate(ctx context.Context, recurringID int64, next domain.Date) error
}

// RecurringRepositoryFacade combines all recurring template repository interfaces
type RecurringRepositoryFacade interface {
	RecurringReader
	RecurringWriter
}

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CategoryRepo    CategoryRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	RecurringRepo   RecurringRepositoryFacade
}
