package services

import (
	"context"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
)

// CategoryReaderSvc defines read operations for category data
type CategoryReaderSvc interface {
	// ListCategories returns the category tree ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data
type CategoryWriterSvc interface {
	// CreateCategory fails with apperrors.ErrDuplicate for a taken name and
	// apperrors.ErrInvalidParent for a missing parent.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory also removes the category's entries and templates.
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
