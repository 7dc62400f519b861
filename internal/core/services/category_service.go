package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
)

// categoryService implements portssvc.CategorySvcFacade
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	flat, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return domain.BuildCategoryTree(flat), nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get category", slog.Int64("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	if req.ParentID != nil {
		if err := s.requireParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	categoryType := domain.CategoryTypeCustom
	if req.Type != nil {
		categoryType = domain.CategoryType(*req.Type)
	}

	created, err := s.categoryRepo.SaveCategory(ctx, domain.Category{
		Name:     name,
		ParentID: req.ParentID,
		Type:     categoryType,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, name)
		}
		s.LogError(ctx, err, "Failed to save category", slog.String("name", name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.Int64("category_id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID int64, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	existing, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", apperrors.ErrValidation)
		}
		updated.Name = name
	}

	if req.ParentID.Set {
		if req.ParentID.Value == nil {
			updated.ParentID = nil
		} else {
			parentID := *req.ParentID.Value
			if parentID == categoryID {
				return nil, fmt.Errorf("%w: a category cannot be its own parent", apperrors.ErrInvalidParent)
			}
			if err := s.requireParent(ctx, parentID); err != nil {
				return nil, err
			}
			if err := s.rejectCycle(ctx, categoryID, parentID); err != nil {
				return nil, err
			}
			updated.ParentID = &parentID
		}
	}

	saved, err := s.categoryRepo.UpdateCategory(ctx, updated)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, updated.Name)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update category", slog.Int64("category_id", categoryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.Int64("category_id", saved.ID))
	return saved, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.Int64("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.Int64("category_id", categoryID))
	return nil
}

func (s *categoryService) requireParent(ctx context.Context, parentID int64) error {
	ok, err := s.categoryRepo.CategoryExists(ctx, parentID)
	if err != nil {
		return fmt.Errorf("failed to check parent category: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: parent category %d not found", apperrors.ErrInvalidParent, parentID)
	}
	return nil
}

// rejectCycle walks up from parentID and fails if it reaches categoryID.
func (s *categoryService) rejectCycle(ctx context.Context, categoryID, parentID int64) error {
	seen := map[int64]bool{}
	current := &parentID
	for current != nil {
		if *current == categoryID {
			return fmt.Errorf("%w: category %d would become its own ancestor", apperrors.ErrInvalidParent, categoryID)
		}
		if seen[*current] {
			return nil
		}
		seen[*current] = true

		node, err := s.categoryRepo.FindCategoryByID(ctx, *current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("failed to walk category parents: %w", err)
		}
		current = node.ParentID
	}
	return nil
}
