package services_test

import (
	"context"
	"testing"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	repo    *MockCategoryRepository
	service portssvc.CategorySvcFacade
	ctx     context.Context
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.repo = new(MockCategoryRepository)
	s.service = services.NewCategoryService(s.repo)
	s.ctx = context.Background()
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestListCategories_BuildsTree() {
	s.repo.On("ListCategories", s.ctx).Return([]domain.Category{
		{ID: 1, Name: "Classes"},
		{ID: 2, Name: "German Class", ParentID: ptr(int64(1))},
		{ID: 3, Name: "Ads"},
	}, nil)

	tree, err := s.service.ListCategories(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(tree, 2)
	s.Equal("Ads", tree[0].Name)
	s.Equal("Classes", tree[1].Name)
	s.Require().Len(tree[1].Children, 1)
	s.Equal("German Class", tree[1].Children[0].Name)
}

func (s *CategoryServiceTestSuite) TestCreate_DefaultsToCustom() {
	s.repo.On("SaveCategory", s.ctx, domain.Category{Name: "Books", Type: domain.CategoryTypeCustom}).
		Return(&domain.Category{ID: 7, Name: "Books", Type: domain.CategoryTypeCustom}, nil)

	created, err := s.service.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: " Books "})

	s.Require().NoError(err)
	s.Equal(int64(7), created.ID)
}

func (s *CategoryServiceTestSuite) TestCreate_MissingParent() {
	s.repo.On("CategoryExists", s.ctx, int64(42)).Return(false, nil)

	_, err := s.service.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: "Books", ParentID: ptr(int64(42))})

	s.ErrorIs(err, apperrors.ErrInvalidParent)
	s.repo.AssertNotCalled(s.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestCreate_Duplicate() {
	s.repo.On("SaveCategory", s.ctx, mock.Anything).Return(nil, apperrors.ErrDuplicate)

	_, err := s.service.CreateCategory(s.ctx, dto.CreateCategoryRequest{Name: "Books"})

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *CategoryServiceTestSuite) TestUpdate_SelfParent() {
	s.repo.On("FindCategoryByID", s.ctx, int64(3)).Return(&domain.Category{ID: 3, Name: "Ads"}, nil)

	_, err := s.service.UpdateCategory(s.ctx, 3, dto.UpdateCategoryRequest{ParentID: dto.OptionalInt64{Set: true, Value: ptr(int64(3))}})

	s.ErrorIs(err, apperrors.ErrInvalidParent)
}

func (s *CategoryServiceTestSuite) TestUpdate_RejectsCycle() {
	// 1 <- 2 <- 3; making 1 a child of 3 would close the loop.
	s.repo.On("FindCategoryByID", s.ctx, int64(1)).Return(&domain.Category{ID: 1, Name: "A"}, nil)
	s.repo.On("FindCategoryByID", s.ctx, int64(3)).Return(&domain.Category{ID: 3, Name: "C", ParentID: ptr(int64(2))}, nil)
	s.repo.On("FindCategoryByID", s.ctx, int64(2)).Return(&domain.Category{ID: 2, Name: "B", ParentID: ptr(int64(1))}, nil)
	s.repo.On("CategoryExists", s.ctx, int64(3)).Return(true, nil)

	_, err := s.service.UpdateCategory(s.ctx, 1, dto.UpdateCategoryRequest{ParentID: dto.OptionalInt64{Set: true, Value: ptr(int64(3))}})

	s.ErrorIs(err, apperrors.ErrInvalidParent)
	s.repo.AssertNotCalled(s.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (s *CategoryServiceTestSuite) TestUpdate_ClearParent() {
	s.repo.On("FindCategoryByID", s.ctx, int64(2)).Return(&domain.Category{ID: 2, Name: "B", ParentID: ptr(int64(1))}, nil)
	s.repo.On("UpdateCategory", s.ctx, domain.Category{ID: 2, Name: "B"}).Return(&domain.Category{ID: 2, Name: "B"}, nil)

	updated, err := s.service.UpdateCategory(s.ctx, 2, dto.UpdateCategoryRequest{ParentID: dto.OptionalInt64{Set: true}})

	s.Require().NoError(err)
	s.Nil(updated.ParentID)
}

func (s *CategoryServiceTestSuite) TestDelete_NotFound() {
	s.repo.On("FindCategoryByID", s.ctx, int64(9)).Return(nil, apperrors.ErrNotFound)

	err := s.service.DeleteCategory(s.ctx, 9)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.repo.AssertNotCalled(s.T(), "DeleteCategory", mock.Anything, mock.Anything)
}
