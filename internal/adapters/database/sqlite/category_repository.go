package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	"github.com/HaroonAzizi/hadaf-accounting/internal/models"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/mapping"
)

const categoryColumns = `id, name, parent_id, type, created_at`

type categoryRepository struct {
	db querier
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

func newCategoryRepository(db querier) *categoryRepository {
	return &categoryRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var m models.Category
	if err := row.Scan(&m.ID, &m.Name, &m.ParentID, &m.Type, &m.CreatedAt); err != nil {
		return nil, err
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = ?`
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, categoryID))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return c, nil
}

func (r *categoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = ?`
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return c, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = ?)`, categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", categoryID, err)
	}
	return exists, nil
}

func (r *categoryRepository) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return n, nil
}

func (r *categoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	m := mapping.ToModelCategory(category)
	query := `INSERT INTO categories (name, parent_id, type) VALUES (?, ?, ?) RETURNING ` + categoryColumns
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, m.Name, m.ParentID, m.Type))
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidParent)
	}
	return c, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	m := mapping.ToModelCategory(category)
	query := `UPDATE categories SET name = ?, parent_id = ? WHERE id = ? RETURNING ` + categoryColumns
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, m.Name, m.ParentID, m.ID))
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidParent)
	}
	return c, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}
	return requireAffected(res)
}

// requireAffected turns a write that touched no row into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// isNotFound reports whether err is a miss.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
