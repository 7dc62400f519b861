package pgsql

import (
	"context"
	"fmt"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	"github.com/HaroonAzizi/hadaf-accounting/internal/models"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const categoryColumns = `id, name, parent_id, type, created_at`

type PgxCategoryRepository struct {
	db querier
}

func newPgxCategoryRepository(db querier) *PgxCategoryRepository {
	return &PgxCategoryRepository{db: db}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var m models.Category
	if err := row.Scan(&m.ID, &m.Name, &m.ParentID, &m.Type, &m.CreatedAt); err != nil {
		return nil, err
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.db.QueryRow(ctx, query, categoryID))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return c, nil
}

func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`
	c, err := scanCategory(r.db.QueryRow(ctx, query, name))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return c, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name, id`)
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

func (r *PgxCategoryRepository) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", categoryID, err)
	}
	return exists, nil
}

func (r *PgxCategoryRepository) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return n, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	m := mapping.ToModelCategory(category)
	query := `INSERT INTO categories (name, parent_id, type) VALUES ($1, $2, $3) RETURNING ` + categoryColumns
	c, err := scanCategory(r.db.QueryRow(ctx, query, m.Name, m.ParentID, m.Type))
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidParent)
	}
	return c, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	m := mapping.ToModelCategory(category)
	query := `UPDATE categories SET name = $1, parent_id = $2 WHERE id = $3 RETURNING ` + categoryColumns
	c, err := scanCategory(r.db.QueryRow(ctx, query, m.Name, m.ParentID, m.ID))
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidParent)
	}
	return c, nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}
	return requireAffected(tag)
}
