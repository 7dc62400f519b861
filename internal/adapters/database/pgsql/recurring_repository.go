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

const recurringSelect = `
	SELECT r.id, r.category_id, c.name, r.amount, r.currency, r.type, r.name, r.description,
	       r.frequency, r.next_due_date, r.is_active, r.created_at
	FROM recurring_transactions r
	JOIN categories c ON c.id = r.category_id`

type PgxRecurringRepository struct {
	db querier
}

func newPgxRecurringRepository(db querier) *PgxRecurringRepository {
	return &PgxRecurringRepository{db: db}
}

// Ensure PgxRecurringRepository implements portsrepo.RecurringRepositoryFacade
var _ portsrepo.RecurringRepositoryFacade = (*PgxRecurringRepository)(nil)

func scanRecurring(row pgx.Row) (*domain.RecurringTemplate, error) {
	var m models.RecurringTemplate
	err := row.Scan(
		&m.ID, &m.CategoryID, &m.CategoryName, &m.Amount, &m.Currency, &m.Type, &m.Name, &m.Description,
		&m.Frequency, &m.NextDueDate, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainRecurring(m)
	return &t, nil
}

func (r *PgxRecurringRepository) FindRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTemplate, error) {
	t, err := scanRecurring(r.db.QueryRow(ctx, recurringSelect+` WHERE r.id = $1`, recurringID))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return t, nil
}

func (r *PgxRecurringRepository) LockRecurring(ctx context.Context, recurringID int64) (*domain.RecurringTemplate, error) {
	t, err := scanRecurring(r.db.QueryRow(ctx, recurringSelect+` WHERE r.id = $1 FOR UPDATE OF r`, recurringID))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return t, nil
}

func (r *PgxRecurringRepository) ListRecurring(ctx context.Context) ([]domain.RecurringTemplate, error) {
	return r.list(ctx, recurringSelect+` ORDER BY r.next_due_date, r.id`)
}

func (r *PgxRecurringRepository) ListDueRecurring(ctx context.Context, asOf domain.Date) ([]domain.RecurringTemplate, error) {
	query := recurringSelect + ` WHERE r.is_active AND r.next_due_date <= $1 ORDER BY r.next_due_date, r.id`
	return r.list(ctx, query, asOf.Time())
}

func (r *PgxRecurringRepository) list(ctx context.Context, query string, args ...any) ([]domain.RecurringTemplate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.RecurringTemplate{}
	for rows.Next() {
		t, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring template: %w", err)
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

func (r *PgxRecurringRepository) SaveRecurring(ctx context.Context, template domain.RecurringTemplate) (*domain.RecurringTemplate, error) {
	m := mapping.ToModelRecurring(template)
	query := `
		INSERT INTO recurring_transactions
		    (category_id, amount, currency, type, name, description, frequency, next_due_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		m.CategoryID, m.Amount, m.Currency, m.Type, m.Name, m.Description, m.Frequency, m.NextDueDate.Time(), m.IsActive,
	).Scan(&id)
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidCategory)
	}
	return r.FindRecurringByID(ctx, id)
}

func (r *PgxRecurringRepository) UpdateRecurring(ctx context.Context, template domain.RecurringTemplate) (*domain.RecurringTemplate, error) {
	m := mapping.ToModelRecurring(template)
	query := `
		UPDATE recurring_transactions
		SET category_id = $1, amount = $2, currency = $3, type = $4, name = $5, description = $6,
		    frequency = $7, is_active = $8
		WHERE id = $9`

	tag, err := r.db.Exec(ctx, query,
		m.CategoryID, m.Amount, m.Currency, m.Type, m.Name, m.Description, m.Frequency, m.IsActive, m.ID,
	)
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidCategory)
	}
	if err := requireAffected(tag); err != nil {
		return nil, err
	}
	return r.FindRecurringByID(ctx, m.ID)
}

func (r *PgxRecurringRepository) DeleteRecurring(ctx context.Context, recurringID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recurring_transactions WHERE id = $1`, recurringID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring template %d: %w", recurringID, err)
	}
	return requireAffected(tag)
}

func (r *PgxRecurringRepository) AdvanceNextDueDate(ctx context.Context, recurringID int64, next domain.Date) error {
	tag, err := r.db.Exec(ctx, `UPDATE recurring_transactions SET next_due_date = $1 WHERE id = $2`, next.Time(), recurringID)
	if err != nil {
		return fmt.Errorf("failed to advance template %d: %w", recurringID, err)
	}
	return requireAffected(tag)
}
