package sqlite

import (
	"context"
	"fmt"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	"github.com/HaroonAzizi/hadaf-accounting/internal/models"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/mapping"
)

const recurringSelect = `
	SELECT r.id, r.category_id, c.name, r.amount, r.currency, r.type, r.name, r.description,
	       r.frequency, r.next_due_date, r.is_active, r.created_at
	FROM recurring_transactions r
	JOIN categories c ON c.id = r.category_id`

type recurringRepository struct {
	db querier
}

var _ portsrepo.RecurringRepositoryFacade = (*recurringRepository)(nil)

func newRecurringRepository(db querier) *recurringRepository {
	return &recurringRepository{db: db}
}

func scanRecurring(row rowScanner) (*domain.RecurringTemplate, error) {
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

func (r *recurringRepository) FindRecurringByID(ctx context.Context, recurringID int64) (*domain.RecurringTemplate, error) {
	t, err := scanRecurring(r.db.QueryRowContext(ctx, recurringSelect+` WHERE r.id = ?`, recurringID))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return t, nil
}

func (r *recurringRepository) LockRecurring(ctx context.Context, recurringID int64) (*domain.RecurringTemplate, error) {
	return r.FindRecurringByID(ctx, recurringID)
}

func (r *recurringRepository) ListRecurring(ctx context.Context) ([]domain.RecurringTemplate, error) {
	return r.list(ctx, recurringSelect+` ORDER BY r.next_due_date, r.id`)
}

func (r *recurringRepository) ListDueRecurring(ctx context.Context, asOf domain.Date) ([]domain.RecurringTemplate, error) {
	query := recurringSelect + ` WHERE r.is_active = 1 AND r.next_due_date <= ? ORDER BY r.next_due_date, r.id`
	return r.list(ctx, query, asOf.String())
}

func (r *recurringRepository) list(ctx context.Context, query string, args ...any) ([]domain.RecurringTemplate, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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

func (r *recurringRepository) SaveRecurring(ctx context.Context, template domain.RecurringTemplate) (*domain.RecurringTemplate, error) {
	m := mapping.ToModelRecurring(template)
	query := `
		INSERT INTO recurring_transactions
		    (category_id, amount, currency, type, name, description, frequency, next_due_date, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		m.CategoryID, m.Amount.String(), m.Currency, m.Type, m.Name, m.Description, m.Frequency, m.NextDueDate.String(), m.IsActive,
	).Scan(&id)
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidCategory)
	}
	return r.FindRecurringByID(ctx, id)
}

func (r *recurringRepository) UpdateRecurring(ctx context.Context, template domain.RecurringTemplate) (*domain.RecurringTemplate, error) {
	m := mapping.ToModelRecurring(template)
	query := `
		UPDATE recurring_transactions
		SET category_id = ?, amount = ?, currency = ?, type = ?, name = ?, description = ?,
		    frequency = ?, is_active = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		m.CategoryID, m.Amount.String(), m.Currency, m.Type, m.Name, m.Description, m.Frequency, m.IsActive, m.ID,
	)
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidCategory)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return r.FindRecurringByID(ctx, m.ID)
}

func (r *recurringRepository) DeleteRecurring(ctx context.Context, recurringID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recurring_transactions WHERE id = ?`, recurringID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring template %d: %w", recurringID, err)
	}
	return requireAffected(res)
}

func (r *recurringRepository) AdvanceNextDueDate(ctx context.Context, recurringID int64, next domain.Date) error {
	res, err := r.db.ExecContext(ctx, `UPDATE recurring_transactions SET next_due_date = ? WHERE id = ?`, next.String(), recurringID)
	if err != nil {
		return fmt.Errorf("failed to advance template %d: %w", recurringID, err)
	}
	return requireAffected(res)
}
