package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	"github.com/HaroonAzizi/hadaf-accounting/internal/models"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/mapping"
)

const transactionSelect = `
	SELECT t.id, t.category_id, c.name, t.recurring_id, t.amount, t.currency, t.type,
	       t.status, t.date, t.name, t.description, t.created_at, t.updated_at
	FROM transactions t
	JOIN categories c ON c.id = t.category_id`

type transactionRepository struct {
	db querier
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func newTransactionRepository(db querier) *transactionRepository {
	return &transactionRepository{db: db}
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.ID, &m.CategoryID, &m.CategoryName, &m.RecurringID, &m.Amount, &m.Currency, &m.Type,
		&m.Status, &m.Date, &m.Name, &m.Description, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t := mapping.ToDomainTransaction(m)
	return &t, nil
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRowContext(ctx, transactionSelect+` WHERE t.id = ?`, transactionID))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return t, nil
}

// LockTransaction reads the row; the immediate write transaction already
// excludes other writers.
func (r *transactionRepository) LockTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	return r.FindTransactionByID(ctx, transactionID)
}

func (r *transactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, args := buildListQuery(filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

func buildListQuery(f domain.TransactionFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if status, ok := f.Status.Effective(); ok {
		where = append(where, "t.status = ?")
		args = append(args, string(status))
	}
	if f.CategoryID != nil {
		where = append(where, "t.category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.Type != nil {
		where = append(where, "t.type = ?")
		args = append(args, string(*f.Type))
	}
	if f.Currency != nil {
		where = append(where, "t.currency = ?")
		args = append(args, string(*f.Currency))
	}
	if f.StartDate != nil {
		where = append(where, "t.date >= ?")
		args = append(args, f.StartDate.String())
	}
	if f.EndDate != nil {
		where = append(where, "t.date <= ?")
		args = append(args, f.EndDate.String())
	}
	if f.RecurringOnly {
		where = append(where, "t.recurring_id IS NOT NULL")
	}

	order := "t.date DESC, t.id DESC"
	cmp := "<"
	if f.OldestFirst {
		order = "t.date ASC, t.id ASC"
		cmp = ">"
	}
	if f.After != nil {
		where = append(where, fmt.Sprintf("(t.date %s ? OR (t.date = ? AND t.id %s ?))", cmp, cmp))
		d := f.After.Date.String()
		args = append(args, d, d, f.After.ID)
	}

	var sb strings.Builder
	sb.WriteString(transactionSelect)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY ")
	sb.WriteString(order)
	if f.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, f.Limit)
	}
	return sb.String(), args
}

func (r *transactionRepository) FindByTemplateAndDate(ctx context.Context, recurringID int64, date domain.Date, statuses ...domain.TransactionStatus) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.recurring_id = ? AND t.date = ?`
	args := []any{recurringID, date.String()}
	if len(statuses) > 0 {
		marks := make([]string, len(statuses))
		for i, s := range statuses {
			marks[i] = "?"
			args = append(args, string(s))
		}
		query += ` AND t.status IN (` + strings.Join(marks, ", ") + `)`
	}
	query += ` ORDER BY t.created_at DESC, t.id DESC LIMIT 1`

	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err = mapError(err, nil); isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find installment of template %d on %s: %w", recurringID, date, err)
	}
	return t, nil
}

func (r *transactionRepository) CountTransactions(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (category_id, recurring_id, amount, currency, type, status, date, name, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		m.CategoryID, m.RecurringID, m.Amount.String(), m.Currency, m.Type, m.Status, m.Date.String(), m.Name, m.Description,
	).Scan(&id)
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidCategory)
	}
	return r.FindTransactionByID(ctx, id)
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET category_id = ?, amount = ?, currency = ?, type = ?, status = ?, date = ?,
		    name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		m.CategoryID, m.Amount.String(), m.Currency, m.Type, m.Status, m.Date.String(), m.Name, m.Description, m.ID,
	)
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidCategory)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return r.FindTransactionByID(ctx, m.ID)
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	return requireAffected(res)
}
