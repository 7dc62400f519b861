package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	"github.com/HaroonAzizi/hadaf-accounting/internal/models"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const transactionSelect = `
	SELECT t.id, t.category_id, c.name, t.recurring_id, t.amount, t.currency, t.type,
	       t.status, t.date, t.name, t.description, t.created_at, t.updated_at
	FROM transactions t
	JOIN categories c ON c.id = t.category_id`

type PgxTransactionRepository struct {
	db querier
}

func newPgxTransactionRepository(db querier) *PgxTransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
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

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRow(ctx, transactionSelect+` WHERE t.id = $1`, transactionID))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return t, nil
}

func (r *PgxTransactionRepository) LockTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRow(ctx, transactionSelect+` WHERE t.id = $1 FOR UPDATE OF t`, transactionID))
	if err != nil {
		return nil, mapError(err, nil)
	}
	return t, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query, args := buildListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
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
		args  placeholders
	)
	if status, ok := f.Status.Effective(); ok {
		where = append(where, "t.status = "+args.add(string(status)))
	}
	if f.CategoryID != nil {
		where = append(where, "t.category_id = "+args.add(*f.CategoryID))
	}
	if f.Type != nil {
		where = append(where, "t.type = "+args.add(string(*f.Type)))
	}
	if f.Currency != nil {
		where = append(where, "t.currency = "+args.add(string(*f.Currency)))
	}
	if f.StartDate != nil {
		where = append(where, "t.date >= "+args.add(f.StartDate.Time()))
	}
	if f.EndDate != nil {
		where = append(where, "t.date <= "+args.add(f.EndDate.Time()))
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
		d := args.add(f.After.Date.Time())
		id := args.add(f.After.ID)
		where = append(where, fmt.Sprintf("(t.date, t.id) %s (%s, %s)", cmp, d, id))
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
		sb.WriteString(" LIMIT " + args.add(f.Limit))
	}
	return sb.String(), args
}

func (r *PgxTransactionRepository) FindByTemplateAndDate(ctx context.Context, recurringID int64, date domain.Date, statuses ...domain.TransactionStatus) (*domain.Transaction, error) {
	var args placeholders
	query := transactionSelect + ` WHERE t.recurring_id = ` + args.add(recurringID) + ` AND t.date = ` + args.add(date.Time())
	if len(statuses) > 0 {
		names := make([]string, len(statuses))
		for i, s := range statuses {
			names[i] = string(s)
		}
		query += ` AND t.status = ANY(` + args.add(names) + `)`
	}
	query += ` ORDER BY t.created_at DESC, t.id DESC LIMIT 1`

	t, err := scanTransaction(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err = mapError(err, nil); errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find installment of template %d on %s: %w", recurringID, date, err)
	}
	return t, nil
}

func (r *PgxTransactionRepository) CountTransactions(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (category_id, recurring_id, amount, currency, type, status, date, name, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		m.CategoryID, m.RecurringID, m.Amount, m.Currency, m.Type, m.Status, m.Date.Time(), m.Name, m.Description,
	).Scan(&id)
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidCategory)
	}
	return r.FindTransactionByID(ctx, id)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET category_id = $1, amount = $2, currency = $3, type = $4, status = $5, date = $6,
		    name = $7, description = $8, updated_at = NOW()
		WHERE id = $9`

	tag, err := r.db.Exec(ctx, query,
		m.CategoryID, m.Amount, m.Currency, m.Type, m.Status, m.Date.Time(), m.Name, m.Description, m.ID,
	)
	if err != nil {
		return nil, mapError(err, apperrors.ErrInvalidCategory)
	}
	if err := requireAffected(tag); err != nil {
		return nil, err
	}
	return r.FindTransactionByID(ctx, m.ID)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	return requireAffected(tag)
}
