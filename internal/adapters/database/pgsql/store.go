package pgsql

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	"github.com/HaroonAzizi/hadaf-accounting/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the PostgreSQL backend.
type Store struct {
	BaseRepository
	databaseURL string
}

var _ portsrepo.Store = (*Store)(nil)

// Open connects to databaseURL.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := database.NewPgxPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return NewStore(pool, databaseURL), nil
}

// NewStore wraps an existing pool.
func NewStore(pool *pgxpool.Pool, databaseURL string) *Store {
	return &Store{BaseRepository: BaseRepository{Pool: pool}, databaseURL: databaseURL}
}

// Migrate implements portsrepo.Store.
func (s *Store) Migrate(_ context.Context) error {
	return RunMigrations(s.databaseURL)
}

// Repositories implements portsrepo.Store.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return NewRepositoryProvider(s.Pool)
}

// NewRepositoryProvider binds every repository to q.
func NewRepositoryProvider(q querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:    newPgxCategoryRepository(q),
		TransactionRepo: newPgxTransactionRepository(q),
		RecurringRepo:   newPgxRecurringRepository(q),
	}
}

// WithinTx implements portsrepo.TransactionManager.
func (s *Store) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := s.Rollback(ctx, tx); rbErr != nil {
			slog.ErrorContext(ctx, "Failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, NewRepositoryProvider(tx)); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}

// Ping implements portsrepo.Pinger.
func (s *Store) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

// Backup is only available on the SQLite backend.
func (s *Store) Backup(_ context.Context, _ io.Writer) (string, error) {
	return "", fmt.Errorf("%w: backup requires the sqlite driver, use pg_dump", apperrors.ErrNotSupported)
}

// Close implements portsrepo.Store.
func (s *Store) Close() error {
	database.ClosePgxPool(s.Pool)
	return nil
}
