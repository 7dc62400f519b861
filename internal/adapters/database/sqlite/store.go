package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	"github.com/HaroonAzizi/hadaf-accounting/pkg/database"
)

// querier is the subset of *sql.DB and *sql.Tx the repositories use.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the SQLite backend.
type Store struct {
	db   *sql.DB
	path string
	dsn  string
}

var _ portsrepo.Store = (*Store)(nil)

// Open opens (creating if needed) the database file at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := database.SQLiteDSN(path)
	db, err := database.OpenSQLite(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, path: path, dsn: dsn}, nil
}

// Migrate implements portsrepo.Store.
func (s *Store) Migrate(_ context.Context) error {
	return RunMigrations(s.dsn)
}

// Repositories implements portsrepo.Store.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return newRepositoryProvider(s.db)
}

func newRepositoryProvider(q querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:    newCategoryRepository(q),
		TransactionRepo: newTransactionRepository(q),
		RecurringRepo:   newRecurringRepository(q),
	}
}

// WithinTx implements portsrepo.TransactionManager. Transactions start with
// BEGIN IMMEDIATE, so concurrent units of work are serialized by SQLite.
func (s *Store) WithinTx(ctx context.Context, fn portsrepo.TxFunc) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, newRepositoryProvider(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.ErrorContext(ctx, "Failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Ping implements portsrepo.Pinger.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Backup writes a VACUUM INTO snapshot of the database to w.
func (s *Store) Backup(ctx context.Context, w io.Writer) (string, error) {
	tmpDir, err := os.MkdirTemp("", "hadaf-backup-*")
	if err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	name := fmt.Sprintf("hadaf-backup-%s.db", time.Now().UTC().Format("20060102-150405"))
	target := filepath.Join(tmpDir, name)
	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", target); err != nil {
		return "", fmt.Errorf("vacuum into snapshot: %w", err)
	}

	f, err := os.Open(target)
	if err != nil {
		return "", fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return "", fmt.Errorf("stream snapshot: %w", err)
	}
	return name, nil
}

// Close implements portsrepo.Store.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
