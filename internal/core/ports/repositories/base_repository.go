package repositories

import (
	"context"
	"io"
)

// TxFunc is the body of a unit of work. The provider it receives is bound to
// the open database transaction; anything it returns rolls the work back.
type TxFunc func(ctx context.Context, repos RepositoryProvider) error

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// WithinTx runs fn inside a single database transaction. It commits when
	// fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn TxFunc) error
}

// Snapshotter writes a consistent copy of the whole database.
type Snapshotter interface {
	// Backup writes the snapshot to w and returns a suggested file name.
	// Backends without file snapshots return apperrors.ErrNotSupported.
	Backup(ctx context.Context, w io.Writer) (filename string, err error)
}

// Pinger checks connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is a database backend: repositories bound to the connection pool,
// units of work, and operational hooks.
type Store interface {
	TransactionManager
	Snapshotter
	Pinger

	// Repositories returns repositories that run outside any transaction.
	Repositories() RepositoryProvider

	// Migrate applies all pending schema migrations.
	Migrate(ctx context.Context) error

	Close() error
}
