package services

import (
	"context"
	"io"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
)

// ExportSvc streams ledger data and database snapshots.
type ExportSvc interface {
	// ExportTransactionsCSV writes the filtered entries as CSV and returns the row count.
	ExportTransactionsCSV(ctx context.Context, w io.Writer, filter domain.TransactionFilter) (int, error)

	// Backup writes a database snapshot to w and returns a suggested file name.
	Backup(ctx context.Context, w io.Writer) (string, error)
}

// SeederSvc fills an empty database.
type SeederSvc interface {
	// SeedDefaults creates the default categories when none exist.
	SeedDefaults(ctx context.Context) (int, error)

	// SeedSampleData inserts the sample entries when the ledger is empty.
	SeedSampleData(ctx context.Context) (int, error)
}

// HealthSvc reports backend readiness.
type HealthSvc interface {
	Check(ctx context.Context) error
}
