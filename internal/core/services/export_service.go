package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/gocarina/gocsv"
)

// exportService implements portssvc.ExportSvc.
type exportService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	snapshot portsrepo.Snapshotter
}

// NewExportService creates the export service.
func NewExportService(repos portsrepo.RepositoryProvider, snapshot portsrepo.Snapshotter) portssvc.ExportSvc {
	return &exportService{repos: repos, snapshot: snapshot}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

// ExportTransactionsCSV writes one header row and one row per entry, newest first.
func (s *exportService) ExportTransactionsCSV(ctx context.Context, w io.Writer, filter domain.TransactionFilter) (int, error) {
	filter.Limit = 0
	filter.After = nil

	txns, err := s.repos.TransactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for export")
		return 0, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	rows := dto.ToTransactionCSVRows(txns)
	csvWriter := csv.NewWriter(w)
	if len(rows) == 0 {
		// An empty export still carries the header.
		if err := csvWriter.Write(dto.TransactionCSVHeader); err != nil {
			return 0, err
		}
		csvWriter.Flush()
		return 0, csvWriter.Error()
	}

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		s.LogError(ctx, err, "Failed to write CSV export")
		return 0, fmt.Errorf("failed to write CSV: %w", err)
	}

	s.LogInfo(ctx, "Transactions exported", slog.Int("rows", len(rows)))
	return len(rows), nil
}

// Backup streams a database snapshot.
func (s *exportService) Backup(ctx context.Context, w io.Writer) (string, error) {
	name, err := s.snapshot.Backup(ctx, w)
	if err != nil {
		return "", err
	}
	s.LogInfo(ctx, "Database backup written", slog.String("file", name))
	return name, nil
}
