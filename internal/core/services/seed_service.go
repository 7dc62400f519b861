package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/platform/seed"
)

// seederService implements portssvc.SeederSvc from embedded fixtures.
type seederService struct {
	BaseService
	txManager portsrepo.TransactionManager
	fixtures  *seed.Fixtures
}

// NewSeederService creates the seeder.
func NewSeederService(txManager portsrepo.TransactionManager, fixtures *seed.Fixtures) portssvc.SeederSvc {
	return &seederService{txManager: txManager, fixtures: fixtures}
}

var _ portssvc.SeederSvc = (*seederService)(nil)

// SeedDefaults creates the default categories when the table is empty.
func (s *seederService) SeedDefaults(ctx context.Context) (int, error) {
	created := 0
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		count, err := repos.CategoryRepo.CountCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		if count > 0 {
			return nil
		}
		for _, name := range s.fixtures.Categories {
			if _, err := repos.CategoryRepo.SaveCategory(ctx, domain.Category{Name: name, Type: domain.CategoryTypeDefault}); err != nil {
				return fmt.Errorf("failed to seed category %q: %w", name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default categories")
		return 0, err
	}
	if created > 0 {
		s.LogInfo(ctx, "Default categories seeded", slog.Int("count", created))
	}
	return created, nil
}

// SeedSampleData inserts the sample ledger when no entries exist, creating
// any missing sample categories on the way.
func (s *seederService) SeedSampleData(ctx context.Context) (int, error) {
	created := 0
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		count, err := repos.TransactionRepo.CountTransactions(ctx)
		if err != nil {
			return fmt.Errorf("failed to count transactions: %w", err)
		}
		if count > 0 {
			return nil
		}

		ids := map[string]int64{}
		for _, sample := range s.fixtures.Transactions {
			id, ok := ids[sample.Category]
			if !ok {
				id, err = categoryIDByName(ctx, repos, sample.Category)
				if err != nil {
					return err
				}
				ids[sample.Category] = id
			}
			if _, err := repos.TransactionRepo.SaveTransaction(ctx, sample.Entry(id)); err != nil {
				return fmt.Errorf("failed to seed transaction %q: %w", sample.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed sample data")
		return 0, err
	}
	if created > 0 {
		s.LogInfo(ctx, "Sample transactions seeded", slog.Int("count", created))
	}
	return created, nil
}

func categoryIDByName(ctx context.Context, repos portsrepo.RepositoryProvider, name string) (int64, error) {
	existing, err := repos.CategoryRepo.FindCategoryByName(ctx, name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return 0, fmt.Errorf("failed to look up category %q: %w", name, err)
	}
	created, err := repos.CategoryRepo.SaveCategory(ctx, domain.Category{Name: name, Type: domain.CategoryTypeDefault})
	if err != nil {
		return 0, fmt.Errorf("failed to create category %q: %w", name, err)
	}
	return created.ID, nil
}
