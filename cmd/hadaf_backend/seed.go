package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var seedSample bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default categories, and optionally sample transactions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := bootstrap(ctx, migrateIfConfigured)
		if err != nil {
			return err
		}
		defer a.close()

		n, err := a.services.Seeder.SeedDefaults(ctx)
		if err != nil {
			return fmt.Errorf("seed default categories: %w", err)
		}
		a.logger.Info("Default categories seeded", slog.Int("created", n))

		if seedSample {
			n, err := a.services.Seeder.SeedSampleData(ctx)
			if err != nil {
				return fmt.Errorf("seed sample data: %w", err)
			}
			a.logger.Info("Sample transactions seeded", slog.Int("created", n))
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedSample, "sample", false, "also insert sample transactions when the ledger is empty")
}
