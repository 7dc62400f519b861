package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
)

var dueAsOf string

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Print active recurring transactions due on or before a date as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		asOf := domain.Today()
		if dueAsOf != "" {
			d, err := domain.ParseDate(dueAsOf)
			if err != nil {
				return fmt.Errorf("--as-of: %w", err)
			}
			asOf = d
		}

		logWriter = cmd.ErrOrStderr()
		ctx := cmd.Context()
		a, err := bootstrap(ctx, migrateNever)
		if err != nil {
			return err
		}
		defer a.close()

		templates, err := a.services.Reporting.DueTemplates(ctx, asOf)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.ToRecurringResponses(templates))
	},
}

func init() {
	dueCmd.Flags().StringVar(&dueAsOf, "as-of", "", "reference date (YYYY-MM-DD), defaults to today")
}
