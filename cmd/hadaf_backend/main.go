// @title Hadaf Accounting API
// @version 1.0
// @description Bookkeeping backend: categories, ledger entries and recurring templates.
// @BasePath /api
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hadaf",
	Short: "Hadaf bookkeeping backend",
	Long: `hadaf serves the bookkeeping REST API and offers maintenance commands
for migrations, seeding and inspecting due recurring transactions.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, dueCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
