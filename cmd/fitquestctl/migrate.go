package main

import (
	"fmt"

	"github.com/2beens/fitquest/internal/db"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the database schema. Every statement is idempotent, so running
it against an up to date database changes nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, pool, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.Migrate(cmd.Context(), pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "schema applied to %s\n", cfg.PostgresDB)
		return nil
	},
}
