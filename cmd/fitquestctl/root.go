package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/fitquest/internal/config"
	"github.com/2beens/fitquest/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "fitquestctl",
	Short: "Operator tool for the fitquest backend",
	Long: `fitquestctl runs maintenance tasks against the fitquest stores.

EXAMPLES:

  $ fitquestctl migrate --env production
  $ fitquestctl schedule --weekdays mon,wed,fri --weeks 4
  $ fitquestctl prune-videos
  $ fitquestctl admin-token

Database password is read from FITQUEST_DB_PASS.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "./config.toml", "path for the TOML config file")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(pruneVideosCmd)
	rootCmd.AddCommand(adminTokenCmd)
}

// openDB connects with the service's config; the caller closes the pool.
func openDB(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load(envFlag, configFlag)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDB,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITQUEST_DB_PASS"),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping db: %w", err)
	}
	return cfg, pool, nil
}
