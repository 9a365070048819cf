package main

import (
	"fmt"

	"github.com/2beens/fitquest/internal/telemetry/metrics"
	"github.com/2beens/fitquest/internal/videos"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pruneVideosCmd = &cobra.Command{
	Use:   "prune-videos",
	Short: "Evict video cache entries not used within the cache TTL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, pool, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		// pruning never searches
		resolver := videos.NewResolver(videos.NewCacheRepo(pool), nil, cfg.VideoCacheTTL.Duration, metrics.NewTestManager())
		pruned, err := resolver.Prune(cmd.Context())
		if err != nil {
			return fmt.Errorf("prune video cache: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%d stale video cache entries removed\n", pruned)
		return nil
	},
}
