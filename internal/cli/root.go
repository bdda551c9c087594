// Package cli implements the filecache command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command for the filecache CLI. It wires
// up configuration loading, logging, and the cache subcommands.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "filecache",
		Short:         "File-persisted key/value cache",
		Long:          "filecache stores key/value pairs as individual files with per-entry TTL expiration.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ttl, _ := cmd.Flags().GetInt("ttl")
			if ttl < 0 {
				return fmt.Errorf("ttl must be >= 0, got %d", ttl)
			}
			return setup(cmd)
		},
	}

	cmd.PersistentFlags().String("dir", "", "cache directory (overrides config file and env)")
	cmd.PersistentFlags().Int("ttl", 0, "default TTL in seconds (0 = use config default)")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.filecache/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		newGetCmd(),
		newSetCmd(),
		newDeleteCmd(),
		newClearCmd(),
		newHasCmd(),
		newPruneCmd(),
		newStatsCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Store a value for 10 minutes
  filecache set greeting hello --dir /tmp/cache --ttl 600

  # Read it back, falling back to a default
  filecache get greeting --default "(unset)" --dir /tmp/cache

  # Check existence without reading
  filecache has greeting --dir /tmp/cache

  # Remove expired entries and show stats
  filecache prune --dir /tmp/cache
  filecache stats --dir /tmp/cache`
