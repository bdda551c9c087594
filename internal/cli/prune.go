package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete expired entries",
		Long: "Delete every expired entry file. Live entries and files the " +
			"cache does not own are left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := runtimeFrom(cmd)
			cache, err := rt.openCache()
			if err != nil {
				return err
			}

			removed, err := cache.Prune()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired entries\n", removed)
			return err
		},
	}
}
