package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show entry count and total size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := runtimeFrom(cmd)
			cache, err := rt.openCache()
			if err != nil {
				return err
			}

			count, err := cache.Len()
			if err != nil {
				return err
			}
			size, err := cache.Size()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "directory: %s\n", cache.Directory()); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "entries:   %d\n", count); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "size:      %d bytes\n", size)
			return err
		},
	}
}
