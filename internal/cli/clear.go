package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry from the cache",
		Long: "Remove every entry file from the cache directory. All " +
			"removals are attempted even if some fail.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := runtimeFrom(cmd)
			cache, err := rt.openCache()
			if err != nil {
				return err
			}

			ok, err := cache.Clear()
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("some entries could not be removed")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}
}
