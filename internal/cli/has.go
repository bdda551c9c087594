package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has <key>",
		Short: "Check whether an entry file exists for a key",
		Long: "Check whether an entry file exists for a key. This is an " +
			"existence check only — an expired entry still reports true.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runtimeFrom(cmd)
			cache, err := rt.openCache()
			if err != nil {
				return err
			}

			ok, err := cache.Has(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ok)
			return err
		},
	}
}
