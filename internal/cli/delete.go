package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove the entry for a key",
		Long:  "Remove the entry for a key. Deleting an absent key succeeds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runtimeFrom(cmd)
			cache, err := rt.openCache()
			if err != nil {
				return err
			}

			ok, err := cache.Delete(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("delete failed")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}
}
