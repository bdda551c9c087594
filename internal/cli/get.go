package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Read the value stored under a key",
		Long: "Read the value stored under a key. Missing, expired, and " +
			"unreadable entries print the default value instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runtimeFrom(cmd)
			cache, err := rt.openCache()
			if err != nil {
				return err
			}

			value, err := cache.Get(args[0], defaultValue)
			if err != nil {
				return err
			}

			return printValue(cmd, value)
		},
	}

	cmd.Flags().StringVar(&defaultValue, "default", "", "value to print when the entry is absent")
	return cmd
}

// printValue writes a cache value to the command's stdout. Strings print
// as-is; anything structured prints as JSON.
func printValue(cmd *cobra.Command, value any) error {
	if s, ok := value.(string); ok {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("rendering value: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
