package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	var asJSON bool
	var entryTTL int

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Store a value under a key",
		Long: "Store a value under a key. The value is stored as a string " +
			"unless --json is given, in which case it is parsed first. " +
			"--entry-ttl 0 deletes the key instead of writing it.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := runtimeFrom(cmd)
			cache, err := rt.openCache()
			if err != nil {
				return err
			}

			var value any = args[1]
			if asJSON {
				if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
					return fmt.Errorf("parsing value as JSON: %w", err)
				}
			}

			var ok bool
			if cmd.Flags().Changed("entry-ttl") {
				ok, err = cache.SetWithTTL(args[0], value, time.Duration(entryTTL)*time.Second)
			} else {
				ok, err = cache.Set(args[0], value)
			}
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("set failed")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "parse the value as JSON before storing")
	cmd.Flags().IntVar(&entryTTL, "entry-ttl", 0, "TTL in seconds for this entry only (0 = delete the key)")
	return cmd
}
