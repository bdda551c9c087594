package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/filekv/filecache"
	"github.com/filekv/filecache/internal/config"
	"github.com/filekv/filecache/internal/logging"
)

// ctxKey keys the per-invocation runtime in the command context.
type ctxKey struct{}

// cliRuntime carries the resolved configuration and logger for one CLI
// invocation.
type cliRuntime struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// setup loads configuration, applies flag overrides, builds the logger, and
// stores the resulting runtime in the command context. Called from the root
// command's PersistentPreRunE.
func setup(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.Cache.Directory = dir
	}
	if ttl, _ := cmd.Flags().GetInt("ttl"); ttl > 0 {
		cfg.Cache.TTLSeconds = ttl
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = logging.FormatConsole
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Out:    cmd.ErrOrStderr(),
	})
	// Tag every line of this invocation so interleaved runs sharing a log
	// destination stay distinguishable.
	logger = logger.With().Str("run_id", ulid.Make().String()).Logger()
	logger = logging.ComponentLogger(logger, "cli")

	rt := &cliRuntime{cfg: cfg, logger: logger}
	cmd.SetContext(context.WithValue(cmd.Context(), ctxKey{}, rt))

	logger.Debug().Str("command", cmd.Name()).Str("dir", cfg.Cache.Directory).Msg("command started")
	return nil
}

// runtimeFrom retrieves the runtime stored by setup.
func runtimeFrom(cmd *cobra.Command) *cliRuntime {
	rt, _ := cmd.Context().Value(ctxKey{}).(*cliRuntime)
	if rt == nil {
		// Subcommand executed outside the root command, e.g. in a test.
		return &cliRuntime{cfg: config.Default(), logger: zerolog.Nop()}
	}
	return rt
}

// openCache creates the cache directory if needed and opens a FileCache
// over it.
func (rt *cliRuntime) openCache() (*filecache.FileCache, error) {
	dir := rt.cfg.Cache.Directory
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}

	return filecache.New(dir,
		filecache.WithDefaultTTL(rt.cfg.TTL()),
		filecache.WithLogger(logging.ComponentLogger(rt.logger, "cache")),
	)
}
