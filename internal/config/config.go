// Package config loads CLI configuration from a YAML file with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults and environment variable names.
const (
	// DefaultTTLSeconds is the default entry TTL when neither config file
	// nor environment provides one.
	DefaultTTLSeconds = 250

	// EnvDir overrides the cache directory.
	EnvDir = "FILECACHE_DIR"

	// EnvTTLSeconds overrides the default TTL in seconds.
	EnvTTLSeconds = "FILECACHE_TTL_SECONDS"

	// EnvLogLevel overrides the log level.
	EnvLogLevel = "FILECACHE_LOG_LEVEL"
)

// CacheConfig configures the cache store.
type CacheConfig struct {
	// Directory is the cache directory path.
	Directory string `yaml:"directory"`

	// TTLSeconds is the default entry TTL in seconds.
	TTLSeconds int `yaml:"ttl_seconds"`
}

// LoggingConfig configures CLI logging.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level"`

	// Format is "console", "json", or "auto".
	Format string `yaml:"format"`
}

// Config is the root CLI configuration.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration: cache under the user's home
// directory, default TTL, info-level auto-format logging.
func Default() *Config {
	dir := ".filecache"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".filecache", "cache")
	}
	return &Config{
		Cache: CacheConfig{
			Directory:  dir,
			TTLSeconds: DefaultTTLSeconds,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// DefaultPath returns the default config file location
// (~/.filecache/config.yaml), or empty if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".filecache", "config.yaml")
}

// Load builds a Config from defaults, an optional YAML file, and
// environment overrides, in that order of precedence (later wins). A
// missing file at the default path is not an error; an explicitly given
// path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, unmarshalErr)
			}
		case os.IsNotExist(err) && !explicit:
			// Missing default config is fine — use built-ins.
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies FILECACHE_* environment overrides. Unparseable values
// are ignored rather than fatal, matching the rest of the soft-failure
// model.
func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvDir); dir != "" {
		c.Cache.Directory = dir
	}
	if ttlStr := os.Getenv(EnvTTLSeconds); ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil && ttl > 0 {
			c.Cache.TTLSeconds = ttl
		}
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}

// TTL returns the configured default TTL as a duration.
func (c *Config) TTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}
