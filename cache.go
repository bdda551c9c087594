package filecache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

const (
	// DefaultTTL is the entry lifetime used when the caller does not
	// provide one.
	DefaultTTL = 250 * time.Second

	// DefaultExtension is the filename extension for cache entry files.
	DefaultExtension = ".cache"
)

// Clock returns the current time. Entries are stamped and expired against
// the same clock, stored as Unix seconds.
type Clock func() time.Time

// FileCache maps string keys to codec-encoded values stored as individual
// files in a directory. All operations are stateless single-attempt
// filesystem calls; nothing is held in memory between calls.
type FileCache struct {
	dir        string
	defaultTTL time.Duration
	ext        string
	codec      Codec
	clock      Clock
	logger     zerolog.Logger
}

// New creates a FileCache over dir, which must already exist, be a
// directory, and be writable. The directory path is resolved to its
// absolute form. A format descriptor is written into the directory on
// first use and verified on subsequent opens.
func New(dir string, opts ...Option) (*FileCache, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving cache directory %q: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	// Probe writability up front so misconfiguration fails at construction
	// rather than as silent soft failures on every Set.
	probe, err := os.CreateTemp(abs, ".writable-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirNotWritable, abs, err)
	}
	probeName := probe.Name()
	_ = probe.Close()
	_ = os.Remove(probeName)

	c := &FileCache{
		dir:        abs,
		defaultTTL: DefaultTTL,
		ext:        DefaultExtension,
		codec:      JSONCodec{},
		clock:      time.Now,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := verifyOrWriteFormat(abs); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("dir", c.dir).
		Dur("default_ttl", c.defaultTTL).
		Msg("cache opened")

	return c, nil
}

// Directory returns the absolute cache directory path.
func (c *FileCache) Directory() string {
	return c.dir
}

// DefaultTTLValue returns the TTL applied by Set.
func (c *FileCache) DefaultTTLValue() time.Duration {
	return c.defaultTTL
}

// normalize validates key and returns its fixed-length hex digest, used as
// the filename stem. Digests are deterministic, filesystem-safe, and wide
// enough that distinct keys do not collide in practice.
func (c *FileCache) normalize(key string) (string, error) {
	if key == "" || !utf8.ValidString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:]), nil
}

// pathFor resolves a digest to its entry file path.
func (c *FileCache) pathFor(digest string) string {
	return filepath.Join(c.dir, digest+c.ext)
}
