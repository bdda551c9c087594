package filecache

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a FileCache during construction.
type Option func(*FileCache)

// WithDefaultTTL overrides the TTL applied by Set. Non-positive values are
// ignored and the package default is kept.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *FileCache) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

// WithCodec replaces the payload codec. The codec becomes part of the
// on-disk format: entries written with one codec are not readable with
// another.
func WithCodec(codec Codec) Option {
	return func(c *FileCache) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithClock replaces the time source used to stamp and expire entries.
// Intended for tests.
func WithClock(clock Clock) Option {
	return func(c *FileCache) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger attaches a zerolog logger. The cache logs hits, misses and
// expirations at debug level and soft I/O failures at warn level. By
// default logging is disabled.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *FileCache) {
		c.logger = logger
	}
}

// WithExtension overrides the entry filename extension. The value must
// include the leading dot; empty values are ignored.
func WithExtension(ext string) Option {
	return func(c *FileCache) {
		if ext != "" {
			c.ext = ext
		}
	}
}
