package filecache

import "errors"

// Common cache errors.
var (
	// ErrInvalidKey is returned when a key is empty or not valid UTF-8.
	ErrInvalidKey = errors.New("cache key must be a non-empty UTF-8 string")

	// ErrInvalidArgument is returned when a TTL or bulk-operation argument
	// is unusable, before any per-item work is attempted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotDirectory is returned by New when the cache path does not
	// exist or is not a directory.
	ErrNotDirectory = errors.New("cache path is not a directory")

	// ErrDirNotWritable is returned by New when the cache directory cannot
	// be written to.
	ErrDirNotWritable = errors.New("cache directory is not writable")

	// ErrFormatMismatch is returned by New when the directory was written
	// by an incompatible on-disk format or digest algorithm.
	ErrFormatMismatch = errors.New("incompatible cache format")
)
