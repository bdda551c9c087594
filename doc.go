// Package filecache provides a file-persisted key/value cache with per-entry
// TTL expiration.
//
// Every entry is stored as a single file in a configured directory, named by
// the SHA-256 digest of its key. The first line of each file holds the
// absolute expiration timestamp (Unix seconds); the remainder is the
// codec-encoded payload. Expiration is lazy: an expired entry stays on disk
// until it is overwritten, pruned, or cleared, and only read paths treat it
// as absent.
//
// The package is organised into several files for clarity:
//
//	cache.go       – FileCache construction, key digests, path resolution
//	ops.go         – Get, Set, SetWithTTL, Delete, Clear, Has
//	bulk.go        – GetMultiple, SetMultiple, DeleteMultiple
//	codec.go       – pluggable payload codec (JSON default, YAML alternative)
//	format.go      – persisted on-disk format descriptor
//	maintenance.go – Prune, Len, Size housekeeping
//	options.go     – functional options
//	errors.go      – sentinel errors
//
// The cache performs no locking: concurrent processes sharing a directory may
// race, and callers needing isolation must provide it themselves.
package filecache
