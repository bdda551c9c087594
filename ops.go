package filecache

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Get returns the value stored under key, or def when the entry is missing,
// expired, or unreadable. Expired entries are not deleted here — expiration
// is lazy and read-only (see Prune for reclamation). The only hard error is
// an invalid key.
func (c *FileCache) Get(key string, def any) (any, error) {
	digest, err := c.normalize(key)
	if err != nil {
		return nil, err
	}
	path := c.pathFor(digest)

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache entry unreadable")
		}
		return def, nil
	}
	defer f.Close()

	r := bufio.NewReader(f)
	header, err := r.ReadString('\n')
	if err != nil {
		// Includes truncated files with no newline at all.
		c.logger.Warn().Err(err).Str("key", key).Msg("corrupt cache record header")
		return def, nil
	}
	expiry, err := strconv.ParseInt(strings.TrimSuffix(header, "\n"), 10, 64)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("corrupt cache record header")
		return def, nil
	}

	if expiry < c.clock().Unix() {
		c.logger.Debug().Str("key", key).Int64("expired_at", expiry).Msg("cache entry expired")
		return def, nil
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache payload unreadable")
		return def, nil
	}
	v, err := c.codec.Decode(payload)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("malformed cache payload")
		return def, nil
	}

	c.logger.Debug().Str("key", key).Msg("cache hit")
	return v, nil
}

// Set stores value under key with the cache's default TTL.
func (c *FileCache) Set(key string, value any) (bool, error) {
	return c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key, expiring ttl from now. A ttl of zero
// is an eviction request: the entry is deleted instead of written. Negative
// ttl fails with ErrInvalidArgument. The entry file is created or truncated
// in place; the return value reports whether at least one byte was written.
// I/O failures degrade to a false return rather than an error.
func (c *FileCache) SetWithTTL(key string, value any, ttl time.Duration) (bool, error) {
	digest, err := c.normalize(key)
	if err != nil {
		return false, err
	}
	if ttl < 0 {
		return false, fmt.Errorf("%w: negative ttl %s", ErrInvalidArgument, ttl)
	}
	if ttl == 0 {
		return c.removeEntry(digest), nil
	}

	payload, err := c.codec.Encode(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache payload not encodable")
		return false, nil
	}

	expiresAt := c.clock().Add(ttl).Unix()

	f, err := os.OpenFile(c.pathFor(digest), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache entry not writable")
		return false, nil
	}

	written, err := fmt.Fprintf(f, "%d\n", expiresAt)
	if err == nil {
		var n int
		n, err = f.Write(payload)
		written += n
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache entry write failed")
		return false, nil
	}

	c.logger.Debug().Str("key", key).Int64("expires_at", expiresAt).Msg("cache entry written")
	return written > 0, nil
}

// Delete removes the entry for key. Deleting an absent key is a successful
// no-op. The only hard error is an invalid key.
func (c *FileCache) Delete(key string) (bool, error) {
	digest, err := c.normalize(key)
	if err != nil {
		return false, err
	}
	return c.removeEntry(digest), nil
}

func (c *FileCache) removeEntry(digest string) bool {
	err := os.Remove(c.pathFor(digest))
	if err != nil && !os.IsNotExist(err) {
		c.logger.Warn().Err(err).Str("digest", digest).Msg("cache entry removal failed")
		return false
	}
	return true
}

// Clear deletes every entry file in the cache directory. Files without the
// entry extension (including the format descriptor) are left untouched.
// All deletions are attempted; the result is the logical AND of their
// outcomes, with no short-circuit.
func (c *FileCache) Clear() (bool, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return false, fmt.Errorf("reading cache directory: %w", err)
	}

	ok := true
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == formatFileName || filepath.Ext(entry.Name()) != c.ext {
			continue
		}
		path := filepath.Join(c.dir, entry.Name())
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			c.logger.Warn().Err(removeErr).Str("file", entry.Name()).Msg("cache clear: removal failed")
			ok = false
		}
	}
	return ok, nil
}

// Has reports whether a regular file exists for key. It deliberately does
// not check expiry: an expired-but-present entry still reports true. Use it
// for pre-warming checks only, never for correctness-critical branching —
// Get is the authoritative read.
func (c *FileCache) Has(key string) (bool, error) {
	digest, err := c.normalize(key)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(c.pathFor(digest))
	if err != nil {
		return false, nil
	}
	return info.Mode().IsRegular(), nil
}
