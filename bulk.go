package filecache

import (
	"fmt"
	"time"
)

// GetMultiple resolves every key through the single-key Get rules and
// returns a map holding one entry per distinct input key. Duplicate keys
// collapse to the same computed value. A nil slice fails with
// ErrInvalidArgument before any lookup is attempted.
func (c *FileCache) GetMultiple(keys []string, def any) (map[string]any, error) {
	if keys == nil {
		return nil, fmt.Errorf("%w: nil key slice", ErrInvalidArgument)
	}

	out := make(map[string]any, len(keys))
	for _, key := range keys {
		v, err := c.Get(key, def)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// SetMultiple stores every pair with the cache's default TTL. See
// SetMultipleWithTTL.
func (c *FileCache) SetMultiple(entries map[string]any) (bool, error) {
	return c.SetMultipleWithTTL(entries, c.defaultTTL)
}

// SetMultipleWithTTL stores every pair with the same ttl. Every pair is
// attempted regardless of earlier failures; the result is the logical AND
// of the individual outcomes. A nil map fails with ErrInvalidArgument
// before any write is attempted; an invalid key or ttl aborts with its
// error.
func (c *FileCache) SetMultipleWithTTL(entries map[string]any, ttl time.Duration) (bool, error) {
	if entries == nil {
		return false, fmt.Errorf("%w: nil entry map", ErrInvalidArgument)
	}

	ok := true
	for key, value := range entries {
		stored, err := c.SetWithTTL(key, value, ttl)
		if err != nil {
			return false, err
		}
		ok = ok && stored
	}
	return ok, nil
}

// DeleteMultiple deletes every key, attempting all of them, and returns the
// logical AND of the individual outcomes. A nil slice fails with
// ErrInvalidArgument before any deletion is attempted.
func (c *FileCache) DeleteMultiple(keys []string) (bool, error) {
	if keys == nil {
		return false, fmt.Errorf("%w: nil key slice", ErrInvalidArgument)
	}

	ok := true
	for _, key := range keys {
		deleted, err := c.Delete(key)
		if err != nil {
			return false, err
		}
		ok = ok && deleted
	}
	return ok, nil
}
