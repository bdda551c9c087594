package filecache

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Prune deletes every expired entry file and returns how many were removed.
// Entries that cannot be read or parsed are skipped, not deleted: Prune
// reclaims space, it does not adjudicate corrupt records.
func (c *FileCache) Prune() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("reading cache directory: %w", err)
	}

	now := c.clock().Unix()
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == formatFileName || filepath.Ext(entry.Name()) != c.ext {
			continue
		}
		path := filepath.Join(c.dir, entry.Name())
		expiry, readErr := readExpiry(path)
		if readErr != nil {
			continue
		}
		if expiry < now {
			if os.Remove(path) == nil {
				removed++
			}
		}
	}

	c.logger.Debug().Int("removed", removed).Msg("cache pruned")
	return removed, nil
}

// Len returns the number of entry files, including expired ones.
func (c *FileCache) Len() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("reading cache directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() != formatFileName && filepath.Ext(entry.Name()) == c.ext {
			count++
		}
	}
	return count, nil
}

// Size returns the total size of all entry files in bytes.
func (c *FileCache) Size() (int64, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("reading cache directory: %w", err)
	}

	var total int64
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == formatFileName || filepath.Ext(entry.Name()) != c.ext {
			continue
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}

// readExpiry reads the first-line expiry timestamp of an entry file.
func readExpiry(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	header, err := bufio.NewReader(f).ReadString('\n')
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSuffix(header, "\n"), 10, 64)
}
