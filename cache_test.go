package filecache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		c, err := New(dir)
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(c.Directory()))
		assert.Equal(t, DefaultTTL, c.DefaultTTLValue())
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, ErrNotDirectory)
	})

	t.Run("path is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		_, err := New(path)
		assert.ErrorIs(t, err, ErrNotDirectory)
	})

	t.Run("options applied", func(t *testing.T) {
		c, err := New(t.TempDir(), WithDefaultTTL(5*time.Second), WithExtension(".bin"))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, c.DefaultTTLValue())
		assert.Equal(t, ".bin", c.ext)
	})
}

func TestGetSetRoundTrip(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name  string
		key   string
		value any
		want  any
	}{
		{"string", "greeting", "hello", "hello"},
		{"number", "answer", 42, float64(42)},
		{"bool false", "flag", false, false},
		{"nil", "nothing", nil, nil},
		{"map", "obj", map[string]any{"a": "b"}, map[string]any{"a": "b"}},
		{"slice", "list", []any{"x", "y"}, []any{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, setErr := c.Set(tt.key, tt.value)
			require.NoError(t, setErr)
			assert.True(t, ok)

			got, getErr := c.Get(tt.key, "default")
			require.NoError(t, getErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetMissingReturnsDefault(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	got, err := c.Get("never-set", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	got, err = c.Get("never-set", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExpiration(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c, err := New(t.TempDir(), WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	ok, err := c.SetWithTTL("k", "v", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := c.Get("k", "default")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	t.Run("expired entry degrades to default", func(t *testing.T) {
		now = now.Add(2 * time.Second)
		got, getErr := c.Get("k", "default")
		require.NoError(t, getErr)
		assert.Equal(t, "default", got)
	})

	t.Run("expired entry stays on disk", func(t *testing.T) {
		ok, hasErr := c.Has("k")
		require.NoError(t, hasErr)
		assert.True(t, ok, "lazy expiration must not delete the file")
	})
}

func TestSetZeroTTLDeletes(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = c.Set("k", "v")
	require.NoError(t, err)

	ok, err := c.SetWithTTL("k", "ignored", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	has, err := c.Has("k")
	require.NoError(t, err)
	assert.False(t, has)

	t.Run("zero ttl on absent key succeeds", func(t *testing.T) {
		ok, setErr := c.SetWithTTL("ghost", "v", 0)
		require.NoError(t, setErr)
		assert.True(t, ok)
	})
}

func TestSetNegativeTTL(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = c.SetWithTTL("k", "v", -time.Second)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDelete(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	t.Run("absent key is a successful no-op", func(t *testing.T) {
		ok, delErr := c.Delete("missing")
		require.NoError(t, delErr)
		assert.True(t, ok)
	})

	t.Run("present key", func(t *testing.T) {
		_, setErr := c.Set("k", "v")
		require.NoError(t, setErr)

		ok, delErr := c.Delete("k")
		require.NoError(t, delErr)
		assert.True(t, ok)

		got, getErr := c.Get("k", "default")
		require.NoError(t, getErr)
		assert.Equal(t, "default", got)
	})
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	c, err := New(dir)
	require.NoError(t, err)

	keys := []string{"a", "b", "c"}
	for _, k := range keys {
		_, setErr := c.Set(k, k)
		require.NoError(t, setErr)
	}

	// A foreign file in the directory must survive Clear.
	foreign := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(foreign, []byte("keep me"), 0600))

	ok, err := c.Clear()
	require.NoError(t, err)
	assert.True(t, ok)

	for _, k := range keys {
		has, hasErr := c.Has(k)
		require.NoError(t, hasErr)
		assert.False(t, has, "key %q should be gone after Clear", k)
	}

	assert.FileExists(t, foreign)
	assert.FileExists(t, filepath.Join(dir, formatFileName),
		"Clear must not remove the format descriptor")
}

func TestHas(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	has, err := c.Has("k")
	require.NoError(t, err)
	assert.False(t, has)

	_, err = c.Set("k", "v")
	require.NoError(t, err)

	has, err = c.Has("k")
	require.NoError(t, err)
	assert.True(t, has)
}

func TestInvalidKeys(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	badKeys := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"invalid utf8", string([]byte{0xff, 0xfe})},
	}

	for _, tt := range badKeys {
		t.Run(tt.name, func(t *testing.T) {
			_, getErr := c.Get(tt.key, nil)
			assert.ErrorIs(t, getErr, ErrInvalidKey)

			_, setErr := c.Set(tt.key, "v")
			assert.ErrorIs(t, setErr, ErrInvalidKey)

			_, delErr := c.Delete(tt.key)
			assert.ErrorIs(t, delErr, ErrInvalidKey)

			_, hasErr := c.Has(tt.key)
			assert.ErrorIs(t, hasErr, ErrInvalidKey)
		})
	}
}

func TestCorruptRecords(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	digest, err := c.normalize("k")
	require.NoError(t, err)
	path := c.pathFor(digest)

	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty file", nil},
		{"no newline", []byte("9999999999")},
		{"non-numeric header", []byte("soon\n\"v\"")},
		{"malformed payload", []byte("9999999999\n{not json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(path, tt.raw, 0600))

			got, getErr := c.Get("k", "default")
			require.NoError(t, getErr, "corrupt records must degrade, not fail")
			assert.Equal(t, "default", got)
		})
	}

	t.Run("falsy payload is not corruption", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("9999999999\nfalse"), 0600))

		got, getErr := c.Get("k", "default")
		require.NoError(t, getErr)
		assert.Equal(t, false, got)
	})
}

func TestKeyDigests(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)

	d1, err := c.normalize("some key")
	require.NoError(t, err)
	d2, err := c.normalize("some key")
	require.NoError(t, err)
	d3, err := c.normalize("some other key")
	require.NoError(t, err)

	assert.Equal(t, d1, d2, "digests must be deterministic")
	assert.NotEqual(t, d1, d3)
	assert.Len(t, d1, 64)
	assert.Regexp(t, "^[0-9a-f]+$", d1, "digests must be filesystem-safe hex")

	t.Run("hostile keys stay inside the directory", func(t *testing.T) {
		d, normErr := c.normalize("../../etc/passwd")
		require.NoError(t, normErr)
		assert.Equal(t, c.dir, filepath.Dir(c.pathFor(d)))
	})
}

// TestScenario walks the documented end-to-end sequence over a fresh
// directory with the stock 250 second TTL.
func TestScenario(t *testing.T) {
	c, err := New(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 250*time.Second, c.DefaultTTLValue())

	ok, err := c.Set("a", "hello")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := c.Get("a", "x")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	has, err := c.Has("a")
	require.NoError(t, err)
	assert.True(t, has)

	ok, err = c.Delete("a")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = c.Get("a", "x")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}
