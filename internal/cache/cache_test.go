package cache

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, c *Cache, entry Entry) {
	t.Helper()
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(c.path(entry.Key), data, 0o644))
}

func TestKey_StableAndDistinct(t *testing.T) {
	a := Key([]byte("payload-a"))
	assert.Equal(t, a, Key([]byte("payload-a")))
	assert.NotEqual(t, a, Key([]byte("payload-b")))
	assert.Len(t, a, 64)
}

func TestPutGet(t *testing.T) {
	c, err := New(true, t.TempDir(), 3600)
	require.NoError(t, err)

	key := Key([]byte("some payload"))
	require.NoError(t, c.Put(key, `{"summary":"ok"}`))

	got, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, `{"summary":"ok"}`, got)
}

func TestGet_Miss(t *testing.T) {
	c, err := New(true, t.TempDir(), 3600)
	require.NoError(t, err)

	_, ok := c.Get(Key([]byte("never stored")))
	assert.False(t, ok)
}

func TestGet_ExpiredEntryRemoved(t *testing.T) {
	dir := t.TempDir()
	c, err := New(true, dir, 1)
	require.NoError(t, err)

	key := Key([]byte("p"))
	require.NoError(t, c.Put(key, "resp"))

	// Age the entry past its TTL by rewriting its timestamp.
	entry := Entry{Key: key, Response: "resp", CreatedAt: time.Now().Add(-time.Hour), TTL: 1}
	writeEntry(t, c, entry)

	_, ok := c.Get(key)
	assert.False(t, ok)

	count, _, err := c.Stats()
	require.NoError(t, err)
	assert.Zero(t, count, "expired entry should be deleted on read")
}

func TestDisabledCacheIsInert(t *testing.T) {
	c, err := New(false, "", 0)
	require.NoError(t, err)

	require.NoError(t, c.Put("k", "v"))
	_, ok := c.Get("k")
	assert.False(t, ok)
	require.NoError(t, c.Clear())
}

func TestClearAndStats(t *testing.T) {
	c, err := New(true, t.TempDir(), 3600)
	require.NoError(t, err)

	require.NoError(t, c.Put(Key([]byte("a")), "ra"))
	require.NoError(t, c.Put(Key([]byte("b")), "rb"))

	count, bytes, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Positive(t, bytes)

	require.NoError(t, c.Clear())
	count, _, err = c.Stats()
	require.NoError(t, err)
	assert.Zero(t, count)
}
