package cache_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"music-downloader/core/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFileStorage(t *testing.T, ttl time.Duration) *cache.FileStorage {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.json")
	return cache.NewFileStorage(path, ttl, zap.NewNop())
}

func TestFileStorage_SetGet(t *testing.T) {
	s := newFileStorage(t, 10*time.Second)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "key", map[string]string{"hello": "world"}))

	raw, ok := s.Get(ctx, "key")
	require.True(t, ok)

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "world", got["hello"])
}

func TestFileStorage_Miss(t *testing.T) {
	s := newFileStorage(t, 10*time.Second)

	_, ok := s.Get(context.Background(), "missing")
	assert.False(t, ok)
}

func TestFileStorage_Expiry(t *testing.T) {
	s := newFileStorage(t, -time.Second) // already expired on write
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "key", "value"))

	_, ok := s.Get(ctx, "key")
	assert.False(t, ok)
}

func TestFileStorage_SurvivesProcessRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	ctx := context.Background()

	first := cache.NewFileStorage(path, time.Minute, zap.NewNop())
	require.NoError(t, first.Set(ctx, "key", "persisted"))

	// A fresh instance has an empty memory tier and must hit the file.
	second := cache.NewFileStorage(path, time.Minute, zap.NewNop())
	raw, ok := second.Get(ctx, "key")
	require.True(t, ok)

	var got string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "persisted", got)
}

func TestFileStorage_CorruptFileRecreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	ctx := context.Background()

	s := cache.NewFileStorage(path, time.Minute, zap.NewNop())

	_, ok := s.Get(ctx, "key")
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "key", "value"))
	_, ok = s.Get(ctx, "key")
	assert.True(t, ok)
}
