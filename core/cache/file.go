package cache

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// item is a cached value with its expiry unix timestamp.
type item struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt int64           `json:"expiresAt"`
}

func (it item) expired(now time.Time) bool {
	return now.Unix() > it.ExpiresAt
}

// FileStorage is a two-tier cache: an in-process map in front of a JSON
// cache file shared between processes.
type FileStorage struct {
	path   string
	ttl    time.Duration
	logger *zap.Logger
	flk    *flock.Flock

	mu  sync.RWMutex
	mem map[string]item
}

// NewFileStorage creates a file-backed cache. The file is created lazily on
// the first write.
func NewFileStorage(path string, ttl time.Duration, logg *zap.Logger) *FileStorage {
	if logg == nil {
		logg = zap.NewNop()
	}
	return &FileStorage{
		path:   path,
		ttl:    ttl,
		logger: logg,
		flk:    flock.New(path + ".lock"),
		mem:    map[string]item{},
	}
}

// Get implements Storage. The memory tier is consulted first; on a miss the
// cache file is read.
func (s *FileStorage) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	now := time.Now()

	s.mu.RLock()
	it, ok := s.mem[key]
	s.mu.RUnlock()
	if ok && !it.expired(now) {
		return it.Value, true
	}

	it, ok = s.readFileItem(key)
	if !ok || it.expired(now) {
		return nil, false
	}

	s.mu.Lock()
	s.mem[key] = it
	s.mu.Unlock()
	return it.Value, true
}

// Set implements Storage. The cache file is rewritten under an advisory
// lock; a missing or corrupt file is recreated.
func (s *FileStorage) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	it := item{Value: raw, ExpiresAt: time.Now().Add(s.ttl).Unix()}

	if err := s.flk.Lock(); err != nil {
		s.logger.Debug("Cache file lock failed", zap.Error(err))
	} else {
		defer func() { _ = s.flk.Unlock() }()
	}

	entries := s.loadFile()
	entries[key] = it
	if err := s.writeFile(entries); err != nil {
		s.logger.Debug("Cache file write failed", zap.String("path", s.path), zap.Error(err))
	}

	s.mu.Lock()
	s.mem[key] = it
	s.mu.Unlock()
	return nil
}

func (s *FileStorage) readFileItem(key string) (item, bool) {
	if err := s.flk.RLock(); err == nil {
		defer func() { _ = s.flk.Unlock() }()
	}
	entries := s.loadFile()
	it, ok := entries[key]
	return it, ok
}

// loadFile returns the file contents, or an empty map when the file is
// missing or corrupt.
func (s *FileStorage) loadFile() map[string]item {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Debug("Cache file not loaded", zap.String("path", s.path), zap.Error(err))
		return map[string]item{}
	}
	var entries map[string]item
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Debug("Cache file corrupt, recreating", zap.String("path", s.path), zap.Error(err))
		return map[string]item{}
	}
	return entries
}

func (s *FileStorage) writeFile(entries map[string]item) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
