package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Storage defines the interface for cache operations.
type Storage interface {
	// Get returns the raw JSON value stored under key, or ok=false on a
	// miss or an expired item.
	Get(ctx context.Context, key string) (json.RawMessage, bool)
	// Set stores value under key with the configured lifetime.
	Set(ctx context.Context, key string, value any) error
}

// New creates the cache storage selected by the configuration.
func New(cfg Config, logg *zap.Logger) (Storage, error) {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Second
	}

	switch cfg.Backend {
	case BackendRedis:
		return NewRedisStorage(cfg, ttl, logg)
	case BackendFile, "":
		return NewFileStorage(cfg.Path, ttl, logg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
