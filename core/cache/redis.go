package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStorage is a redis-backed cache with TTL-native expiry.
type RedisStorage struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStorage connects to redis and verifies the connection with a ping.
func NewRedisStorage(cfg Config, ttl time.Duration, logg *zap.Logger) (*RedisStorage, error) {
	if logg == nil {
		logg = zap.NewNop()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStorage{rdb: rdb, ttl: ttl, logger: logg}, nil
}

// Get implements Storage.
func (s *RedisStorage) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("Redis get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Set implements Storage.
func (s *RedisStorage) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, s.ttl).Err()
}

// Close releases the underlying redis connection.
func (s *RedisStorage) Close() error {
	return s.rdb.Close()
}
