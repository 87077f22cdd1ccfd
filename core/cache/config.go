package cache

// Config holds configuration for the cache storage.
type Config struct {
	// Backend selects the cache implementation (file, redis).
	Backend string `mapstructure:"backend" default:"file"`
	// Path is the cache file location for the file backend.
	Path string `mapstructure:"path" default:"cache.json"`
	// TTLSeconds is the lifetime of a cached item.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"10"`
	// RedisAddr is the redis endpoint for the redis backend.
	RedisAddr string `mapstructure:"redis_addr" default:"localhost:6379"`
	// RedisPassword is the redis password.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB is the redis database number.
	RedisDB int `mapstructure:"redis_db" default:"0"`
}

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)
