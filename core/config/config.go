package config

import (
	"os"
	"reflect"
	"strings"

	"music-downloader/core/cache"
	"music-downloader/core/logger"
	"music-downloader/core/media"
	"music-downloader/core/server"
	"music-downloader/core/spotify"
	"music-downloader/core/youtube"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// secretsFile is loaded on top of the environment when present (Docker secrets).
const secretsFile = "/run/secrets/app_secrets"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Spotify holds configuration for the Spotify metadata client.
	Spotify spotify.Config `mapstructure:"spotify"`
	// YouTube holds configuration for the YouTube search/download client.
	YouTube youtube.Config `mapstructure:"youtube"`
	// Media holds configuration for the transcoding toolchain.
	Media media.Config `mapstructure:"media"`
	// Cache holds configuration for the cache storage.
	Cache cache.Config `mapstructure:"cache"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	// Docker secrets win over both the environment and .env
	if _, err := os.Stat(secretsFile); err == nil {
		_ = godotenv.Overload(secretsFile)
	}

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
