// Package config provides configuration management for the Music Downloader.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file, and the Docker secrets file /run/secrets/app_secrets.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (bind endpoint, API key, mock mode, rate limits)
//   - Spotify: Spotify API endpoints and credentials
//   - YouTube: YouTube client settings
//   - Media: ffmpeg path for MP3 transcoding
//   - Cache: cache backend (file or redis), TTL, file path
//   - Log: Logging level, format, and optional log file
//
// Environment variables map to nested keys with an underscore replacer,
// e.g. SERVER_PORT -> server.port, SPOTIFY_CLIENT_ID -> spotify.client_id.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
