package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the address the server binds to. Empty means all interfaces
	// unless the bootstrap launcher resolved a concrete one.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"4000"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Reload enables reload/development mode.
	Reload bool `mapstructure:"reload" default:"false"`
	// MockMode makes the search endpoints serve fixture data instead of
	// calling YouTube/Spotify.
	MockMode bool `mapstructure:"mock_mode" default:"false"`
	// MockFile is the fixture file used in mock mode.
	MockFile string `mapstructure:"mock_file" default:"mock.json"`
	// RateRPS is the per-client request rate limit. Zero disables limiting.
	RateRPS float64 `mapstructure:"rate_rps" default:"0"`
	// RateBurst is the per-client burst size for the rate limiter.
	RateBurst int `mapstructure:"rate_burst" default:"0"`
}

// Addr returns the host:port endpoint the server listens on.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
