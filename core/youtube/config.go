package youtube

// Config holds configuration for the YouTube client.
type Config struct {
	// APIBase is the YouTube endpoint used for search requests.
	// Overridable for testing.
	APIBase string `mapstructure:"api_base" default:"https://www.youtube.com"`
	// TimeoutSeconds is the HTTP timeout for search and stream setup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
