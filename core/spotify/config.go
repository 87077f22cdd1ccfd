package spotify

// Config holds configuration for the Spotify metadata client.
type Config struct {
	// SearchURL is the Spotify track search endpoint.
	SearchURL string `mapstructure:"search_url" default:"https://api.spotify.com/v1/search"`
	// TokenURL is the Spotify client-credentials token endpoint.
	TokenURL string `mapstructure:"token_url" default:"https://accounts.spotify.com/api/token"`
	// ClientID is the Spotify application client id.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the Spotify application client secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// TimeoutSeconds is the HTTP timeout for Spotify requests.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
