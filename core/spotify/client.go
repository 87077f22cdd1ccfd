package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"music-downloader/core/cache"

	"go.uber.org/zap"
)

const tokenCacheKey = "spotify_api_token"

// Client talks to the Spotify Web API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      cache.Storage
	logger     *zap.Logger
}

// NewClient creates a Spotify client based on the configuration.
func NewClient(cfg Config, store cache.Storage, logg *zap.Logger) *Client {
	if logg == nil {
		logg = zap.NewNop()
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Transport: transport, Timeout: timeoutDuration},
		cache:      store,
		logger:     logg,
	}
}

// token returns a valid access token, from cache when possible.
func (c *Client) token(ctx context.Context) (string, error) {
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, tokenCacheKey); ok {
			var cached apiToken
			if err := json.Unmarshal(raw, &cached); err == nil && cached.Token != "" && cached.ExpiresAt > time.Now().Unix() {
				c.logger.Debug("Spotify token retrieved from cache")
				return cached.Token, nil
			}
		}
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("spotify token: %w", err)
	}
	defer resp.Body.Close()

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("spotify token: decode response: %w", err)
	}
	if parsed.Error != "" || parsed.AccessToken == "" {
		return "", fmt.Errorf("spotify token: upstream error %q", parsed.Error)
	}

	token := apiToken{
		Token:     parsed.AccessToken,
		ExpiresAt: time.Now().Unix() + parsed.ExpiresIn,
	}
	if c.cache != nil {
		if err := c.cache.Set(ctx, tokenCacheKey, token); err != nil {
			c.logger.Debug("Could not cache Spotify token", zap.Error(err))
		}
	}

	c.logger.Info("Fetched new Spotify access token")
	return token.Token, nil
}

// SearchTracks returns up to 10 metadata options matching the partial
// metadata. Upstream search failures are logged and yield an empty result;
// a missing access token is an error.
func (c *Client) SearchTracks(ctx context.Context, partial PartialTrackMetadata) ([]TrackMetadata, error) {
	cacheKey := searchCacheKey(partial)
	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, cacheKey); ok {
			var cached []TrackMetadata
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	query := partial.Title + " " + partial.Artist
	filters := fmt.Sprintf("track:%s artist:%s", partial.Title, partial.Artist)
	if partial.Album != "" {
		filters += " album:" + partial.Album
	}

	params := url.Values{
		"q":     {query + " " + filters},
		"type":  {"track"},
		"limit": {"10"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.SearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Error fetching track metadata", zap.Int("status", resp.StatusCode))
		return []TrackMetadata{}, nil
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("Spotify search response with an unexpected format", zap.Error(err))
		return []TrackMetadata{}, nil
	}

	options := make([]TrackMetadata, 0, len(parsed.Tracks.Items))
	for _, track := range parsed.Tracks.Items {
		names := make([]string, 0, len(track.Artists))
		for _, artist := range track.Artists {
			names = append(names, artist.Name)
		}
		coverURL := ""
		if len(track.Album.Images) > 0 {
			// Spotify returns images sorted in non-increasing size order.
			coverURL = track.Album.Images[0].URL
		}
		options = append(options, TrackMetadata{
			Title:         track.Name,
			Artist:        strings.Join(names, " & "),
			Album:         track.Album.Name,
			AlbumCoverURL: coverURL,
		})
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, options); err != nil {
			c.logger.Debug("Could not cache track search", zap.Error(err))
		}
	}
	return options, nil
}

func searchCacheKey(partial PartialTrackMetadata) string {
	return strings.ToLower("search_track_" + partial.Title + "_" + partial.Artist + "_" + partial.Album)
}
