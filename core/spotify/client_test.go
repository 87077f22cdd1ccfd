package spotify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"music-downloader/core/cache"
	"music-downloader/core/spotify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tracksJSON = `{
  "tracks": {
    "total": 1,
    "items": [
      {
        "name": "Test Song",
        "album": {
          "name": "Test Album",
          "images": [
            {"url": "https://img.example/large.jpg", "width": 640, "height": 640},
            {"url": "https://img.example/small.jpg", "width": 64, "height": 64}
          ]
        },
        "artists": [{"name": "Artist A"}, {"name": "Artist B"}]
      }
    ]
  }
}`

type upstream struct {
	tokenCalls  int
	searchCalls int
	srv         *httptest.Server
}

func newUpstream(t *testing.T, searchStatus int) *upstream {
	t.Helper()
	u := &upstream{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		u.tokenCalls++
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		_, _ = w.Write([]byte(`{"access_token": "tok-1", "expires_in": 3600}`))
	})
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		u.searchCalls++
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "track", r.URL.Query().Get("type"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		if searchStatus != http.StatusOK {
			w.WriteHeader(searchStatus)
			return
		}
		_, _ = w.Write([]byte(tracksJSON))
	})
	u.srv = httptest.NewServer(mux)
	t.Cleanup(u.srv.Close)
	return u
}

func newClient(t *testing.T, u *upstream) (*spotify.Client, cache.Storage) {
	t.Helper()
	store := cache.NewFileStorage(filepath.Join(t.TempDir(), "cache.json"), time.Minute, zap.NewNop())
	cfg := spotify.Config{
		SearchURL:      u.srv.URL + "/v1/search",
		TokenURL:       u.srv.URL + "/api/token",
		ClientID:       "id",
		ClientSecret:   "secret",
		TimeoutSeconds: 5,
	}
	return spotify.NewClient(cfg, store, zap.NewNop()), store
}

func TestClient_SearchTracks(t *testing.T) {
	u := newUpstream(t, http.StatusOK)
	client, _ := newClient(t, u)

	options, err := client.SearchTracks(context.Background(), spotify.PartialTrackMetadata{
		Title:  "Test Song",
		Artist: "Artist A",
	})
	require.NoError(t, err)
	require.Len(t, options, 1)

	got := options[0]
	assert.Equal(t, "Test Song", got.Title)
	assert.Equal(t, "Artist A & Artist B", got.Artist)
	assert.Equal(t, "Test Album", got.Album)
	assert.Equal(t, "https://img.example/large.jpg", got.AlbumCoverURL)
}

func TestClient_SearchTracks_TokenReuse(t *testing.T) {
	u := newUpstream(t, http.StatusOK)
	client, _ := newClient(t, u)
	ctx := context.Background()

	_, err := client.SearchTracks(ctx, spotify.PartialTrackMetadata{Title: "A", Artist: "B"})
	require.NoError(t, err)
	_, err = client.SearchTracks(ctx, spotify.PartialTrackMetadata{Title: "C", Artist: "D"})
	require.NoError(t, err)

	// The token from the first search is cached and reused.
	assert.Equal(t, 1, u.tokenCalls)
	assert.Equal(t, 2, u.searchCalls)
}

func TestClient_SearchTracks_ResultCache(t *testing.T) {
	u := newUpstream(t, http.StatusOK)
	client, _ := newClient(t, u)
	ctx := context.Background()
	partial := spotify.PartialTrackMetadata{Title: "Test Song", Artist: "Artist A"}

	_, err := client.SearchTracks(ctx, partial)
	require.NoError(t, err)
	_, err = client.SearchTracks(ctx, partial)
	require.NoError(t, err)

	assert.Equal(t, 1, u.searchCalls)
}

func TestClient_SearchTracks_ExpiredCachedToken(t *testing.T) {
	u := newUpstream(t, http.StatusOK)
	client, store := newClient(t, u)
	ctx := context.Background()

	// Pre-seed an expired token; it must be rejected and refetched.
	expired := map[string]any{"token": "stale", "expiresAt": time.Now().Add(-time.Hour).Unix()}
	require.NoError(t, store.Set(ctx, "spotify_api_token", expired))

	_, err := client.SearchTracks(ctx, spotify.PartialTrackMetadata{Title: "A", Artist: "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, u.tokenCalls)
}

func TestClient_SearchTracks_UpstreamFailureYieldsEmpty(t *testing.T) {
	u := newUpstream(t, http.StatusBadGateway)
	client, _ := newClient(t, u)

	options, err := client.SearchTracks(context.Background(), spotify.PartialTrackMetadata{Title: "A", Artist: "B"})
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestClient_SearchTracks_TokenError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "invalid_client"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := spotify.Config{
		SearchURL:      srv.URL + "/v1/search",
		TokenURL:       srv.URL + "/api/token",
		TimeoutSeconds: 5,
	}
	client := spotify.NewClient(cfg, nil, zap.NewNop())

	_, err := client.SearchTracks(context.Background(), spotify.PartialTrackMetadata{Title: "A", Artist: "B"})
	assert.Error(t, err)
}
