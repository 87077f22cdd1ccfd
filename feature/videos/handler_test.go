package videos_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"music-downloader/core/youtube"
	"music-downloader/feature/videos"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, yt videos.Searcher) *fiber.App {
	t.Helper()
	app := fiber.New()
	f := videos.NewFeature(yt, newStore(t), zap.NewNop(), "")
	require.NoError(t, f.Load(app))
	return app
}

func TestHandleSearchVideos(t *testing.T) {
	yt := &fakeSearcher{results: []youtube.Video{{
		ID:           "abc123",
		WatchURL:     "https://www.youtube.com/watch?v=abc123",
		Title:        "Test Song",
		Author:       "Test Artist",
		ThumbnailURL: "https://i.ytimg.com/large.jpg",
	}}}
	app := newApp(t, yt)

	resp, err := app.Test(httptest.NewRequest("GET", "/search/video?query=test+song", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var results []map[string]string
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 1)
	// The wire format is camelCase.
	assert.Equal(t, "abc123", results[0]["videoId"])
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", results[0]["watchUrl"])
	assert.Equal(t, "https://i.ytimg.com/large.jpg", results[0]["thumbnailUrl"])
}

func TestHandleSearchVideos_MissingQuery(t *testing.T) {
	app := newApp(t, &fakeSearcher{})

	resp, err := app.Test(httptest.NewRequest("GET", "/search/video", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
