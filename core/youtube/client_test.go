package youtube_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"music-downloader/core/youtube"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponseJSON = `{
  "contents": {
    "twoColumnSearchResultsRenderer": {
      "primaryContents": {
        "sectionListRenderer": {
          "contents": [
            {
              "itemSectionRenderer": {
                "contents": [
                  {
                    "videoRenderer": {
                      "videoId": "abc123",
                      "title": {"runs": [{"text": "Test "}, {"text": "Song"}]},
                      "ownerText": {"runs": [{"text": "Test Artist"}]},
                      "thumbnail": {
                        "thumbnails": [
                          {"url": "https://i.ytimg.com/small.jpg?sqp=x", "width": 120, "height": 90},
                          {"url": "https://i.ytimg.com/large.jpg?sqp=y", "width": 480, "height": 360}
                        ]
                      }
                    }
                  },
                  {"shelfRenderer": {}}
                ]
              }
            }
          ]
        }
      }
    }
  }
}`

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/youtubei/v1/search", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "test song", payload["query"])

		_, _ = w.Write([]byte(searchResponseJSON))
	}))
	defer srv.Close()

	client := youtube.NewClient(youtube.Config{APIBase: srv.URL, TimeoutSeconds: 5})

	results, err := client.Search(context.Background(), "test song")
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "abc123", got.ID)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", got.WatchURL)
	assert.Equal(t, "Test Song", got.Title)
	assert.Equal(t, "Test Artist", got.Author)
	// Largest thumbnail wins and the query string is stripped.
	assert.Equal(t, "https://i.ytimg.com/large.jpg", got.ThumbnailURL)
}

func TestClient_Search_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"contents": {}}`))
	}))
	defer srv.Close()

	client := youtube.NewClient(youtube.Config{APIBase: srv.URL, TimeoutSeconds: 5})

	results, err := client.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClient_Search_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := youtube.NewClient(youtube.Config{APIBase: srv.URL, TimeoutSeconds: 5})

	_, err := client.Search(context.Background(), "query")
	assert.Error(t, err)
}
