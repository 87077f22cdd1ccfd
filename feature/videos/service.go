package videos

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"music-downloader/core/cache"
	"music-downloader/core/youtube"

	"go.uber.org/zap"
)

// Searcher is the part of the YouTube client the service needs.
type Searcher interface {
	Search(ctx context.Context, query string) ([]youtube.Video, error)
}

// Service handles video search operations.
type Service struct {
	yt       Searcher
	cache    cache.Storage
	logger   *zap.Logger
	mockFile string
}

// NewService creates a new video search service. A non-empty mockFile puts
// the service in mock mode.
func NewService(yt Searcher, store cache.Storage, logger *zap.Logger, mockFile string) *Service {
	return &Service{
		yt:       yt,
		cache:    store,
		logger:   logger,
		mockFile: mockFile,
	}
}

// SearchVideos returns the videos matching query, from cache when possible.
func (s *Service) SearchVideos(ctx context.Context, query string) ([]youtube.Video, error) {
	if s.mockFile != "" {
		return s.mockResults()
	}

	query = strings.TrimSpace(query)
	cacheKey := "search_video_" + strings.ToLower(query)

	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, cacheKey); ok {
			var cached []youtube.Video
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	results, err := s.yt.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []youtube.Video{}, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, results); err != nil {
			s.logger.Debug("Could not cache video search", zap.Error(err))
		}
	}
	return results, nil
}

func (s *Service) mockResults() ([]youtube.Video, error) {
	data, err := os.ReadFile(s.mockFile)
	if err != nil {
		return nil, err
	}
	var fixture struct {
		Videos []youtube.Video `json:"videos"`
	}
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, err
	}
	return fixture.Videos, nil
}
