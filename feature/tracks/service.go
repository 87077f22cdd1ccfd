package tracks

import (
	"context"
	"encoding/json"
	"os"

	"music-downloader/core/spotify"

	"go.uber.org/zap"
)

// TrackSearcher is the part of the Spotify client the service needs.
type TrackSearcher interface {
	SearchTracks(ctx context.Context, partial spotify.PartialTrackMetadata) ([]spotify.TrackMetadata, error)
}

// Service handles track metadata search operations.
type Service struct {
	sp       TrackSearcher
	logger   *zap.Logger
	mockFile string
}

// NewService creates a new track search service. A non-empty mockFile puts
// the service in mock mode.
func NewService(sp TrackSearcher, logger *zap.Logger, mockFile string) *Service {
	return &Service{
		sp:       sp,
		logger:   logger,
		mockFile: mockFile,
	}
}

// SearchTracks returns metadata options for the given partial metadata.
// Caching of both search results and access tokens lives in the Spotify
// client, so the service stays a thin orchestration layer.
func (s *Service) SearchTracks(ctx context.Context, partial spotify.PartialTrackMetadata) ([]spotify.TrackMetadata, error) {
	if s.mockFile != "" {
		return s.mockResults()
	}

	options, err := s.sp.SearchTracks(ctx, partial)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return []spotify.TrackMetadata{}, nil
	}
	return options, nil
}

func (s *Service) mockResults() ([]spotify.TrackMetadata, error) {
	data, err := os.ReadFile(s.mockFile)
	if err != nil {
		return nil, err
	}
	var fixture struct {
		Tracks []spotify.TrackMetadata `json:"tracks"`
	}
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, err
	}
	return fixture.Tracks, nil
}
