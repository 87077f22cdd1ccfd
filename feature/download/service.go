package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"music-downloader/core/media"

	"go.uber.org/zap"
)

// Downloader is the part of the YouTube client the service needs.
type Downloader interface {
	DownloadAudio(ctx context.Context, videoID, dest string) error
}

// Request describes a single download: which video to fetch and the
// metadata to tag the resulting MP3 with.
type Request struct {
	VideoID       string
	Title         string
	Artist        string
	Album         string
	AlbumCoverURL string
}

type convertFunc func(ctx context.Context, ffmpegBinary, source, dest string) error
type tagFunc func(path, title, artist, album string, cover []byte) error

// Service produces tagged MP3 files from YouTube videos.
type Service struct {
	yt         Downloader
	cfg        media.Config
	logger     *zap.Logger
	httpClient *http.Client

	convert convertFunc
	tag     tagFunc
}

// NewService creates a new download service.
func NewService(yt Downloader, cfg media.Config, logger *zap.Logger) *Service {
	return &Service{
		yt:         yt,
		cfg:        cfg,
		logger:     logger,
		httpClient: http.DefaultClient,
		convert:    media.ConvertToMP3,
		tag:        media.WriteTags,
	}
}

// Download runs the full pipeline and returns the path of the finished MP3
// together with a cleanup function that removes all artifacts. cleanup is
// non-nil whenever err is nil and must be called once the file has been
// consumed.
func (s *Service) Download(ctx context.Context, req Request) (string, func(), error) {
	dir, err := os.MkdirTemp("", "download-*")
	if err != nil {
		return "", nil, fmt.Errorf("create work dir: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Warn("Could not remove download artifacts", zap.String("dir", dir), zap.Error(err))
		}
	}

	source := filepath.Join(dir, "audio.m4a")
	dest := filepath.Join(dir, "audio.mp3")

	if err := s.yt.DownloadAudio(ctx, req.VideoID, source); err != nil {
		cleanup()
		return "", nil, err
	}

	if err := s.convert(ctx, s.cfg.FFmpegPath, source, dest); err != nil {
		cleanup()
		return "", nil, err
	}
	// The source stream is no longer needed once the MP3 exists.
	_ = os.Remove(source)

	cover := s.fetchCover(ctx, req.AlbumCoverURL)
	if err := s.tag(dest, req.Title, req.Artist, req.Album, cover); err != nil {
		cleanup()
		return "", nil, err
	}

	return dest, cleanup, nil
}

// fetchCover downloads the album cover. A failed fetch only costs the cover
// art, not the download, so errors are logged and swallowed.
func (s *Service) fetchCover(ctx context.Context, coverURL string) []byte {
	if coverURL == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		s.logger.Warn("Invalid album cover URL", zap.String("url", coverURL), zap.Error(err))
		return nil
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Could not fetch album cover", zap.String("url", coverURL), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("Could not fetch album cover", zap.String("url", coverURL), zap.Int("status", resp.StatusCode))
		return nil
	}

	cover, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Warn("Could not read album cover", zap.String("url", coverURL), zap.Error(err))
		return nil
	}
	return cover
}
