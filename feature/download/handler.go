package download

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"music-downloader/core/logger"
	"music-downloader/core/youtube"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for MP3 downloads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the download route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/download", h.HandleDownload)
}

// HandleDownload downloads a video's audio as a tagged MP3.
// @Summary Download MP3
// @Description Download a YouTube video's audio as a 320k MP3 tagged with the given metadata and cover art.
// @Tags download
// @Produce audio/mpeg
// @Param video_id query string true "YouTube video ID"
// @Param title query string true "Track title"
// @Param artist query string true "Track artist"
// @Param album query string true "Album name"
// @Param album_cover_url query string true "Album cover image URL"
// @Success 200 {file} file "The tagged MP3"
// @Failure 400 {object} map[string]string "Missing parameters"
// @Failure 404 {object} map[string]string "Video not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /download [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	req := Request{
		VideoID:       strings.TrimSpace(c.Query("video_id")),
		Title:         strings.TrimSpace(c.Query("title")),
		Artist:        strings.TrimSpace(c.Query("artist")),
		Album:         strings.TrimSpace(c.Query("album")),
		AlbumCoverURL: strings.TrimSpace(c.Query("album_cover_url")),
	}
	if req.VideoID == "" || req.Title == "" || req.Artist == "" || req.Album == "" || req.AlbumCoverURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "video_id, title, artist, album and album_cover_url parameters are required",
		})
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Download started",
		zap.String("video_id", req.VideoID),
		zap.String("title", req.Title),
		zap.String("artist", req.Artist),
	)

	path, cleanup, err := h.service.Download(c.Context(), req)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No video found with ID " + req.VideoID,
			})
		}
		l.Error("Download failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	file, err := os.Open(path)
	if err != nil {
		cleanup()
		l.Error("Could not open finished MP3", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		cleanup()
		l.Error("Could not stat finished MP3", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	// The open descriptor outlives the unlink, so artifacts can be removed
	// before the response is streamed. Fiber closes the stream for us.
	cleanup()

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.mp3"`, sanitizeFilename(req.Title)))
	return c.SendStream(file, int(info.Size()))
}

// sanitizeFilename strips characters that would break the header value.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '/', '\r', '\n':
			return '_'
		}
		return r
	}, name)
}
