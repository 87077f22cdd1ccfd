package tracks

import (
	"strings"

	"music-downloader/core/logger"
	"music-downloader/core/spotify"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for track metadata search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the track search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/search")
	group.Get("/track", h.HandleSearchTracks)
}

// HandleSearchTracks resolves partial track metadata into full options.
// @Summary Search Tracks
// @Description Resolve a title and artist (album optional) into full metadata options, including album cover art.
// @Tags search
// @Produce json
// @Param title query string true "Track title"
// @Param artist query string true "Track artist"
// @Param album query string false "Album name"
// @Success 200 {array} spotify.TrackMetadata "Metadata options"
// @Failure 400 {object} map[string]string "Missing title or artist"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /search/track [get]
func (h *Handler) HandleSearchTracks(c *fiber.Ctx) error {
	partial := spotify.PartialTrackMetadata{
		Title:  strings.TrimSpace(c.Query("title")),
		Artist: strings.TrimSpace(c.Query("artist")),
		Album:  strings.TrimSpace(c.Query("album")),
	}
	if partial.Title == "" || partial.Artist == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title and artist parameters are required",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	options, err := h.service.SearchTracks(c.Context(), partial)
	if err != nil {
		l.Error("Track search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(options)
}
