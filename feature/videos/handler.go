package videos

import (
	"strings"

	"music-downloader/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for video search.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the video search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/search")
	group.Get("/video", h.HandleSearchVideos)
}

// HandleSearchVideos searches YouTube videos.
// @Summary Search Videos
// @Description Search YouTube videos. The query value must be urlencoded.
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {array} youtube.Video "Search results"
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /search/video [get]
func (h *Handler) HandleSearchVideos(c *fiber.Ctx) error {
	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter is required",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	results, err := h.service.SearchVideos(c.Context(), query)
	if err != nil {
		l.Error("Video search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(results)
}
