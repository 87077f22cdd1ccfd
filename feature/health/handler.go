package health

import (
	"github.com/gofiber/fiber/v2"
)

// Handler handles liveness requests.
type Handler struct{}

// NewHandler creates a new HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/ping", h.HandlePing)
}

// HandlePing is the liveness probe.
// @Summary Ping
// @Description Liveness probe.
// @Tags health
// @Produce json
// @Success 200 {string} string "pong!"
// @Router /ping [get]
func (h *Handler) HandlePing(c *fiber.Ctx) error {
	return c.JSON("pong!")
}
