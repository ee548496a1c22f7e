package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	source TableSource
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(source TableSource) *ProbeHandler {
	return &ProbeHandler{source: source}
}

// Liveness handles the /healthz endpoint. Returns 200 OK while the process runs.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint. The dashboard is ready once the
// scenario dataset has loaded.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	table, err := h.source.Table()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "dataset unavailable",
			"file":   h.source.Path(),
		})
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"scenarios": table.Len(),
	})
}
