package schema

import (
	"game-database/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for schema checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the schema routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/schema", h.HandleSchemaCheck)
}

// HandleSchemaCheck checks the game database schema.
// @Summary Check Schema
// @Description Checks that servers, charinfo and friends have the columns the game database reads.
// @Tags schema
// @Produce json
// @Success 200 {object} schema.Report "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.Check(c.Context())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !report.Matched {
		l.Warn("Schema mismatches found", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}
