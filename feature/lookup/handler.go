package lookup

import (
	"strconv"

	"game-database/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for game database lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lookup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/master", h.HandleMasterInfo)
	app.Get("/characters/names", h.HandleApprovedNames)
	app.Get("/characters/:name/exists", h.HandleCharacterExists)
	app.Get("/friends/:id", h.HandleFriendsList)
}

// HandleMasterInfo returns the master server address.
// @Summary Master Server
// @Description Returns the IP and port of the server registered as 'master'.
// @Tags lookup
// @Produce json
// @Success 200 {object} gamedb.MasterInfo
// @Failure 404 {object} map[string]string "No master registered"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /master [get]
func (h *Handler) HandleMasterInfo(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.MasterInfo(c.Context())
	if err != nil {
		l.Error("Master info lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if info == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no master server registered"})
	}
	return c.JSON(info)
}

// HandleApprovedNames returns all approved character names.
// @Summary Approved Names
// @Tags lookup
// @Produce json
// @Success 200 {object} gamedb.ApprovedNames
// @Failure 404 {object} map[string]string "No characters"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /characters/names [get]
func (h *Handler) HandleApprovedNames(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.ApprovedNames(c.Context())
	if err != nil {
		l.Error("Approved names lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if names == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no approved names"})
	}
	return c.JSON(names)
}

// HandleCharacterExists reports whether a character name is taken.
// @Summary Character Exists
// @Tags lookup
// @Produce json
// @Param name path string true "Character name"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /characters/{name}/exists [get]
func (h *Handler) HandleCharacterExists(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	name := c.Params("name")

	exists, err := h.service.CharacterExists(c.Context(), name)
	if err != nil {
		l.Error("Character lookup failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"name":   name,
		"exists": exists,
	})
}

// HandleFriendsList returns the friends of a character.
// @Summary Friends List
// @Tags lookup
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} gamedb.FriendsList
// @Failure 400 {object} map[string]string "Invalid character ID"
// @Failure 404 {object} map[string]string "No friends"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /friends/{id} [get]
func (h *Handler) HandleFriendsList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid character id"})
	}

	list, err := h.service.Friends(c.Context(), uint32(id))
	if err != nil {
		l.Error("Friends list lookup failed", zap.Uint64("char_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if list == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "character has no friends"})
	}
	return c.JSON(list)
}
