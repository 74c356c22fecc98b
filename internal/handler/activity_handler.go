package handler

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mergington-high/activities-api/internal/dto"
	"github.com/mergington-high/activities-api/internal/middleware"
	"github.com/mergington-high/activities-api/internal/service"
	"github.com/mergington-high/activities-api/internal/utils"
)

// ActivityHandler serves the activity listing and roster endpoints.
type ActivityHandler struct {
	service service.RosterService
	logger  zerolog.Logger
}

// NewActivityHandler constructs the handler instance.
func NewActivityHandler(service service.RosterService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register wires the activity routes.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/:name/signup", h.signup)
	router.Delete("/:name/unregister", h.unregister)
}

func (h *ActivityHandler) list(c *fiber.Ctx) error {
	activities, err := h.service.ListActivities(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list activities")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list activities")
	}

	return c.JSON(activities)
}

func (h *ActivityHandler) signup(c *fiber.Ctx) error {
	name, err := activityName(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid activity name")
	}

	message, err := h.service.SignUp(c.Context(), name, c.Query("email"), middleware.RoleFromContext(c), c.IP())
	if err != nil {
		return h.sendRosterError(c, err, "signup failed")
	}

	return c.JSON(dto.MessageResponse{Message: message})
}

func (h *ActivityHandler) unregister(c *fiber.Ctx) error {
	name, err := activityName(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid activity name")
	}

	message, err := h.service.Unregister(c.Context(), name, c.Query("email"), middleware.RoleFromContext(c), c.IP())
	if err != nil {
		return h.sendRosterError(c, err, "unregister failed")
	}

	return c.JSON(dto.MessageResponse{Message: message})
}

// activityName decodes the path parameter; names like "Chess Club" arrive
// percent-encoded.
func activityName(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("name"))
}

func (h *ActivityHandler) sendRosterError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		return utils.SendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadySignedUp),
		errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrNotRegistered),
		errors.Is(err, service.ErrInvalidEmail):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRoleForbidden):
		return utils.SendError(c, fiber.StatusForbidden, err.Error())
	default:
		h.logger.Error().Err(err).Msg(fallback)
		return utils.SendError(c, fiber.StatusInternalServerError, fallback)
	}
}
