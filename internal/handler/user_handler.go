package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/service"
	"github.com/App-Genius/topline-platform/internal/utils"
)

// UserHandler exposes the user listing and navigation endpoints.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new handler instance.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("component", "user_handler").Logger(),
	}
}

// Register attaches the user endpoints.
func (h *UserHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Get("/routes", h.allowedRoutes)
	router.Get("/roles/:role/deletable", h.canDeleteRole)
}

func (h *UserHandler) list(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	users, err := h.service.List(c.UserContext(), actor)
	if err != nil {
		status := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to list users")
			return utils.SendError(c, status, "failed to list users")
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "users retrieved", users)
}

func (h *UserHandler) allowedRoutes(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	return utils.SendSuccess(c, "routes retrieved", h.service.AllowedRoutes(actor))
}

func (h *UserHandler) canDeleteRole(c *fiber.Ctx) error {
	role := c.Params("role")
	if role == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "missing role")
	}

	permission, err := h.service.CanDeleteRole(c.UserContext(), role)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Str("role", role).Msg("failed to evaluate role deletion")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to evaluate role deletion")
	}

	return utils.SendSuccess(c, "role deletion evaluated", permission)
}
