package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/service"
	"github.com/App-Genius/topline-platform/internal/utils"
)

// BehaviorLogHandler exposes the behavior log endpoints.
type BehaviorLogHandler struct {
	service service.BehaviorLogService
	logger  zerolog.Logger
}

// NewBehaviorLogHandler creates a new handler instance.
func NewBehaviorLogHandler(service service.BehaviorLogService, logger zerolog.Logger) *BehaviorLogHandler {
	return &BehaviorLogHandler{
		service: service,
		logger:  logger.With().Str("component", "behavior_log_handler").Logger(),
	}
}

// Register attaches the behavior log endpoints.
func (h *BehaviorLogHandler) Register(router fiber.Router) {
	router.Post("/", h.create)
	router.Get("/", h.list)
	router.Post("/:logID/verify", h.verify)
	router.Delete("/:logID", h.delete)
}

func (h *BehaviorLogHandler) create(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	var payload dto.BehaviorLogCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	created, err := h.service.Create(c.UserContext(), actor, payload)
	if err != nil {
		return h.respondWithError(c, err, "failed to record behavior log")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "behavior log recorded", created)
}

func (h *BehaviorLogHandler) list(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page_size")
	}

	req := dto.BehaviorLogListRequest{Page: page, PageSize: pageSize}
	if actorID, err := parseQueryInt(c, "actor_id"); err == nil && actorID > 0 {
		scoped := uint(actorID)
		req.ActorID = &scoped
	}
	switch c.Query("verified") {
	case "true":
		verified := true
		req.Verified = &verified
	case "false":
		verified := false
		req.Verified = &verified
	}

	listing, err := h.service.List(c.UserContext(), actor, req)
	if err != nil {
		return h.respondWithError(c, err, "failed to list behavior logs")
	}

	return utils.SendSuccess(c, "behavior logs retrieved", listing)
}

func (h *BehaviorLogHandler) verify(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	logID, err := parseIDParam(c, "logID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	verified, err := h.service.Verify(c.UserContext(), actor, logID)
	if err != nil {
		return h.respondWithError(c, err, "failed to verify behavior log")
	}

	return utils.SendSuccess(c, "behavior log verified", verified)
}

func (h *BehaviorLogHandler) delete(c *fiber.Ctx) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}

	logID, err := parseIDParam(c, "logID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.UserContext(), actor, logID); err != nil {
		return h.respondWithError(c, err, "failed to delete behavior log")
	}

	return utils.SendSuccess(c, "behavior log deleted", nil)
}

// Policy denials surface the engine's reason; everything else hides the
// internals behind a generic message.
func (h *BehaviorLogHandler) respondWithError(c *fiber.Ctx, err error, fallback string) error {
	status := statusForError(err)

	var permission *service.PermissionError
	if errors.As(err, &permission) {
		return utils.SendError(c, status, permission.Reason)
	}
	if status == fiber.StatusInternalServerError {
		requestLogger(h.logger, c).Error().Err(err).Msg(fallback)
		return utils.SendError(c, status, fallback)
	}
	return utils.SendError(c, status, err.Error())
}
