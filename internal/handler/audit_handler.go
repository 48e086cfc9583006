package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/repository"
	"github.com/App-Genius/topline-platform/internal/service"
	"github.com/App-Genius/topline-platform/internal/utils"
)

// AuditHandler exposes the audit trail listing endpoint.
type AuditHandler struct {
	service service.AuditService
	logger  zerolog.Logger
}

// NewAuditHandler creates a new handler instance.
func NewAuditHandler(service service.AuditService, logger zerolog.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		logger:  logger.With().Str("component", "audit_handler").Logger(),
	}
}

// Register attaches the audit trail endpoint.
func (h *AuditHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
}

func (h *AuditHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page_size")
	}

	filter := repository.AuditLogFilter{
		Page:       page,
		PageSize:   pageSize,
		Action:     strings.ToLower(strings.TrimSpace(c.Query("action"))),
		EntityType: strings.ToLower(strings.TrimSpace(c.Query("entity_type"))),
	}
	if actorID, err := parseQueryInt(c, "actor_id"); err == nil && actorID > 0 {
		scoped := uint(actorID)
		filter.ActorID = &scoped
	}

	entries, total, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list audit trail")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list audit trail")
	}

	return utils.SendSuccess(c, "audit trail retrieved", fiber.Map{
		"items": entries,
		"total": total,
	})
}
