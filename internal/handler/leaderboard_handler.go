package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/service"
	"github.com/App-Genius/topline-platform/internal/utils"
)

// LeaderboardHandler exposes the leaderboard and per-actor rank endpoints.
type LeaderboardHandler struct {
	service service.LeaderboardService
	logger  zerolog.Logger
}

// NewLeaderboardHandler creates a new handler instance.
func NewLeaderboardHandler(service service.LeaderboardService, logger zerolog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{
		service: service,
		logger:  logger.With().Str("component", "leaderboard_handler").Logger(),
	}
}

// Register attaches the leaderboard endpoints.
func (h *LeaderboardHandler) Register(router fiber.Router) {
	router.Get("/", h.getLeaderboard)
	router.Get("/me", h.getOwnRank)
	router.Get("/:actorID/rank", h.getActorRank)
}

func (h *LeaderboardHandler) getLeaderboard(c *fiber.Ctx) error {
	windowDays, err := parseQueryInt(c, "window_days")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid window_days")
	}
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}

	board, err := h.service.GetLeaderboard(c.UserContext(), windowDays, limit)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build leaderboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to build leaderboard")
	}

	return utils.SendSuccess(c, "leaderboard retrieved", board)
}

func (h *LeaderboardHandler) getOwnRank(c *fiber.Ctx) error {
	actorID, err := extractUserID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, err.Error())
	}
	return h.respondWithRank(c, actorID)
}

func (h *LeaderboardHandler) getActorRank(c *fiber.Ctx) error {
	actorID, err := parseIDParam(c, "actorID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}
	return h.respondWithRank(c, actorID)
}

func (h *LeaderboardHandler) respondWithRank(c *fiber.Ctx, actorID uint) error {
	windowDays, err := parseQueryInt(c, "window_days")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid window_days")
	}

	rank, err := h.service.GetActorRank(c.UserContext(), actorID, windowDays)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("actor_id", actorID).Msg("failed to resolve rank")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to resolve rank")
	}

	return utils.SendSuccess(c, "rank retrieved", rank)
}
