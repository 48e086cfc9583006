package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/service"
	"github.com/App-Genius/topline-platform/internal/utils"
)

// StatsHandler exposes the behavior statistics endpoints.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler creates a new handler instance.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("component", "stats_handler").Logger(),
	}
}

// Register attaches the statistics endpoints.
func (h *StatsHandler) Register(router fiber.Router) {
	router.Get("/", h.getStats)
	router.Get("/distribution", h.getDistribution)
	router.Get("/streaks/:actorID", h.getActorStreak)
}

func (h *StatsHandler) getStats(c *fiber.Ctx) error {
	windowDays, err := parseQueryInt(c, "window_days")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid window_days")
	}

	stats, err := h.service.GetStats(c.UserContext(), windowDays)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to aggregate stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to aggregate stats")
	}

	return utils.SendSuccess(c, "stats retrieved", stats)
}

func (h *StatsHandler) getDistribution(c *fiber.Ctx) error {
	windowDays, err := parseQueryInt(c, "window_days")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid window_days")
	}

	distribution, err := h.service.GetDistribution(c.UserContext(), windowDays)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to compute distribution")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute distribution")
	}

	return utils.SendSuccess(c, "distribution retrieved", distribution)
}

func (h *StatsHandler) getActorStreak(c *fiber.Ctx) error {
	actorID, err := parseIDParam(c, "actorID")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	streak, err := h.service.GetActorStreak(c.UserContext(), actorID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Uint("actor_id", actorID).Msg("failed to compute streak")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute streak")
	}

	return utils.SendSuccess(c, "streak retrieved", streak)
}
