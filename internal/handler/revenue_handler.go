package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/service"
	"github.com/App-Genius/topline-platform/internal/utils"
)

// RevenueHandler exposes the daily entry and benchmark endpoints.
type RevenueHandler struct {
	service service.RevenueService
	logger  zerolog.Logger
}

// NewRevenueHandler creates a new handler instance.
func NewRevenueHandler(service service.RevenueService, logger zerolog.Logger) *RevenueHandler {
	return &RevenueHandler{
		service: service,
		logger:  logger.With().Str("component", "revenue_handler").Logger(),
	}
}

// Register attaches the revenue endpoints.
func (h *RevenueHandler) Register(router fiber.Router) {
	router.Post("/entries", h.recordDailyEntry)
	router.Put("/benchmarks", h.setBenchmark)
}

func (h *RevenueHandler) recordDailyEntry(c *fiber.Ctx) error {
	var payload dto.DailyEntryRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := h.service.RecordDailyEntry(c.UserContext(), payload)
	if err != nil {
		status := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to record daily entry")
			return utils.SendError(c, status, "failed to record daily entry")
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "daily entry recorded", entry)
}

func (h *RevenueHandler) setBenchmark(c *fiber.Ctx) error {
	var payload dto.BenchmarkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	benchmark, err := h.service.SetBenchmark(c.UserContext(), payload)
	if err != nil {
		status := statusForError(err)
		if status == fiber.StatusInternalServerError {
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to set benchmark")
			return utils.SendError(c, status, "failed to set benchmark")
		}
		return utils.SendError(c, status, err.Error())
	}

	return utils.SendSuccess(c, "benchmark saved", benchmark)
}
