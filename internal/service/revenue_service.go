package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/dates"
	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/models"
	"github.com/App-Genius/topline-platform/internal/repository"
)

// RevenueService records daily revenue entries and yearly benchmarks.
type RevenueService interface {
	RecordDailyEntry(ctx context.Context, payload dto.DailyEntryRequest) (models.DailyEntry, error)
	SetBenchmark(ctx context.Context, payload dto.BenchmarkRequest) (models.Benchmark, error)
}

type revenueService struct {
	entries    repository.DailyEntryRepository
	benchmarks repository.BenchmarkRepository
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewRevenueService constructs the revenue recording service.
func NewRevenueService(entries repository.DailyEntryRepository, benchmarks repository.BenchmarkRepository, validate *validator.Validate, logger zerolog.Logger) RevenueService {
	return &revenueService{
		entries:    entries,
		benchmarks: benchmarks,
		validator:  validate,
		logger:     logger.With().Str("component", "revenue_service").Logger(),
	}
}

func (s *revenueService) RecordDailyEntry(ctx context.Context, payload dto.DailyEntryRequest) (models.DailyEntry, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.DailyEntry{}, err
	}

	// Strict parse: a malformed date is a client error, not a zero entry.
	day, err := dates.ParseDate(payload.Date)
	if err != nil {
		return models.DailyEntry{}, err
	}

	entry := models.DailyEntry{
		Date:         dates.StartOfDay(day),
		TotalRevenue: payload.TotalRevenue,
		TotalCovers:  payload.TotalCovers,
	}
	if err := s.entries.Upsert(ctx, &entry); err != nil {
		s.logger.Error().Err(err).Str("date", payload.Date).Msg("failed to upsert daily entry")
		return models.DailyEntry{}, err
	}
	return entry, nil
}

func (s *revenueService) SetBenchmark(ctx context.Context, payload dto.BenchmarkRequest) (models.Benchmark, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.Benchmark{}, err
	}

	benchmark := models.Benchmark{
		Year:             payload.Year,
		TotalRevenue:     payload.TotalRevenue,
		DaysOpen:         payload.DaysOpen,
		BaselineAvgCheck: payload.BaselineAvgCheck,
		BaselineRating:   payload.BaselineRating,
	}
	if err := s.benchmarks.Upsert(ctx, &benchmark); err != nil {
		s.logger.Error().Err(err).Int("year", payload.Year).Msg("failed to upsert benchmark")
		return models.Benchmark{}, err
	}
	return benchmark, nil
}
