package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/App-Genius/topline-platform/internal/dates"
	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/models"
	"github.com/App-Genius/topline-platform/internal/repository"
	"github.com/App-Genius/topline-platform/internal/stats"
)

const (
	// DefaultStatsWindowDays is the analysis window used when none is given.
	DefaultStatsWindowDays = 30
	// streakLookbackDays bounds how far back a streak lookup scans.
	streakLookbackDays = 365

	performerLimit = 5
)

// StatsService computes behavior analytics over a time window.
type StatsService interface {
	GetStats(ctx context.Context, windowDays int) (dto.StatsResponse, error)
	GetActorStreak(ctx context.Context, actorID uint) (dto.ActorStreakResponse, error)
	GetDistribution(ctx context.Context, windowDays int) (dto.DistributionResponse, error)
}

type statsService struct {
	logs   repository.BehaviorLogRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewStatsService constructs the statistics aggregator.
func NewStatsService(logs repository.BehaviorLogRepository, logger zerolog.Logger) StatsService {
	return &statsService{
		logs:   logs,
		logger: logger.With().Str("component", "stats_service").Logger(),
		now:    time.Now,
	}
}

func (s *statsService) GetStats(ctx context.Context, windowDays int) (dto.StatsResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}

	tracer := otel.Tracer("github.com/App-Genius/topline-platform/internal/service/stats")
	ctx, span := tracer.Start(ctx, "stats.aggregate")
	span.SetAttributes(attribute.Int("stats.window_days", windowDays))
	defer span.End()

	now := s.now()
	window := dates.BuildDateRange(now, windowDays)

	logs, err := s.logs.ListInRange(ctx, window.Start, window.End)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_logs_failed")
		return dto.StatsResponse{}, err
	}

	inputs := toStatsLogs(logs)
	span.SetAttributes(attribute.Int("stats.log_count", len(inputs)))

	verified := 0
	for _, log := range inputs {
		if log.Verified {
			verified++
		}
	}

	performers := stats.ActorCounts(inputs)
	trend := stats.FillTrendGaps(stats.DailyTrend(inputs), window.Start, window.End)

	return dto.StatsResponse{
		BehaviorCounts:   stats.BehaviorCountsWithPercent(inputs),
		DailyTrend:       trend,
		TopPerformers:    stats.TopPerformers(performers, performerLimit),
		BottomPerformers: stats.BottomPerformers(performers, performerLimit),
		VerificationRate: stats.VerificationRate(verified, len(inputs)),
		TotalLogs:        len(inputs),
		WindowDays:       windowDays,
		GeneratedAt:      now,
	}, nil
}

func (s *statsService) GetActorStreak(ctx context.Context, actorID uint) (dto.ActorStreakResponse, error) {
	now := s.now()
	window := dates.BuildDateRange(now, streakLookbackDays)

	filter := repository.BehaviorLogFilter{
		ActorID: &actorID,
		From:    &window.Start,
		To:      &window.End,
	}
	logs, _, err := s.logs.List(ctx, filter)
	if err != nil {
		return dto.ActorStreakResponse{}, err
	}

	days := make([]string, 0, len(logs))
	for _, log := range logs {
		days = append(days, dates.ToDateString(log.CreatedAt))
	}

	return dto.ActorStreakResponse{
		ActorID:       actorID,
		CurrentStreak: stats.CurrentStreak(days, now),
		LongestStreak: stats.LongestStreak(days),
	}, nil
}

func (s *statsService) GetDistribution(ctx context.Context, windowDays int) (dto.DistributionResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}

	now := s.now()
	window := dates.BuildDateRange(now, windowDays)

	logs, err := s.logs.ListInRange(ctx, window.Start, window.End)
	if err != nil {
		return dto.DistributionResponse{}, err
	}

	trend := stats.FillTrendGaps(stats.DailyTrend(toStatsLogs(logs)), window.Start, window.End)
	counts := make([]float64, 0, len(trend))
	for _, point := range trend {
		counts = append(counts, float64(point.Count))
	}

	return dto.DistributionResponse{
		Mean:                   stats.Mean(counts),
		Median:                 stats.Median(counts),
		StdDev:                 stats.StdDev(counts),
		CoefficientOfVariation: stats.CoefficientOfVariation(counts),
		P90:                    stats.PercentileValue(counts, 90),
	}, nil
}

func toStatsLogs(logs []models.BehaviorLog) []stats.Log {
	inputs := make([]stats.Log, 0, len(logs))
	for _, log := range logs {
		inputs = append(inputs, stats.Log{
			ActorID:      log.ActorID,
			ActorName:    log.Actor.Name,
			BehaviorID:   log.BehaviorID,
			BehaviorName: log.BehaviorName,
			Points:       log.Points,
			Verified:     log.Verified,
			CreatedAt:    log.CreatedAt,
		})
	}
	return inputs
}
