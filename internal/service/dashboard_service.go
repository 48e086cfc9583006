package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/App-Genius/topline-platform/internal/dates"
	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/game"
	"github.com/App-Genius/topline-platform/internal/kpi"
	"github.com/App-Genius/topline-platform/internal/models"
	"github.com/App-Genius/topline-platform/internal/observability"
	"github.com/App-Genius/topline-platform/internal/repository"
)

const dashboardTrendWindowDays = 30

// DashboardService assembles the game standing and headline KPIs.
type DashboardService interface {
	GetDashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	entries    repository.DailyEntryRepository
	benchmarks repository.BenchmarkRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	thresholds game.Thresholds
	logger     zerolog.Logger
	now        func() time.Time
}

// NewDashboardService constructs the dashboard aggregator. Thresholds
// default to the standard game cutoffs when zero.
func NewDashboardService(entries repository.DailyEntryRepository, benchmarks repository.BenchmarkRepository, cache *redis.Client, ttl time.Duration, th game.Thresholds, logger zerolog.Logger) DashboardService {
	if th.Winning == 0 || th.Losing == 0 {
		th = game.DefaultThresholds()
	}
	return &dashboardService{
		entries:    entries,
		benchmarks: benchmarks,
		cache:      cache,
		cacheTTL:   ttl,
		thresholds: th,
		logger:     logger.With().Str("component", "dashboard_service").Logger(),
		now:        time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (dto.DashboardResponse, error) {
	const cacheKey = "dashboard:game"

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				observability.CacheLookups().WithLabelValues("dashboard", "hit").Inc()
				response.CacheHit = true
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
		observability.CacheLookups().WithLabelValues("dashboard", "miss").Inc()
	}

	now := s.now()

	benchmark, err := s.benchmarks.GetByYear(ctx, now.Year())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.DashboardResponse{}, err
	}

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	ytdRevenue, err := s.entries.SumRevenue(ctx, yearStart, dates.EndOfDay(now))
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	window := dates.BuildDateRange(now, dashboardTrendWindowDays)
	recent, err := s.entries.ListInRange(ctx, window.Start, window.End)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	previous := dates.PreviousDateRange(now, dashboardTrendWindowDays)
	previousRevenue, err := s.entries.SumRevenue(ctx, previous.Start, previous.End)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	response := s.buildResponse(now, benchmark, ytdRevenue, previousRevenue, recent)

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) buildResponse(now time.Time, benchmark models.Benchmark, ytdRevenue, previousRevenue float64, recent []models.DailyEntry) dto.DashboardResponse {
	yearlyTarget := benchmark.TotalRevenue

	targetToDate := game.TargetToDate(yearlyTarget, now)
	state := game.State{
		Status:          game.ClassifyWithThresholds(ytdRevenue, targetToDate, yearlyTarget, s.thresholds),
		PercentComplete: kpi.Progress(ytdRevenue, yearlyTarget),
		DaysRemaining:   dates.DaysRemaining(now),
		CurrentScore:    ytdRevenue,
		TargetScore:     targetToDate,
	}

	dailyTarget := dailyTargetFor(benchmark, now.Year())
	results := make([]game.DayResult, 0, len(recent))
	var windowRevenue float64
	var windowCovers int
	for _, entry := range recent {
		results = append(results, game.DayResult{
			Date:    entry.Date,
			Revenue: entry.TotalRevenue,
			Target:  dailyTarget,
		})
		windowRevenue += entry.TotalRevenue
		windowCovers += entry.TotalCovers
	}

	return dto.DashboardResponse{
		Game:          state,
		YearlyTarget:  yearlyTarget,
		DailyRunRate:  kpi.DailyRunRate(ytdRevenue, yearlyTarget, state.DaysRemaining),
		AverageCheck:  kpi.AverageCheck(windowRevenue, float64(windowCovers)),
		RevenueTrend:  kpi.Trend(windowRevenue, previousRevenue),
		WinningStreak: game.WinningStreak(results),
		LongestStreak: game.LongestStreak(results),
		GeneratedAt:   now,
	}
}

// dailyTargetFor spreads the yearly target over the days the location is
// open, falling back to the calendar year when DaysOpen is unset.
func dailyTargetFor(benchmark models.Benchmark, year int) float64 {
	days := benchmark.DaysOpen
	if days <= 0 {
		days = dates.DaysInYear(year)
	}
	if benchmark.TotalRevenue == 0 {
		return 0
	}
	return benchmark.TotalRevenue / float64(days)
}
