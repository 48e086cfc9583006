package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/App-Genius/topline-platform/internal/dates"
	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/leaderboard"
	"github.com/App-Genius/topline-platform/internal/models"
	"github.com/App-Genius/topline-platform/internal/observability"
	"github.com/App-Genius/topline-platform/internal/repository"
)

// DefaultLeaderboardWindowDays is the standings window used when the caller
// does not pick one.
const DefaultLeaderboardWindowDays = 30

// LeaderboardService builds the ranked standings and single-actor lookups.
type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, windowDays, limit int) (dto.LeaderboardResponse, error)
	GetActorRank(ctx context.Context, actorID uint, windowDays int) (dto.ActorRankResponse, error)
}

type leaderboardService struct {
	logs     repository.BehaviorLogRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewLeaderboardService constructs the leaderboard aggregator.
func NewLeaderboardService(logs repository.BehaviorLogRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) LeaderboardService {
	return &leaderboardService{
		logs:     logs,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "leaderboard_service").Logger(),
		now:      time.Now,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, windowDays, limit int) (dto.LeaderboardResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultLeaderboardWindowDays
	}
	cacheKey := fmt.Sprintf("leaderboard:%d:%d", windowDays, limit)

	tracer := otel.Tracer("github.com/App-Genius/topline-platform/internal/service/leaderboard")
	ctx, span := tracer.Start(ctx, "leaderboard.build")
	span.SetAttributes(
		attribute.Int("leaderboard.window_days", windowDays),
		attribute.Int("leaderboard.limit", limit),
	)
	defer span.End()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.LeaderboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				observability.CacheLookups().WithLabelValues("leaderboard", "hit").Inc()
				response.CacheHit = true
				span.SetAttributes(attribute.Bool("leaderboard.cache_hit", true))
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read leaderboard cache")
			span.RecordError(err)
		}
		observability.CacheLookups().WithLabelValues("leaderboard", "miss").Inc()
	}

	now := s.now()
	inputs, err := s.loadWindow(ctx, now, windowDays)
	if err != nil {
		span.RecordError(err)
		return dto.LeaderboardResponse{}, err
	}

	response := dto.LeaderboardResponse{
		Entries:     leaderboard.Build(inputs, limit),
		WindowDays:  windowDays,
		GeneratedAt: now,
	}
	span.SetAttributes(attribute.Int("leaderboard.entry_count", len(response.Entries)))

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store leaderboard cache")
			}
		}
	}

	return response, nil
}

func (s *leaderboardService) GetActorRank(ctx context.Context, actorID uint, windowDays int) (dto.ActorRankResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultLeaderboardWindowDays
	}

	inputs, err := s.loadWindow(ctx, s.now(), windowDays)
	if err != nil {
		return dto.ActorRankResponse{}, err
	}

	full := leaderboard.Build(inputs, len(inputs)+1)

	score := 0
	scores := make([]int, 0, len(full))
	for _, entry := range full {
		scores = append(scores, entry.Score)
		if entry.ActorID == actorID {
			score = entry.Score
		}
	}

	return dto.ActorRankResponse{
		ActorID:          actorID,
		Rank:             leaderboard.RankWithTies(inputs, actorID),
		Score:            score,
		Percentile:       leaderboard.Percentile(score, scores),
		PointsToNextRank: leaderboard.PointsToNextRank(full, actorID),
	}, nil
}

func (s *leaderboardService) loadWindow(ctx context.Context, now time.Time, windowDays int) ([]leaderboard.Log, error) {
	window := dates.BuildDateRange(now, windowDays)
	logs, err := s.logs.ListInRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	return toLeaderboardLogs(logs), nil
}

func toLeaderboardLogs(logs []models.BehaviorLog) []leaderboard.Log {
	inputs := make([]leaderboard.Log, 0, len(logs))
	for _, log := range logs {
		inputs = append(inputs, leaderboard.Log{
			ActorID:   log.ActorID,
			ActorName: log.Actor.Name,
			Avatar:    log.Actor.Avatar,
			Points:    log.Points,
		})
	}
	return inputs
}
