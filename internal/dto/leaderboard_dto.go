package dto

import (
	"time"

	"github.com/App-Genius/topline-platform/internal/leaderboard"
)

// LeaderboardResponse is one ranked window of the standings.
type LeaderboardResponse struct {
	Entries     []leaderboard.Entry `json:"entries"`
	WindowDays  int                 `json:"window_days"`
	GeneratedAt time.Time           `json:"generated_at"`
	CacheHit    bool                `json:"cache_hit"`
}

// ActorRankResponse is a single actor's tie-aware standing.
type ActorRankResponse struct {
	ActorID          uint    `json:"actor_id"`
	Rank             int     `json:"rank"`
	Score            int     `json:"score"`
	Percentile       float64 `json:"percentile"`
	PointsToNextRank int     `json:"points_to_next_rank"`
}
