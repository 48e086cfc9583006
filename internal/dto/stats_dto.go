package dto

import (
	"time"

	"github.com/App-Genius/topline-platform/internal/stats"
)

// StatsResponse bundles the behavior analytics for one time window.
type StatsResponse struct {
	BehaviorCounts   []stats.BehaviorCount `json:"behavior_counts"`
	DailyTrend       []stats.TrendPoint    `json:"daily_trend"`
	TopPerformers    []stats.Performer     `json:"top_performers"`
	BottomPerformers []stats.Performer     `json:"bottom_performers"`
	VerificationRate float64               `json:"verification_rate"`
	TotalLogs        int                   `json:"total_logs"`
	WindowDays       int                   `json:"window_days"`
	GeneratedAt      time.Time             `json:"generated_at"`
}

// ActorStreakResponse is one actor's activity streaks.
type ActorStreakResponse struct {
	ActorID       uint `json:"actor_id"`
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
}

// DistributionResponse summarizes the spread of daily activity counts.
type DistributionResponse struct {
	Mean                   float64 `json:"mean"`
	Median                 float64 `json:"median"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	P90                    float64 `json:"p90"`
}
