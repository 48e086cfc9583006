package dto

import (
	"time"

	"github.com/App-Genius/topline-platform/internal/game"
)

// DashboardResponse is the game standing plus the day-level KPIs shown on
// the home screen.
type DashboardResponse struct {
	Game          game.State `json:"game"`
	YearlyTarget  float64    `json:"yearly_target"`
	DailyRunRate  float64    `json:"daily_run_rate"`
	AverageCheck  float64    `json:"average_check"`
	RevenueTrend  float64    `json:"revenue_trend"`
	WinningStreak int        `json:"winning_streak"`
	LongestStreak int        `json:"longest_streak"`
	GeneratedAt   time.Time  `json:"generated_at"`
	CacheHit      bool       `json:"cache_hit"`
}

// DailyEntryRequest records one business day's revenue.
type DailyEntryRequest struct {
	Date         string  `json:"date" validate:"required"`
	TotalRevenue float64 `json:"total_revenue" validate:"gte=0"`
	TotalCovers  int     `json:"total_covers" validate:"gte=0"`
}

// BenchmarkRequest sets the yearly target a location plays against.
type BenchmarkRequest struct {
	Year             int     `json:"year" validate:"required,gte=2000"`
	TotalRevenue     float64 `json:"total_revenue" validate:"gte=0"`
	DaysOpen         int     `json:"days_open" validate:"gte=0,lte=366"`
	BaselineAvgCheck float64 `json:"baseline_avg_check" validate:"gte=0"`
	BaselineRating   float64 `json:"baseline_rating" validate:"gte=0,lte=5"`
}
