package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		ytd          float64
		targetToDate float64
		yearlyTarget float64
		want         Status
	}{
		{"no prorated target", 1000, 0, 10000, StatusNeutral},
		{"no yearly target", 1000, 500, 0, StatusNeutral},
		{"at winning threshold", 1050, 1000, 10000, StatusWinning},
		{"above winning threshold", 1200, 1000, 10000, StatusWinning},
		{"at losing threshold", 950, 1000, 10000, StatusLosing},
		{"below losing threshold", 800, 1000, 10000, StatusLosing},
		{"inside neutral band", 1000, 1000, 10000, StatusNeutral},
		{"just inside upper band", 1049, 1000, 10000, StatusNeutral},
		{"yearly target reached", 10000, 1000, 10000, StatusCelebrating},
		{"celebrating beats losing ratio", 10000, 20000, 10000, StatusCelebrating},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.ytd, tc.targetToDate, tc.yearlyTarget))
		})
	}
}

func TestClassifyWithThresholds(t *testing.T) {
	tight := Thresholds{Winning: 1.01, Losing: 0.99}

	require.Equal(t, StatusWinning, ClassifyWithThresholds(1020, 1000, 10000, tight))
	require.Equal(t, StatusNeutral, Classify(1020, 1000, 10000), "default band is wider")
	require.Equal(t, StatusLosing, ClassifyWithThresholds(985, 1000, 10000, tight))
}

func TestTargetToDate(t *testing.T) {
	yearly := 365000.0

	jan1 := time.Date(2023, time.January, 1, 10, 0, 0, 0, time.UTC)
	require.Equal(t, 1000.0, TargetToDate(yearly, jan1))

	dec31 := time.Date(2023, time.December, 31, 10, 0, 0, 0, time.UTC)
	require.Equal(t, yearly, TargetToDate(yearly, dec31), "full year prorates to the full target")

	// Leap year spreads the same target across 366 days.
	leapJan1 := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	require.Equal(t, 997.0, TargetToDate(yearly, leapJan1))
}

func TestNewState(t *testing.T) {
	midYear := time.Date(2023, time.July, 2, 12, 0, 0, 0, time.UTC) // day 183 of 365

	state := NewState(260000, 500000, midYear)
	require.Equal(t, 250685.0, state.TargetScore)
	require.Equal(t, StatusNeutral, state.Status)
	require.Equal(t, 52.0, state.PercentComplete)
	require.Equal(t, 182, state.DaysRemaining)
	require.Equal(t, 260000.0, state.CurrentScore)
}

func TestNewStateWithoutTarget(t *testing.T) {
	now := time.Date(2023, time.July, 2, 12, 0, 0, 0, time.UTC)
	state := NewState(260000, 0, now)
	require.Equal(t, StatusNeutral, state.Status)
	require.Equal(t, 0.0, state.TargetScore)
	require.Equal(t, 0.0, state.PercentComplete)
}

func day(d int, revenue, target float64) DayResult {
	return DayResult{
		Date:    time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC),
		Revenue: revenue,
		Target:  target,
	}
}

func TestWinningStreak(t *testing.T) {
	results := []DayResult{
		day(1, 900, 1000),
		day(2, 1100, 1000),
		day(3, 1000, 1000), // meeting the target counts as a win
		day(4, 1200, 1000),
	}
	require.Equal(t, 3, WinningStreak(results))

	require.Equal(t, 0, WinningStreak([]DayResult{day(1, 900, 1000)}))
	require.Equal(t, 0, WinningStreak(nil))
}

func TestLongestStreak(t *testing.T) {
	results := []DayResult{
		day(1, 1100, 1000),
		day(2, 1100, 1000),
		day(3, 1100, 1000),
		day(4, 900, 1000),
		day(5, 1100, 1000),
	}
	require.Equal(t, 3, LongestStreak(results))
	require.Equal(t, 0, LongestStreak(nil))

	// The longest run is never shorter than the current one.
	require.GreaterOrEqual(t, LongestStreak(results), WinningStreak(results))
}
