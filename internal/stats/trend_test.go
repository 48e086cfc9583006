package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func logAt(actorID, behaviorID uint, name string, day int) Log {
	return Log{
		ActorID:      actorID,
		BehaviorID:   behaviorID,
		BehaviorName: name,
		CreatedAt:    time.Date(2024, time.March, day, 15, 0, 0, 0, time.UTC),
	}
}

func TestBehaviorCounts(t *testing.T) {
	logs := []Log{
		logAt(1, 10, "upsell", 1),
		logAt(2, 10, "upsell", 1),
		logAt(1, 20, "greet", 2),
		logAt(3, 10, "upsell", 3),
	}

	counts := BehaviorCounts(logs)
	require.Len(t, counts, 2)
	require.Equal(t, "upsell", counts[0].BehaviorName)
	require.Equal(t, 3, counts[0].Count)
	require.Equal(t, 1, counts[1].Count)

	require.Empty(t, BehaviorCounts(nil))
}

func TestBehaviorCountsWithPercent(t *testing.T) {
	logs := []Log{
		logAt(1, 10, "upsell", 1),
		logAt(2, 10, "upsell", 1),
		logAt(1, 20, "greet", 2),
		logAt(3, 10, "upsell", 3),
	}

	counts := BehaviorCountsWithPercent(logs)
	require.Equal(t, 75.0, counts[0].Percent)
	require.Equal(t, 25.0, counts[1].Percent)
}

func TestActorCountsAndPerformers(t *testing.T) {
	logs := []Log{
		{ActorID: 1, ActorName: "Ana"},
		{ActorID: 2, ActorName: "Ben"},
		{ActorID: 1, ActorName: "Ana"},
		{ActorID: 3, ActorName: "Cam"},
		{ActorID: 1, ActorName: "Ana"},
		{ActorID: 2, ActorName: "Ben"},
	}

	performers := ActorCounts(logs)
	require.Equal(t, []Performer{
		{ActorID: 1, ActorName: "Ana", Count: 3},
		{ActorID: 2, ActorName: "Ben", Count: 2},
		{ActorID: 3, ActorName: "Cam", Count: 1},
	}, performers)

	top := TopPerformers(performers, 2)
	require.Len(t, top, 2)
	require.Equal(t, uint(1), top[0].ActorID)

	bottom := BottomPerformers(performers, 2)
	require.Len(t, bottom, 2)
	require.Equal(t, uint(3), bottom[0].ActorID)

	// Slicing a copy leaves the source order untouched.
	require.Equal(t, uint(1), performers[0].ActorID)
}

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	days := []string{"2024-03-15", "2024-03-14", "2024-03-13", "2024-03-11"}
	require.Equal(t, 3, CurrentStreak(days, today), "stops at the first missing day")

	require.Equal(t, 0, CurrentStreak([]string{"2024-03-14"}, today), "no activity today means no streak")
	require.Equal(t, 0, CurrentStreak(nil, today))
	require.Equal(t, 1, CurrentStreak([]string{"2024-03-15", "bogus"}, today), "invalid dates are ignored")
}

func TestLongestStreak(t *testing.T) {
	days := []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-05", "2024-03-06"}
	require.Equal(t, 3, LongestStreak(days))

	require.Equal(t, 1, LongestStreak([]string{"2024-03-01"}))
	require.Equal(t, 0, LongestStreak(nil))
	require.Equal(t, 2, LongestStreak([]string{"2024-03-02", "2024-03-01", "2024-03-01"}), "duplicates collapse")

	// Month boundary still counts as consecutive days.
	require.Equal(t, 2, LongestStreak([]string{"2024-02-29", "2024-03-01"}))
}

func TestLongestStreakCoversCurrent(t *testing.T) {
	today := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	days := []string{"2024-03-15", "2024-03-14", "2024-03-10", "2024-03-09", "2024-03-08"}

	require.GreaterOrEqual(t, LongestStreak(days), CurrentStreak(days, today))
}

func TestDailyTrend(t *testing.T) {
	logs := []Log{
		logAt(1, 10, "upsell", 3),
		logAt(1, 10, "upsell", 1),
		logAt(2, 10, "upsell", 3),
		logAt(3, 10, "upsell", 2),
	}

	trend := DailyTrend(logs)
	require.Equal(t, []TrendPoint{
		{Date: "2024-03-01", Count: 1},
		{Date: "2024-03-02", Count: 1},
		{Date: "2024-03-03", Count: 2},
	}, trend)
}

func TestFillTrendGaps(t *testing.T) {
	trend := []TrendPoint{
		{Date: "2024-03-01", Count: 2},
		{Date: "2024-03-04", Count: 1},
	}
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	filled := FillTrendGaps(trend, start, end)
	require.Len(t, filled, 5, "one point per inclusive day")
	require.Equal(t, TrendPoint{Date: "2024-03-01", Count: 2}, filled[0])
	require.Equal(t, TrendPoint{Date: "2024-03-02", Count: 0}, filled[1])
	require.Equal(t, TrendPoint{Date: "2024-03-03", Count: 0}, filled[2])
	require.Equal(t, TrendPoint{Date: "2024-03-04", Count: 1}, filled[3])
	require.Equal(t, TrendPoint{Date: "2024-03-05", Count: 0}, filled[4])
}

func TestFillTrendGapsSingleDay(t *testing.T) {
	day := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	filled := FillTrendGaps(nil, day, day)
	require.Equal(t, []TrendPoint{{Date: "2024-03-01", Count: 0}}, filled)
}
