package stats

import (
	"sort"
	"time"

	"github.com/App-Genius/topline-platform/internal/dates"
	"github.com/App-Genius/topline-platform/internal/numeric"
)

// BehaviorCount is how often one tracked behavior was logged.
type BehaviorCount struct {
	BehaviorID   uint    `json:"behavior_id"`
	BehaviorName string  `json:"behavior_name"`
	Count        int     `json:"count"`
	Percent      float64 `json:"percent,omitempty"`
}

// Performer is one actor's activity count.
type Performer struct {
	ActorID   uint   `json:"actor_id"`
	ActorName string `json:"actor_name"`
	Count     int    `json:"count"`
}

// TrendPoint is one calendar day's activity count.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// BehaviorCounts groups logs by behavior and returns counts sorted
// descending, first-appearance order on ties.
func BehaviorCounts(logs []Log) []BehaviorCount {
	byBehavior := map[uint]int{}
	counts := make([]BehaviorCount, 0)

	for _, log := range logs {
		if idx, seen := byBehavior[log.BehaviorID]; seen {
			counts[idx].Count++
			continue
		}
		byBehavior[log.BehaviorID] = len(counts)
		counts = append(counts, BehaviorCount{
			BehaviorID:   log.BehaviorID,
			BehaviorName: log.BehaviorName,
			Count:        1,
		})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// BehaviorCountsWithPercent is BehaviorCounts with each count expressed as a
// share of the total.
func BehaviorCountsWithPercent(logs []Log) []BehaviorCount {
	counts := BehaviorCounts(logs)
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	for i := range counts {
		counts[i].Percent = numeric.Percent(float64(counts[i].Count), float64(total))
	}
	return counts
}

// ActorCounts groups logs by actor, sorted descending by count with
// first-appearance order on ties.
func ActorCounts(logs []Log) []Performer {
	byActor := map[uint]int{}
	performers := make([]Performer, 0)

	for _, log := range logs {
		if idx, seen := byActor[log.ActorID]; seen {
			performers[idx].Count++
			continue
		}
		byActor[log.ActorID] = len(performers)
		performers = append(performers, Performer{
			ActorID:   log.ActorID,
			ActorName: log.ActorName,
			Count:     1,
		})
	}

	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].Count > performers[j].Count
	})
	return performers
}

// TopPerformers returns the most active actors, at most limit of them.
func TopPerformers(performers []Performer, limit int) []Performer {
	out := append([]Performer(nil), performers...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BottomPerformers returns the least active actors, at most limit of them.
func BottomPerformers(performers []Performer, limit int) []Performer {
	out := append([]Performer(nil), performers...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count < out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CurrentStreak counts consecutive active calendar days walking backward
// from today, stopping at the first day with no activity. Unparseable
// entries in days are ignored.
func CurrentStreak(days []string, today time.Time) int {
	present := map[string]struct{}{}
	for _, d := range days {
		if _, ok := dates.ParseDateSafe(d); ok {
			present[d] = struct{}{}
		}
	}

	streak := 0
	cursor := dates.StartOfDay(today)
	for {
		if _, ok := present[dates.ToDateString(cursor)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak finds the longest run of consecutive calendar days in the
// set, regardless of where it ends.
func LongestStreak(days []string) int {
	parsed := make([]time.Time, 0, len(days))
	seen := map[string]struct{}{}
	for _, d := range days {
		t, ok := dates.ParseDateSafe(d)
		if !ok {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		parsed = append(parsed, t)
	}
	if len(parsed) == 0 {
		return 0
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })

	longest, run := 1, 1
	for i := 1; i < len(parsed); i++ {
		if parsed[i].Sub(parsed[i-1]) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 1
	}
	return longest
}

// DailyTrend buckets logs by calendar date and returns per-day counts in
// chronological order. Lexicographic order on date strings is chronological.
func DailyTrend(logs []Log) []TrendPoint {
	byDay := map[string]int{}
	for _, log := range logs {
		byDay[dates.ToDateString(log.CreatedAt)]++
	}

	trend := make([]TrendPoint, 0, len(byDay))
	for day, count := range byDay {
		trend = append(trend, TrendPoint{Date: day, Count: count})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

// FillTrendGaps expands a trend to one point per calendar day in
// [start, end] inclusive, defaulting missing days to zero.
func FillTrendGaps(trend []TrendPoint, start, end time.Time) []TrendPoint {
	counts := map[string]int{}
	for _, point := range trend {
		counts[point.Date] = point.Count
	}

	filled := make([]TrendPoint, 0)
	for cursor := dates.StartOfDay(start); !cursor.After(dates.StartOfDay(end)); cursor = cursor.AddDate(0, 0, 1) {
		day := dates.ToDateString(cursor)
		filled = append(filled, TrendPoint{Date: day, Count: counts[day]})
	}
	return filled
}
