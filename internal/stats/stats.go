// Package stats analyzes behavior-log activity: count aggregations, streaks,
// daily trends, rates, and distribution measures. Like the rest of the
// analytics core it is pure and total: empty inputs yield zero values, never
// errors.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/App-Genius/topline-platform/internal/numeric"
)

// Log is one behavior occurrence as seen by the analyzer.
type Log struct {
	ActorID      uint
	ActorName    string
	BehaviorID   uint
	BehaviorName string
	Points       int
	Verified     bool
	CreatedAt    time.Time
}

// Mean is the arithmetic average, 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev is the population standard deviation (divide by N), rounded to two
// decimals.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return numeric.RoundTo(math.Sqrt(variance), 2)
}

// CoefficientOfVariation relates spread to the mean as a percentage.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return numeric.RoundTo(StdDev(values)/mean*100, 2)
}

// Median is the middle value of the sorted input, averaging the two middle
// values for even lengths.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// PercentileValue picks the value at percentile p using the nearest-rank
// method: index = ceil(p/100 × n) − 1, clamped to valid bounds.
func PercentileValue(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	idx := int(math.Ceil(p/100*float64(n))) - 1
	idx = int(numeric.Clamp(float64(idx), 0, float64(n-1)))
	return sorted[idx]
}

// MovingAverage smooths values over a sliding window, producing
// len(values)−window+1 points rounded to two decimals. Inputs shorter than
// the window yield an empty series.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 || len(values) < window {
		return []float64{}
	}

	out := make([]float64, 0, len(values)-window+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, numeric.RoundTo(sum/float64(window), 2))
		}
	}
	return out
}

// VerificationRate is the share of logs a manager has confirmed.
func VerificationRate(verified, total int) float64 {
	return numeric.Percent(float64(verified), float64(total))
}

// AttendanceRate is present/total as a whole-number percentage. Attendance
// is the one rate reported without decimals.
func AttendanceRate(present, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present) / float64(total) * 100)
}

// CompletionRate is the share of completed items as a percentage.
func CompletionRate(completed, total int) float64 {
	return numeric.Percent(float64(completed), float64(total))
}
