package game

import "time"

// DayResult is one business day's revenue against its target.
type DayResult struct {
	Date    time.Time
	Revenue float64
	Target  float64
}

func (r DayResult) won() bool {
	return r.Revenue >= r.Target
}

// WinningStreak counts consecutive wins walking backward from the most
// recent entry, stopping at the first loss. Results must be chronological.
func WinningStreak(results []DayResult) int {
	streak := 0
	for i := len(results) - 1; i >= 0; i-- {
		if !results[i].won() {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak scans the whole series for the longest run of wins.
func LongestStreak(results []DayResult) int {
	longest, run := 0, 0
	for _, r := range results {
		if r.won() {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	return longest
}
