// Package leaderboard aggregates point-bearing behavior logs into a ranked
// standing per actor. Aggregation is local to each call; the input slice is
// never mutated.
package leaderboard

import (
	"math"
	"sort"
)

// DefaultLimit is how many entries a leaderboard shows when the caller does
// not ask for a specific size.
const DefaultLimit = 10

// Log is one point-bearing behavior occurrence, already scoped to the
// organization and time window by the caller.
type Log struct {
	ActorID   uint
	ActorName string
	Avatar    string
	Points    int
}

// Entry is one ranked row of the leaderboard.
type Entry struct {
	Rank         int     `json:"rank"`
	ActorID      uint    `json:"actor_id"`
	ActorName    string  `json:"actor_name"`
	Avatar       string  `json:"avatar"`
	Score        int     `json:"score"`
	Medal        string  `json:"medal,omitempty"`
	PercentOfTop float64 `json:"percent_of_top"`
}

// Build groups logs by actor, sums points, and returns the top entries
// sorted by score descending. Identity fields come from the first log seen
// for an actor. Ties keep first-appearance order (the sort is stable), and
// ranks are assigned within the truncated window only: an actor cut off by
// the limit never receives a rank.
func Build(logs []Log, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	entries := aggregate(logs)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	top := 0
	if len(entries) > 0 {
		top = entries[0].Score
	}
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].Medal = Medal(i + 1)
		entries[i].PercentOfTop = PercentOfTop(entries[i].Score, top)
	}
	return entries
}

func aggregate(logs []Log) []Entry {
	byActor := map[uint]int{}
	entries := make([]Entry, 0)

	for _, log := range logs {
		if idx, seen := byActor[log.ActorID]; seen {
			entries[idx].Score += log.Points
			continue
		}
		byActor[log.ActorID] = len(entries)
		entries = append(entries, Entry{
			ActorID:   log.ActorID,
			ActorName: log.ActorName,
			Avatar:    log.Avatar,
			Score:     log.Points,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// Medal maps the podium ranks to their badge, empty for everyone else.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "gold"
	case 2:
		return "silver"
	case 3:
		return "bronze"
	default:
		return ""
	}
}

// PercentOfTop expresses a score relative to the leader, whole-number
// rounded. A board with no leader yields 0.
func PercentOfTop(score, topScore int) float64 {
	if topScore == 0 {
		return 0
	}
	return math.Round(float64(score) / float64(topScore) * 100)
}

// Rank returns the actor's position within the truncated leaderboard, or 0
// if the actor did not make the board.
func Rank(logs []Log, actorID uint, limit int) int {
	for _, entry := range Build(logs, limit) {
		if entry.ActorID == actorID {
			return entry.Rank
		}
	}
	return 0
}

// RankWithTies returns the actor's tie-aware rank over the full standings:
// equal scores share the rank of the first entry holding that score. Used
// for single-actor lookups; the displayed board ignores ties.
func RankWithTies(logs []Log, actorID uint) int {
	entries := aggregate(logs)

	score, found := 0, false
	for _, entry := range entries {
		if entry.ActorID == actorID {
			score, found = entry.Score, true
			break
		}
	}
	if !found {
		return 0
	}

	for i, entry := range entries {
		if entry.Score == score {
			return i + 1
		}
	}
	return 0
}

// PointsToNextRank is how many points the actor needs to pass the entry
// above, tie included, or 0 when already first or absent.
func PointsToNextRank(entries []Entry, actorID uint) int {
	for i, entry := range entries {
		if entry.ActorID != actorID {
			continue
		}
		if i == 0 {
			return 0
		}
		return entries[i-1].Score - entry.Score + 1
	}
	return 0
}

// Percentile is the share of scores strictly below the given score,
// whole-number rounded.
func Percentile(score int, allScores []int) float64 {
	if len(allScores) == 0 {
		return 0
	}
	below := 0
	for _, s := range allScores {
		if s < score {
			below++
		}
	}
	return math.Round(float64(below) / float64(len(allScores)) * 100)
}
