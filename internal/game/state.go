// Package game classifies a location's revenue performance into a game
// status and tracks win streaks across daily results. Classification is a
// pure function of the inputs; nothing is persisted between calls.
package game

import (
	"math"
	"time"

	"github.com/App-Genius/topline-platform/internal/dates"
	"github.com/App-Genius/topline-platform/internal/numeric"
)

// Status is the game standing derived from revenue versus target.
type Status string

const (
	StatusNeutral     Status = "neutral"
	StatusWinning     Status = "winning"
	StatusLosing      Status = "losing"
	StatusCelebrating Status = "celebrating"
)

// Default classification thresholds: 5% ahead of the prorated target is
// winning, 5% behind is losing.
const (
	DefaultWinningThreshold = 1.05
	DefaultLosingThreshold  = 0.95
)

// Thresholds configures the winning/losing cutoffs for classification.
type Thresholds struct {
	Winning float64
	Losing  float64
}

// DefaultThresholds returns the standard 1.05/0.95 cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Winning: DefaultWinningThreshold, Losing: DefaultLosingThreshold}
}

// State is the derived game standing handed to the presentation layer.
type State struct {
	Status          Status  `json:"status"`
	PercentComplete float64 `json:"percent_complete"`
	DaysRemaining   int     `json:"days_remaining"`
	CurrentScore    float64 `json:"current_score"`
	TargetScore     float64 `json:"target_score"`
}

// Classify determines the status for year-to-date revenue against the
// prorated and yearly targets using the default thresholds.
func Classify(ytdRevenue, targetToDate, yearlyTarget float64) Status {
	return ClassifyWithThresholds(ytdRevenue, targetToDate, yearlyTarget, DefaultThresholds())
}

// ClassifyWithThresholds is Classify with caller-supplied cutoffs.
// Celebrating is checked before the ratio test: once the yearly target is
// reached the status holds regardless of the day's pace.
func ClassifyWithThresholds(ytdRevenue, targetToDate, yearlyTarget float64, th Thresholds) Status {
	if targetToDate == 0 || yearlyTarget == 0 {
		return StatusNeutral
	}
	if ytdRevenue >= yearlyTarget {
		return StatusCelebrating
	}

	progress := ytdRevenue / targetToDate
	switch {
	case progress >= th.Winning:
		return StatusWinning
	case progress <= th.Losing:
		return StatusLosing
	default:
		return StatusNeutral
	}
}

// TargetToDate linearly prorates a yearly target to the given date's
// position in the year.
func TargetToDate(yearlyTarget float64, date time.Time) float64 {
	days := dates.DaysInYear(date.Year())
	return math.Round(yearlyTarget * float64(dates.DayOfYear(date)) / float64(days))
}

// NewState assembles the full game standing for a date, proration included.
func NewState(ytdRevenue, yearlyTarget float64, date time.Time) State {
	target := TargetToDate(yearlyTarget, date)
	return State{
		Status:          Classify(ytdRevenue, target, yearlyTarget),
		PercentComplete: numeric.Percent(ytdRevenue, yearlyTarget),
		DaysRemaining:   dates.DaysRemaining(date),
		CurrentScore:    ytdRevenue,
		TargetScore:     target,
	}
}
