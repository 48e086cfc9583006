// Package kpi computes the revenue and performance indicators shown on
// operator dashboards. Every function is total: degenerate denominators
// yield 0 instead of an error so sparse or brand-new locations never break
// the analytics path.
package kpi

import (
	"math"

	"github.com/App-Genius/topline-platform/internal/numeric"
)

// AverageCheck is revenue per cover, rounded to two decimals. Zero covers
// means no guests were served, so the average is 0.
func AverageCheck(revenue, covers float64) float64 {
	if covers <= 0 {
		return 0
	}
	return numeric.RoundTo(revenue/covers, 2)
}

// Trend is the percentage change from previous to current, 0 when there is
// no previous value to compare against.
func Trend(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return numeric.Percent(current-previous, previous)
}

// Variance is the percentage deviation of actual from budget. Positive
// means over budget.
func Variance(actual, budget float64) float64 {
	if budget == 0 {
		return 0
	}
	return numeric.Percent(actual-budget, budget)
}

// CostPercent expresses a cost as a percentage of revenue.
func CostPercent(cost, revenue float64) float64 {
	return numeric.Percent(cost, revenue)
}

// GrossMargin is the share of revenue left after cost, as a percentage.
func GrossMargin(revenue, cost float64) float64 {
	if revenue == 0 {
		return 0
	}
	return numeric.Percent(revenue-cost, revenue)
}

// CAGR is the compound annual growth rate between start and end over the
// given number of years, as a percentage.
func CAGR(start, end float64, years float64) float64 {
	if start <= 0 || years <= 0 {
		return 0
	}
	rate := math.Pow(end/start, 1/years) - 1
	return numeric.RoundTo(rate*100, 2)
}

// Progress is how far current has come toward target, as a percentage. It
// may exceed 100.
func Progress(current, target float64) float64 {
	return numeric.Percent(current, target)
}

// Remaining is the amount still needed to reach target, never negative.
func Remaining(current, target float64) float64 {
	return math.Max(target-current, 0)
}

// DailyRunRate is the amount per remaining day needed to close the gap to
// target. Already-met targets and exhausted calendars both yield 0.
func DailyRunRate(current, target float64, daysLeft int) float64 {
	if daysLeft <= 0 {
		return 0
	}
	gap := Remaining(current, target)
	if gap == 0 {
		return 0
	}
	return numeric.RoundTo(gap/float64(daysLeft), 2)
}

// PerCover spreads an amount across covers, two-decimal rounded.
func PerCover(amount float64, covers int) float64 {
	if covers <= 0 {
		return 0
	}
	return numeric.RoundTo(amount/float64(covers), 2)
}

// PaginationMeta describes one page of a list response.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Paginate derives page metadata for a list of total items split into
// limit-sized pages.
func Paginate(total int64, page, limit int) PaginationMeta {
	meta := PaginationMeta{Page: page, Limit: limit, TotalItems: total}
	if limit > 0 {
		meta.TotalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	meta.HasNext = page < meta.TotalPages
	meta.HasPrev = page > 1
	return meta
}
