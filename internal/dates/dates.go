// Package dates provides calendar arithmetic for the analytics core:
// day-of-year ordinals, leap-year rules, inclusive date ranges, and
// strict/safe parsing of calendar-date strings.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date string format. Lexicographic
// order on these strings matches chronological order.
const DateLayout = "2006-01-02"

// ErrInvalidDate reports a calendar-date string that could not be parsed.
var ErrInvalidDate = errors.New("invalid date")

// DateRange is an inclusive [Start, End] window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DayOfYear returns the 1-based ordinal day of t within its year.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// IsLeapYear applies the Gregorian rule: divisible by 4 and either not
// divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysRemaining counts the days left in t's year, excluding t itself.
func DaysRemaining(t time.Time) int {
	return DaysInYear(t.Year()) - DayOfYear(t)
}

// StartOfDay truncates t to 00:00:00.000 in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay clamps t to 23:59:59.999 in its location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// BuildDateRange returns the inclusive window [now-days, now], with the start
// clamped to the beginning of its day and the end to 23:59:59.999.
func BuildDateRange(now time.Time, days int) DateRange {
	return DateRange{
		Start: StartOfDay(now.AddDate(0, 0, -days)),
		End:   EndOfDay(now),
	}
}

// PreviousDateRange returns the days-length window immediately preceding the
// current one, non-overlapping.
func PreviousDateRange(now time.Time, days int) DateRange {
	end := now.AddDate(0, 0, -days-1)
	return DateRange{
		Start: StartOfDay(end.AddDate(0, 0, -days)),
		End:   EndOfDay(end),
	}
}

// MonthRange returns the inclusive window covering t's calendar month.
func MonthRange(t time.Time) DateRange {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return DateRange{Start: first, End: EndOfDay(last)}
}

// WeekRange returns the Monday-to-Sunday window containing t.
func WeekRange(t time.Time) DateRange {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
	return DateRange{Start: monday, End: EndOfDay(monday.AddDate(0, 0, 6))}
}

// AddDays shifts t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths shifts t by n calendar months.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsPast reports whether t's calendar day is strictly before ref's.
func IsPast(t, ref time.Time) bool {
	return StartOfDay(t).Before(StartOfDay(ref))
}

// IsFuture reports whether t's calendar day is strictly after ref's.
func IsFuture(t, ref time.Time) bool {
	return StartOfDay(t).After(StartOfDay(ref))
}

// ToDateString formats t as a canonical calendar-date string.
func ToDateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a canonical calendar-date string, failing with
// ErrInvalidDate for anything that does not parse.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseDateSafe is the non-failing variant of ParseDate for callers that
// prefer an ok flag over handling the error path.
func ParseDateSafe(s string) (time.Time, bool) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
