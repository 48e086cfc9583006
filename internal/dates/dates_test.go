package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 30, 0, 0, time.UTC)
}

func TestDayOfYear(t *testing.T) {
	require.Equal(t, 1, DayOfYear(date(2024, time.January, 1)))
	require.Equal(t, 366, DayOfYear(date(2024, time.December, 31)), "leap year Dec 31")
	require.Equal(t, 365, DayOfYear(date(2023, time.December, 31)), "non-leap Dec 31")
	require.Equal(t, 60, DayOfYear(date(2024, time.February, 29)))
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2100, false},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, IsLeapYear(tc.year), "year %d", tc.year)
		wantDays := 365
		if tc.want {
			wantDays = 366
		}
		require.Equal(t, wantDays, DaysInYear(tc.year))
	}
}

func TestDaysRemaining(t *testing.T) {
	require.Equal(t, 0, DaysRemaining(date(2023, time.December, 31)))
	require.Equal(t, 0, DaysRemaining(date(2024, time.December, 31)))
	require.Equal(t, 365, DaysRemaining(date(2024, time.January, 1)))
	require.Equal(t, 364, DaysRemaining(date(2023, time.January, 1)))
}

func TestBuildDateRange(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 45, 12, 0, time.UTC)

	r := BuildDateRange(now, 7)
	require.Equal(t, time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC), r.Start)
	require.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, 999_000_000, time.UTC), r.End)
}

func TestPreviousDateRangeDoesNotOverlap(t *testing.T) {
	now := time.Date(2024, time.March, 15, 14, 45, 12, 0, time.UTC)

	current := BuildDateRange(now, 7)
	previous := PreviousDateRange(now, 7)

	require.True(t, previous.End.Before(current.Start))
	require.Equal(t, time.Date(2024, time.March, 7, 23, 59, 59, 999_000_000, time.UTC), previous.End)
	require.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), previous.Start)
}

func TestMonthRange(t *testing.T) {
	r := MonthRange(date(2024, time.February, 10))
	require.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), r.Start)
	require.Equal(t, 29, r.End.Day(), "leap February runs through the 29th")
}

func TestWeekRange(t *testing.T) {
	// 2024-03-13 is a Wednesday.
	r := WeekRange(date(2024, time.March, 13))
	require.Equal(t, time.Weekday(time.Monday), r.Start.Weekday())
	require.Equal(t, 11, r.Start.Day())
	require.Equal(t, 17, r.End.Day())

	// Sunday belongs to the week that started the previous Monday.
	sunday := WeekRange(date(2024, time.March, 17))
	require.Equal(t, 11, sunday.Start.Day())
}

func TestSameDayAndOrdering(t *testing.T) {
	a := time.Date(2024, time.March, 15, 0, 1, 0, 0, time.UTC)
	b := time.Date(2024, time.March, 15, 23, 0, 0, 0, time.UTC)
	c := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)

	require.True(t, SameDay(a, b))
	require.False(t, SameDay(a, c))
	require.True(t, IsPast(a, c))
	require.False(t, IsPast(a, b), "same day is neither past nor future")
	require.True(t, IsFuture(c, a))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	require.Equal(t, "2024-03-15", ToDateString(parsed))

	_, err = ParseDate("not-a-date")
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("2024-13-45")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDateSafe(t *testing.T) {
	parsed, ok := ParseDateSafe("2024-03-15")
	require.True(t, ok)
	require.Equal(t, 15, parsed.Day())

	_, ok = ParseDateSafe("garbage")
	require.False(t, ok)
}

func TestAddDaysAndMonths(t *testing.T) {
	base := date(2024, time.January, 31)
	require.Equal(t, 5, AddDays(base, 5).Day())
	require.Equal(t, time.Month(time.February), AddDays(base, 1).Month())
	require.Equal(t, time.Month(time.March), AddMonths(base, 1).Month(), "Jan 31 + 1 month normalizes into March")
}
