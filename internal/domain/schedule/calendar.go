package schedule

import "time"

// Workday math over the plain Gregorian week: Saturday and Sunday are never
// bookable, there is no holiday calendar. All functions truncate to calendar
// days; time-of-day never participates in a comparison.

const lookaheadWorkdays = 5

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay is the last second of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return Day(t).AddDate(0, 0, 1).Add(-time.Second)
}

func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// NextWorkday returns the date exactly n workdays after from. The count starts
// on the day after from, so from itself is never counted even when it is a
// workday.
func NextWorkday(from time.Time, n int) time.Time {
	date := Day(from)
	count := 0
	for count != n {
		date = date.AddDate(0, 0, 1)
		if !IsWeekend(date) {
			count++
		}
	}
	return date
}

// NextValidDay is the default booking horizon: five workdays after today.
func NextValidDay(today time.Time) time.Time {
	return NextWorkday(today, lookaheadWorkdays)
}

// WorkdayWindow returns the next count workdays strictly after today, in
// ascending order.
func WorkdayWindow(today time.Time, count int) []time.Time {
	days := make([]time.Time, 0, count)
	date := Day(today)
	for len(days) != count {
		date = date.AddDate(0, 0, 1)
		if !IsWeekend(date) {
			days = append(days, date)
		}
	}
	return days
}
