package rrule

import "time"

// daysInMonth returns the Gregorian length of the given month, honoring
// leap years for February.
func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	default: // February
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// addMonths advances t by n months using the source engine's day-offset
// cascade: each step adds the number of days in t's *current* month,
// rather than clamping to the target month's length. A Jan-31 anchor
// stepping MONTHLY therefore drifts across months instead of pinning to
// the last day of shorter months.
func addMonths(t time.Time, n int) time.Time {
	for i := 0; i < n; i++ {
		t = t.AddDate(0, 0, daysInMonth(t.Year(), t.Month()))
	}
	return t
}

// weekdayIndex maps an iCalendar Weekday code to Monday=0..Sunday=6.
func weekdayIndex(w Weekday) int {
	switch w {
	case Monday:
		return 0
	case Tuesday:
		return 1
	case Wednesday:
		return 2
	case Thursday:
		return 3
	case Friday:
		return 4
	case Saturday:
		return 5
	default:
		return 6
	}
}

// weekdayDistance computes how many days forward from current one must
// travel to land on target. When current == target and forceFuture is
// false the distance is 0 (same day qualifies); when forceFuture is true
// the distance is 7 (the next occurrence of that weekday).
func weekdayDistance(current, target Weekday, forceFuture bool) int {
	d := (weekdayIndex(target) - weekdayIndex(current) + 7) % 7
	if d == 0 && forceFuture {
		return 7
	}
	return d
}
