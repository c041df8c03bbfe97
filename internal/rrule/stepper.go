package rrule

import (
	"fmt"
	"time"
)

// maxStepIterations bounds the inner search loop run by frequencies with
// BY* filters: once exceeded, the filter combination is treated as
// unsatisfiable rather than looping forever.
const maxStepIterations = 10000

// normalizeAnchor aligns the starting instant to the first value of each
// BY* component finer than the rule's own frequency, the way the source
// engine folds BYHOUR/BYMINUTE/BYSECOND/BYMONTH/BYMONTHDAY into the very
// first occurrence instead of waiting for the first step. Components at
// or coarser than the active frequency are left alone — a DAILY rule does
// not get its own day-of-month rewritten by a stray BYMONTHDAY.
func normalizeAnchor(r *Rule, t time.Time) time.Time {
	rank := frequencyRank[r.Frequency]

	if r.Frequency == Weekly {
		if wd, ok := first(r.ByDay, Weekday("")); ok {
			cur := weekdayFromTime(t.Weekday())
			t = t.AddDate(0, 0, weekdayDistance(cur, wd, false))
		}
	}

	if rank < frequencyRank[Monthly] {
		if month, ok := first(r.ByMonth, 0); ok {
			t = time.Date(t.Year(), time.Month(month), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		}
	}
	if rank < frequencyRank[Daily] {
		if day, ok := first(r.ByMonthDay, 0); ok {
			t = time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		}
	}
	if rank < frequencyRank[Hourly] {
		if h, ok := first(r.ByHour, 0); ok {
			t = time.Date(t.Year(), t.Month(), t.Day(), h, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
		}
	}
	if rank < frequencyRank[Minutely] {
		if m, ok := first(r.ByMinute, 0); ok {
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), m, t.Second(), t.Nanosecond(), t.Location())
		}
	}
	if rank < frequencyRank[Secondly] {
		if s, ok := first(r.BySecond, 0); ok {
			t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), s, t.Nanosecond(), t.Location())
		}
	}

	return t
}

// nextOccurrence advances current to the next instant the rule permits,
// dispatching on frequency.
func nextOccurrence(r *Rule, current time.Time) (time.Time, error) {
	switch r.Frequency {
	case Yearly:
		return stepYearly(r, current)
	case Monthly:
		return stepMonthly(r, current)
	case Weekly:
		return stepWeekly(r, current)
	case Daily, Hourly, Minutely, Secondly:
		return stepUniform(r, current)
	default:
		return time.Time{}, &GenerationError{Frequency: r.Frequency, Err: fmt.Errorf("unrecognized frequency %q", r.Frequency)}
	}
}

func withMonth(t time.Time, month time.Month) time.Time {
	return time.Date(t.Year(), month, t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func withDay(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func stepYearly(r *Rule, t time.Time) (time.Time, error) {
	month, hasMonth := first(r.ByMonth, 0)
	day, hasDay := first(r.ByMonthDay, 0)

	for i := 0; i < maxStepIterations; i++ {
		t = t.AddDate(r.Interval, 0, 0)
		if t.Year() > maxYear {
			return time.Time{}, &GenerationError{Frequency: Yearly, Err: ErrNoMatch}
		}

		candidate := t
		if hasMonth {
			candidate = withMonth(candidate, time.Month(month))
			if int(candidate.Month()) != month {
				continue
			}
		}
		if hasDay {
			candidate = withDay(candidate, day)
			if candidate.Day() != day {
				continue
			}
		}
		return candidate, nil
	}
	return time.Time{}, &GenerationError{Frequency: Yearly, Err: ErrNoMatch}
}

func stepMonthly(r *Rule, t time.Time) (time.Time, error) {
	day, hasDay := first(r.ByMonthDay, 0)
	wd, hasWd := first(r.ByDay, Weekday(""))

	for i := 0; i < maxStepIterations; i++ {
		t = addMonths(t, r.Interval)
		if t.Year() > maxYear {
			return time.Time{}, &GenerationError{Frequency: Monthly, Err: ErrNoMatch}
		}

		candidate := t
		if hasDay {
			candidate = withDay(candidate, day)
			if candidate.Day() != day {
				continue
			}
		}
		if hasWd && weekdayFromTime(candidate.Weekday()) != wd {
			continue
		}
		return candidate, nil
	}
	return time.Time{}, &GenerationError{Frequency: Monthly, Err: ErrNoMatch}
}

func stepWeekly(r *Rule, t time.Time) (time.Time, error) {
	wd, hasWd := first(r.ByDay, Weekday(""))
	if !hasWd {
		return t.AddDate(0, 0, 7*r.Interval), nil
	}

	cur := weekdayFromTime(t.Weekday())
	dist := weekdayDistance(cur, wd, true)
	if dist == 7 {
		// current already sits on the target weekday: the next
		// occurrence is a full interval of weeks away.
		dist = 7 * r.Interval
	}
	return t.AddDate(0, 0, dist), nil
}

func unitFor(f Frequency) time.Duration {
	switch f {
	case Daily:
		return 24 * time.Hour
	case Hourly:
		return time.Hour
	case Minutely:
		return time.Minute
	default:
		return time.Second
	}
}

func stepUniform(r *Rule, t time.Time) (time.Time, error) {
	unit := unitFor(r.Frequency)
	hour, hasHour := first(r.ByHour, -1)
	minute, hasMinute := first(r.ByMinute, -1)
	second, hasSecond := first(r.BySecond, -1)
	month, hasMonth := first(r.ByMonth, 0)
	wd, hasWd := first(r.ByDay, Weekday(""))

	for i := 0; i < maxStepIterations; i++ {
		t = t.Add(unit * time.Duration(r.Interval))
		if hasMonth && int(t.Month()) != month {
			continue
		}
		if hasWd && weekdayFromTime(t.Weekday()) != wd {
			continue
		}
		if hasHour && t.Hour() != hour {
			continue
		}
		if hasMinute && t.Minute() != minute {
			continue
		}
		if hasSecond && t.Second() != second {
			continue
		}
		return t, nil
	}
	return time.Time{}, &GenerationError{Frequency: r.Frequency, Err: ErrNoMatch}
}
