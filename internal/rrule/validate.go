package rrule

import (
	"fmt"
	"time"
)

// validateRule range-checks every BY* field and the resolvability of
// TZID, collecting every failure rather than stopping at the first.
func validateRule(r *Rule) *ValidationError {
	ve := &ValidationError{}

	switch r.Frequency {
	case Yearly, Monthly, Weekly, Daily, Hourly, Minutely, Secondly:
	default:
		ve.Failures = append(ve.Failures, fmt.Sprintf("FREQ %q is not a recognized frequency; ", r.Frequency))
	}

	if r.TZID != "" {
		if _, err := time.LoadLocation(r.TZID); err != nil {
			ve.Failures = append(ve.Failures, fmt.Sprintf("TZID %q could not be resolved: %v; ", r.TZID, err))
		}
	}

	if r.hasCount && r.Count < 1 {
		ve.Failures = append(ve.Failures, fmt.Sprintf("COUNT %d must be at least 1; ", r.Count))
	}

	checkRange(ve, "BYMONTH", r.ByMonth, 1, 12)
	checkRange(ve, "BYMONTHDAY", r.ByMonthDay, 1, 31)
	checkRange(ve, "BYYEARDAY", r.ByYearDay, 1, 366)
	checkRange(ve, "BYHOUR", r.ByHour, 0, 23)
	checkRange(ve, "BYMINUTE", r.ByMinute, 0, 59)
	checkRange(ve, "BYSECOND", r.BySecond, 0, 60)

	for _, d := range r.ByDay {
		switch d {
		case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		default:
			ve.Failures = append(ve.Failures, fmt.Sprintf("BYDAY %q is not a recognized weekday; ", d))
		}
	}

	if r.WKST != "" {
		switch r.WKST {
		case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		default:
			ve.Failures = append(ve.Failures, fmt.Sprintf("WKST %q is not a recognized weekday; ", r.WKST))
		}
	}

	return ve
}

func checkRange(ve *ValidationError, name string, vals []int, lo, hi int) {
	for _, v := range vals {
		if v < lo || v > hi {
			ve.Failures = append(ve.Failures, fmt.Sprintf("%s value %d is outside the range %d..%d; ", name, v, lo, hi))
		}
	}
}
