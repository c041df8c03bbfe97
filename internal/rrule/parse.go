package rrule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateTimeLayout     = "20060102T150405"
	dateTimeLayoutUTC  = "20060102T150405Z"
	textualAnchorLayout = "2006-01-02 15:04:05"
)

// Parse tokenizes and validates an RRULE string, returning the
// immutable Rule it denotes. Unknown clause names are ignored; a
// malformed clause or date literal yields a ParseError, as does a Rule
// that fails validation.
func Parse(input string) (*Rule, error) {
	clauses, err := tokenize(input)
	if err != nil {
		return nil, &ParseError{Input: input, Err: err}
	}

	r := &Rule{Interval: 1}
	seenDTStart := false

	for _, c := range clauses {
		switch c.Name {
		case "TZID":
			if r.TZID == "" {
				r.TZID = c.Value
			}
		case "DTSTART":
			if seenDTStart {
				continue // first DTSTART wins
			}
			seenDTStart = true
			if c.Zone != "" && r.TZID == "" {
				r.TZID = c.Zone
			}
			t, text, perr := parseAnchorValue(c.Value, c.Zone)
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("DTSTART: %w", perr)}
			}
			r.DTStart = t
			r.dtstartText = text
			r.hasDTStart = true
		case "UNTIL":
			t, text, perr := parseAnchorValue(c.Value, "")
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("UNTIL: %w", perr)}
			}
			r.Until = t
			r.untilText = text
			r.hasUntil = true
		case "FREQ":
			r.Frequency = Frequency(strings.ToUpper(c.Value))
		case "COUNT":
			n, perr := strconv.Atoi(c.Value)
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("COUNT: %w", perr)}
			}
			r.Count = n
			r.hasCount = true
		case "INTERVAL":
			n, perr := strconv.Atoi(c.Value)
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("INTERVAL: %w", perr)}
			}
			if n < 1 {
				n = 1
			}
			r.Interval = n
		case "WKST":
			r.WKST = Weekday(strings.ToUpper(c.Value))
		case "BYMONTH":
			ints, perr := parseIntList(splitList(c.Value))
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("BYMONTH: %w", perr)}
			}
			r.ByMonth = ints
		case "BYMONTHDAY":
			ints, perr := parseIntList(splitList(c.Value))
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("BYMONTHDAY: %w", perr)}
			}
			r.ByMonthDay = ints
		case "BYDAY":
			for _, d := range splitList(c.Value) {
				r.ByDay = append(r.ByDay, Weekday(strings.ToUpper(d)))
			}
		case "BYHOUR":
			ints, perr := parseIntList(splitList(c.Value))
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("BYHOUR: %w", perr)}
			}
			r.ByHour = ints
		case "BYMINUTE":
			ints, perr := parseIntList(splitList(c.Value))
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("BYMINUTE: %w", perr)}
			}
			r.ByMinute = ints
		case "BYSECOND":
			ints, perr := parseIntList(splitList(c.Value))
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("BYSECOND: %w", perr)}
			}
			r.BySecond = ints
		case "BYYEARDAY":
			ints, perr := parseIntList(splitList(c.Value))
			if perr != nil {
				return nil, &ParseError{Input: input, Err: fmt.Errorf("BYYEARDAY: %w", perr)}
			}
			r.ByYearDay = ints
		default:
			// Unknown clause names are silently ignored per RFC 5545 robustness.
		}
	}

	if ve := validateRule(r); ve.Any() {
		return nil, &ParseError{Input: input, Err: ve}
	}

	return r, nil
}

// parseAnchorValue parses a DTSTART/UNTIL literal. When zone is
// non-empty the value is interpreted as local civil time in that zone
// (the DTSTART;TZID=Zone:value compound form); otherwise a trailing 'Z'
// means UTC, and a bare literal is read as UTC as well. Anchor() later
// converts that instant into the rule's TZID, so a bare literal's
// wall-clock time is not kept as local time in that zone.
func parseAnchorValue(value, zone string) (time.Time, string, error) {
	if zone != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return time.Time{}, "", err
		}
		t, err := time.ParseInLocation(dateTimeLayout, value, loc)
		if err != nil {
			return time.Time{}, "", err
		}
		return t, t.Format(textualAnchorLayout) + " " + abbreviation(t), nil
	}

	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse(dateTimeLayoutUTC, value)
		if err != nil {
			return time.Time{}, "", err
		}
		return t, t.Format(textualAnchorLayout), nil
	}

	t, err := time.ParseInLocation(dateTimeLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, "", err
	}
	return t, t.Format(textualAnchorLayout), nil
}

func abbreviation(t time.Time) string {
	name, _ := t.Zone()
	return name
}

func parseIntList(raw []string) ([]int, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		out = append(out, n)
	}
	return out, nil
}
