package rrule

import (
	"encoding/json"
	"strconv"
	"time"
)

// FormatOccurrences renders a generated occurrence list as RFC3339
// timestamps at second precision, matching the external JSON interface.
func FormatOccurrences(times []time.Time) []string {
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.Truncate(time.Second).Format(time.RFC3339)
	}
	return out
}

// jsonRule mirrors the flat, string-valued JSON shape the source engine
// round-trips: every numeric field is rendered as a string, empty
// fields are omitted entirely, and DTSTART/UNTIL keep their formatted
// "YYYY-MM-DD HH:MM:SS[ ZZZ]" textual form rather than RFC3339.
type jsonRule struct {
	TZID       string   `json:"tzid,omitempty"`
	DTStart    string   `json:"dtstart,omitempty"`
	Until      string   `json:"until,omitempty"`
	Frequency  string   `json:"frequency,omitempty"`
	Count      string   `json:"count,omitempty"`
	Interval   string   `json:"interval,omitempty"`
	WKST       string   `json:"wkst,omitempty"`
	ByMonth    []string `json:"byMonth,omitempty"`
	ByHour     []string `json:"byHour,omitempty"`
	ByMinute   []string `json:"byMinute,omitempty"`
	BySecond   []string `json:"bySecond,omitempty"`
	ByDay      []string `json:"byDay,omitempty"`
	ByMonthDay []string `json:"byMonthDay,omitempty"`
	ByYearDay  []string `json:"byYearDay,omitempty"`
}

func intsToStrings(vals []int) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.Itoa(v)
	}
	return out
}

func stringsToInts(vals []string) ([]int, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func weekdaysToStrings(vals []Weekday) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// MarshalJSON renders the rule in the source engine's flat string shape.
func (r *Rule) MarshalJSON() ([]byte, error) {
	j := jsonRule{
		TZID:       r.TZID,
		DTStart:    r.dtstartText,
		Until:      r.untilText,
		Frequency:  string(r.Frequency),
		Interval:   strconv.Itoa(r.Interval),
		WKST:       string(r.WKST),
		ByMonth:    intsToStrings(r.ByMonth),
		ByHour:     intsToStrings(r.ByHour),
		ByMinute:   intsToStrings(r.ByMinute),
		BySecond:   intsToStrings(r.BySecond),
		ByDay:      weekdaysToStrings(r.ByDay),
		ByMonthDay: intsToStrings(r.ByMonthDay),
		ByYearDay:  intsToStrings(r.ByYearDay),
	}
	if r.hasCount {
		j.Count = strconv.Itoa(r.Count)
	}
	if r.Interval == 1 {
		// INTERVAL is left out whenever it is 1, whether it was parsed
		// explicitly or defaulted; reading it back restores the default.
		j.Interval = ""
	}
	return json.Marshal(j)
}

// UnmarshalJSON rebuilds a Rule from the flat string shape, re-parsing
// DTSTART/UNTIL and re-validating exactly as Parse does.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var j jsonRule
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}

	out := &Rule{TZID: j.TZID, Frequency: Frequency(j.Frequency), Interval: 1, WKST: Weekday(j.WKST)}

	if j.DTStart != "" {
		t, err := parseTextualAnchor(j.DTStart, j.TZID)
		if err != nil {
			return err
		}
		out.DTStart = t
		out.dtstartText = j.DTStart
		out.hasDTStart = true
	}
	if j.Until != "" {
		t, err := parseTextualAnchor(j.Until, j.TZID)
		if err != nil {
			return err
		}
		out.Until = t
		out.untilText = j.Until
		out.hasUntil = true
	}
	if j.Count != "" {
		n, err := strconv.Atoi(j.Count)
		if err != nil {
			return err
		}
		out.Count = n
		out.hasCount = true
	}
	if j.Interval != "" {
		n, err := strconv.Atoi(j.Interval)
		if err != nil {
			return err
		}
		out.Interval = n
	}

	var err error
	if out.ByMonth, err = stringsToInts(j.ByMonth); err != nil {
		return err
	}
	if out.ByHour, err = stringsToInts(j.ByHour); err != nil {
		return err
	}
	if out.ByMinute, err = stringsToInts(j.ByMinute); err != nil {
		return err
	}
	if out.BySecond, err = stringsToInts(j.BySecond); err != nil {
		return err
	}
	if out.ByMonthDay, err = stringsToInts(j.ByMonthDay); err != nil {
		return err
	}
	if out.ByYearDay, err = stringsToInts(j.ByYearDay); err != nil {
		return err
	}
	for _, d := range j.ByDay {
		out.ByDay = append(out.ByDay, Weekday(d))
	}

	if ve := validateRule(out); ve.Any() {
		return &ParseError{Input: string(data), Err: ve}
	}

	*r = *out
	return nil
}

// parseTextualAnchor reverses the "YYYY-MM-DD HH:MM:SS[ ZZZ]" format
// produced by parseAnchorValue. Text without a zone abbreviation came
// from a UTC or bare literal and is read as UTC. Text with one came from
// the DTSTART;TZID= form: the abbreviation is dropped and tzid (when
// present) resolves the location instead, since Go cannot reliably map
// an abbreviation like "AEST" back to a zone.
func parseTextualAnchor(text, tzid string) (time.Time, error) {
	loc := time.UTC
	if len(text) > len(textualAnchorLayout) {
		text = text[:len(textualAnchorLayout)]
		if tzid != "" {
			if l, err := time.LoadLocation(tzid); err == nil {
				loc = l
			}
		}
	}
	return time.ParseInLocation(textualAnchorLayout, text, loc)
}
