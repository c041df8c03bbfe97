package rrule

import (
	"strings"
	"testing"
	"time"
)

func TestParseDaily(t *testing.T) {
	r, err := Parse("FREQ=DAILY")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if r.Frequency != Daily {
		t.Errorf("Frequency = %q, want DAILY", r.Frequency)
	}
	if r.Interval != 1 {
		t.Errorf("Interval = %d, want 1", r.Interval)
	}
}

func TestParseWithDTStartAndTZID(t *testing.T) {
	r, err := Parse("DTSTART;TZID=Australia/Perth:19970714T133000;FREQ=WEEKLY;UNTIL=20190422T133500;BYHOUR=8,12;BYMINUTE=30,45;BYDAY=TU,SU")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if r.TZID != "Australia/Perth" {
		t.Errorf("TZID = %q, want Australia/Perth", r.TZID)
	}
	if !r.HasDTStart() {
		t.Fatal("expected DTSTART to be set")
	}
	if !r.HasUntil() {
		t.Fatal("expected UNTIL to be set")
	}
	if got, want := len(r.ByHour), 2; got != want {
		t.Errorf("len(ByHour) = %d, want %d", got, want)
	}
	if got, want := r.ByDay[0], Tuesday; got != want {
		t.Errorf("ByDay[0] = %q, want %q", got, want)
	}
}

func TestParseMalformedClause(t *testing.T) {
	if _, err := Parse("FREQ=DAILY;BOGUS"); err == nil {
		t.Fatal("expected an error for a clause with no '='")
	}
}

func TestParseUnknownFrequencyFails(t *testing.T) {
	if _, err := Parse("FREQ=FORTNIGHTLY"); err == nil {
		t.Fatal("expected validation to reject an unrecognized FREQ")
	}
}

func TestParseOutOfRangeByMonth(t *testing.T) {
	_, err := Parse("FREQ=YEARLY;BYMONTH=13")
	if err == nil {
		t.Fatal("expected a validation error for BYMONTH=13")
	}
	if !strings.Contains(err.Error(), "BYMONTH") {
		t.Errorf("error %q does not mention BYMONTH", err.Error())
	}
}

func TestGenerateDailyCount(t *testing.T) {
	r, err := Parse("DTSTART=20260101T090000;FREQ=DAILY;COUNT=3")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	occurrences, err := Generate(r)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got, want := len(occurrences), 3; got != want {
		t.Fatalf("len(occurrences) = %d, want %d", got, want)
	}
	if want := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC); !occurrences[0].Equal(want) {
		t.Errorf("occurrences[0] = %v, want %v (the anchor itself is never emitted)", occurrences[0], want)
	}
	for i := 1; i < len(occurrences); i++ {
		if diff := occurrences[i].Sub(occurrences[i-1]); diff != 24*time.Hour {
			t.Errorf("occurrences[%d]-occurrences[%d] = %v, want 24h", i, i-1, diff)
		}
	}
}

func TestGenerateWeeklyByDay(t *testing.T) {
	r, err := Parse("DTSTART=20260102T090000;FREQ=WEEKLY;BYDAY=TU;COUNT=4")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	occurrences, err := Generate(r)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for _, occ := range occurrences {
		if occ.Weekday() != time.Tuesday {
			t.Errorf("occurrence %v falls on %s, want Tuesday", occ, occ.Weekday())
		}
	}
}

func TestGenerateDailyHonorsByDay(t *testing.T) {
	r, err := Parse("DTSTART=20260101T000000;FREQ=DAILY;BYDAY=WE;COUNT=4")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	occurrences, err := Generate(r)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for _, occ := range occurrences {
		if occ.Weekday() != time.Wednesday {
			t.Errorf("occurrence %v falls on %s, want Wednesday", occ, occ.Weekday())
		}
	}
}

func TestGenerateHourlyHonorsByDay(t *testing.T) {
	r, err := Parse("DTSTART=20260101T000000;FREQ=HOURLY;BYDAY=TH;COUNT=4")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	occurrences, err := Generate(r)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	for _, occ := range occurrences {
		if occ.Weekday() != time.Thursday {
			t.Errorf("occurrence %v falls on %s, want Thursday", occ, occ.Weekday())
		}
	}
}

func TestGenerateRespectsUntil(t *testing.T) {
	r, err := Parse("DTSTART=20260101T000000;FREQ=DAILY;UNTIL=20260103T000000")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	occurrences, err := Generate(r)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	last := occurrences[len(occurrences)-1]
	if last.After(r.Until) {
		t.Errorf("last occurrence %v is after UNTIL %v", last, r.Until)
	}
}

func TestGenerateDefaultCountWithoutCountOrUntil(t *testing.T) {
	r, err := Parse("DTSTART=20260101T000000;FREQ=DAILY")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	occurrences, err := Generate(r)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got, want := len(occurrences), DefaultCount; got != want {
		t.Errorf("len(occurrences) = %d, want %d", got, want)
	}
}

func TestGenerateFromCutoffSkipsEarlierOccurrences(t *testing.T) {
	r, err := Parse("DTSTART=20260101T000000;FREQ=DAILY;COUNT=10")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	cutoff := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	occurrences, err := GenerateFrom(r, cutoff)
	if err != nil {
		t.Fatalf("GenerateFrom returned error: %v", err)
	}
	for _, occ := range occurrences {
		if occ.Before(cutoff) {
			t.Errorf("occurrence %v is before cutoff %v", occ, cutoff)
		}
	}
}

func TestWeekdayDistance(t *testing.T) {
	cases := []struct {
		current, target Weekday
		forceFuture      bool
		want             int
	}{
		{Monday, Monday, false, 0},
		{Monday, Monday, true, 7},
		{Monday, Wednesday, false, 2},
		{Sunday, Monday, false, 1},
		{Wednesday, Monday, false, 5},
	}
	for _, c := range cases {
		if got := weekdayDistance(c.current, c.target, c.forceFuture); got != c.want {
			t.Errorf("weekdayDistance(%s, %s, %v) = %d, want %d", c.current, c.target, c.forceFuture, got, c.want)
		}
	}
}

func TestAddMonthsCascadesPastShortMonths(t *testing.T) {
	jan31 := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	next := addMonths(jan31, 1)
	if next.Month() == time.February && next.Day() == 28 {
		t.Errorf("addMonths clamped to month end %v; source engine cascades instead", next)
	}
}

func TestJSONRoundTripWeekly(t *testing.T) {
	r, err := Parse("DTSTART;TZID=Australia/Perth:19970714T133000;FREQ=WEEKLY;UNTIL=20190422T133500;INTERVAL=1;BYHOUR=8,12;BYMINUTE=30,45;BYDAY=TU,SU")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	data, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	var round Rule
	if err := round.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON returned error: %v", err)
	}
	if round.Frequency != Weekly {
		t.Errorf("round-tripped Frequency = %q, want WEEKLY", round.Frequency)
	}
	if round.TZID != "Australia/Perth" {
		t.Errorf("round-tripped TZID = %q, want Australia/Perth", round.TZID)
	}
	if len(round.ByDay) != 2 || round.ByDay[0] != Tuesday {
		t.Errorf("round-tripped ByDay = %v, want [TU SU]", round.ByDay)
	}
}

func TestJSONOmitsEmptyFields(t *testing.T) {
	r, err := Parse("FREQ=DAILY")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	data, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if strings.Contains(string(data), "byHour") {
		t.Errorf("expected no byHour field in %s", data)
	}
	if !strings.Contains(string(data), `"frequency":"DAILY"`) {
		t.Errorf("expected frequency field in %s", data)
	}
}

func TestFormatOccurrencesIsRFC3339(t *testing.T) {
	times := []time.Time{time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	out := FormatOccurrences(times)
	if got, want := out[0], "2026-01-01T09:00:00Z"; got != want {
		t.Errorf("FormatOccurrences = %q, want %q", got, want)
	}
}
