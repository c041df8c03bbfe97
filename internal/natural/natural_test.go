package natural

import (
	"strings"
	"testing"
	"time"
)

func TestParseEveryWeekdayDetectsFiveDayByDay(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	p, err := Parse("every weekday at 9am", now)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if p.Frequency != "WEEKLY" {
		t.Errorf("Frequency = %q, want WEEKLY", p.Frequency)
	}
	if len(p.ByDay) != 5 {
		t.Errorf("ByDay = %v, want 5 weekday codes", p.ByDay)
	}
}

func TestParseDailyPhrase(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	p, err := Parse("every day at noon", now)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if p.Frequency != "DAILY" {
		t.Errorf("Frequency = %q, want DAILY", p.Frequency)
	}
}

func TestToRRuleIncludesByDay(t *testing.T) {
	p := Parsed{Start: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), Frequency: "WEEKLY", ByDay: []string{"MO", "WE"}}
	got := p.ToRRule()
	if !strings.Contains(got, "FREQ=WEEKLY") {
		t.Errorf("ToRRule() = %q, missing FREQ=WEEKLY", got)
	}
	if !strings.Contains(got, "BYDAY=MO,WE") {
		t.Errorf("ToRRule() = %q, missing BYDAY=MO,WE", got)
	}
}

func TestToRRuleDefaultsToDaily(t *testing.T) {
	p := Parsed{Start: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
	got := p.ToRRule()
	if !strings.Contains(got, "FREQ=DAILY") {
		t.Errorf("ToRRule() = %q, missing FREQ=DAILY", got)
	}
}
