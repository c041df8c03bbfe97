package main

import (
	"testing"
)

func TestAtoiSafe(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"simple", "5", 5},
		{"multi-digit", "52", 52},
		{"empty", "", 0},
		{"whitespace", "  ", 0},
		{"non-numeric", "abc", 0},
		{"negative sign rejected", "-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := atoiSafe(tt.input); got != tt.want {
				t.Errorf("atoiSafe(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name string
		vals []string
		want string
	}{
		{"first wins", []string{"a", "b"}, "a"},
		{"skips empty", []string{"", "b"}, "b"},
		{"skips whitespace", []string{"   ", "c"}, "c"},
		{"all empty", []string{"", "  "}, ""},
		{"no args", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstNonEmpty(tt.vals...); got != tt.want {
				t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.vals, got, tt.want)
			}
		})
	}
}

func TestInterpretDailyForever(t *testing.T) {
	got := interpret("FREQ=DAILY")
	want := "Every daily, forever"
	if got != want {
		t.Errorf("interpret(FREQ=DAILY) = %q, want %q", got, want)
	}
}

func TestInterpretWeeklyWithCountAndByDay(t *testing.T) {
	got := interpret("FREQ=WEEKLY;INTERVAL=2;BYDAY=TU,TH;COUNT=10")
	want := "Every 2 weeklys on TU,TH, 10 times"
	if got != want {
		t.Errorf("interpret(...) = %q, want %q", got, want)
	}
}

func TestRunValidateRejectsBadFrequency(t *testing.T) {
	if err := runValidate(nil, []string{"FREQ=FORTNIGHTLY"}); err == nil {
		t.Fatal("expected runValidate to fail for an unrecognized FREQ")
	}
}

func TestRunValidateAcceptsGoodRule(t *testing.T) {
	if err := runValidate(nil, []string{"FREQ=DAILY;COUNT=3"}); err != nil {
		t.Fatalf("runValidate returned error for a valid rule: %v", err)
	}
}

func TestResolveCutoffNow(t *testing.T) {
	if _, err := resolveCutoff("now"); err != nil {
		t.Fatalf("resolveCutoff(now) returned error: %v", err)
	}
}

func TestResolveCutoffOffset(t *testing.T) {
	if _, err := resolveCutoff("+24h"); err != nil {
		t.Fatalf("resolveCutoff(+24h) returned error: %v", err)
	}
}

func TestResolveCutoffRejectsGarbage(t *testing.T) {
	if _, err := resolveCutoff("not-a-time"); err == nil {
		t.Fatal("expected resolveCutoff to reject an unparseable cutoff")
	}
}
