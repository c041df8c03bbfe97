package batchrule

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectFormatFromExtension(t *testing.T) {
	cases := map[string]Format{
		"rules.csv":  FormatCSV,
		"rules.json": FormatJSON,
		"rules.yaml": FormatYAML,
		"rules.yml":  FormatYAML,
	}
	for path, want := range cases {
		got, err := DetectFormat("auto", path)
		if err != nil {
			t.Fatalf("DetectFormat(%q) returned error: %v", path, err)
		}
		if got != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestDetectFormatUnknownExtension(t *testing.T) {
	if _, err := DetectFormat("auto", "rules.txt"); err == nil {
		t.Fatal("expected an error for an unrecognized extension")
	}
}

func TestLoadFromCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.csv")
	content := "name,rrule,count\nstandup,FREQ=DAILY;COUNT=3,\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	records, err := LoadRecords(path, FormatCSV)
	if err != nil {
		t.Fatalf("LoadRecords returned error: %v", err)
	}
	if got, want := len(records), 1; got != want {
		t.Fatalf("len(records) = %d, want %d", got, want)
	}
	if records[0].Name != "standup" {
		t.Errorf("records[0].Name = %q, want standup", records[0].Name)
	}
	if records[0].RRule != "FREQ=DAILY;COUNT=3" {
		t.Errorf("records[0].RRule = %q, want FREQ=DAILY;COUNT=3", records[0].RRule)
	}
}

func TestLoadFromJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	content := `[{"name":"standup","rrule":"FREQ=DAILY;COUNT=3"}]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	records, err := LoadRecords(path, FormatJSON)
	if err != nil {
		t.Fatalf("LoadRecords returned error: %v", err)
	}
	if len(records) != 1 || records[0].Name != "standup" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestExpandProducesOccurrencesAndSkipsBadRows(t *testing.T) {
	records := []Record{
		{Name: "good", RRule: "FREQ=DAILY;COUNT=3"},
		{Name: "bad", RRule: "FREQ=NOPE"},
	}
	results := Expand(records)
	if got, want := len(results), 2; got != want {
		t.Fatalf("len(results) = %d, want %d", got, want)
	}
	if results[0].Err != nil {
		t.Errorf("results[0].Err = %v, want nil", results[0].Err)
	}
	if got, want := len(results[0].Occurrences), 3; got != want {
		t.Errorf("len(results[0].Occurrences) = %d, want %d", got, want)
	}
	if results[1].Err == nil {
		t.Error("results[1].Err = nil, want a parse error")
	}
}
