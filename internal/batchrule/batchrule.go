// Package batchrule loads named RRULE records from CSV, JSON, or YAML
// files and expands each one into its occurrence list.
package batchrule

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"rrule/internal/rrule"
)

// Format is one of the three batch file encodings this package accepts.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Record is a single named RRULE entry read from a batch file. Cutoff,
// when non-empty, is parsed as RFC3339 and passed to rrule.GenerateFrom
// instead of rrule.Generate.
type Record struct {
	Name   string
	RRule  string
	Cutoff string
	Count  string
}

// Result pairs a loaded Record with the occurrences its rule produced,
// or the error that prevented generation.
type Result struct {
	Record      Record
	Occurrences []time.Time
	Err         error
}

// DetectFormat infers the batch format from an explicit flag value
// ("auto" or "" falls back to the file extension).
func DetectFormat(flag, path string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "auto", "":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			return FormatCSV, nil
		case ".json":
			return FormatJSON, nil
		case ".yaml", ".yml":
			return FormatYAML, nil
		default:
			return "", fmt.Errorf("cannot infer format from %s; use --format csv|json|yaml", path)
		}
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use csv, json, or yaml)", flag)
	}
}

// LoadRecords reads every record from path using format.
func LoadRecords(path string, format Format) ([]Record, error) {
	switch format {
	case FormatCSV:
		return loadFromCSV(path)
	case FormatJSON:
		return loadFromJSON(path)
	case FormatYAML:
		return loadFromYAML(path)
	default:
		return nil, fmt.Errorf("unknown batch format %q", format)
	}
}

func loadFromCSV(path string) ([]Record, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		records = append(records, Record{
			Name:   csvValue(row, index, "name"),
			RRule:  csvValue(row, index, "rrule"),
			Cutoff: csvValue(row, index, "cutoff"),
			Count:  csvValue(row, index, "count"),
		})
	}
	return records, nil
}

func csvValue(row []string, index map[string]int, key string) string {
	if pos, ok := index[key]; ok && pos < len(row) {
		return strings.TrimSpace(row[pos])
	}
	return ""
}

func loadFromJSON(path string) ([]Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return recordsFromRaw(raw), nil
}

func loadFromYAML(path string) ([]Record, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	var raw []map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return recordsFromRaw(raw), nil
}

func recordsFromRaw(raw []map[string]interface{}) []Record {
	records := make([]Record, 0, len(raw))
	for _, item := range raw {
		records = append(records, Record{
			Name:   valueAsString(item["name"]),
			RRule:  valueAsString(item["rrule"]),
			Cutoff: valueAsString(item["cutoff"]),
			Count:  valueAsString(item["count"]),
		})
	}
	return records
}

func valueAsString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strings.TrimSpace(strconv.FormatFloat(x, 'g', -1, 64))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", x))
	}
}

// Expand parses and generates occurrences for every record, continuing
// past individual parse/generation failures so one bad row doesn't
// abort the whole batch.
func Expand(records []Record) []Result {
	results := make([]Result, 0, len(records))
	for _, rec := range records {
		results = append(results, expandOne(rec))
	}
	return results
}

func expandOne(rec Record) Result {
	rule, err := rrule.Parse(rec.RRule)
	if err != nil {
		return Result{Record: rec, Err: err}
	}

	if rec.Cutoff != "" {
		cutoff, err := time.Parse(time.RFC3339, rec.Cutoff)
		if err != nil {
			return Result{Record: rec, Err: fmt.Errorf("cutoff %q: %w", rec.Cutoff, err)}
		}
		occ, err := rrule.GenerateFrom(rule, cutoff)
		return Result{Record: rec, Occurrences: occ, Err: err}
	}

	occ, err := rrule.Generate(rule)
	return Result{Record: rec, Occurrences: occ, Err: err}
}
