package rrule

import (
	"fmt"
	"strings"
)

// clause is one semicolon-delimited piece of an RRULE string, after the
// DTSTART;TZID=Zone:value compound form has been folded into a single
// token. Value is the raw text after '=' (or ':' for the compound
// DTSTART form); Zone is only set for that compound form.
type clause struct {
	Name  string
	Value string
	Zone  string
}

// tokenize splits an RRULE string into clauses. Clauses may appear in
// any order. Unknown clause names are preserved here and dropped later
// by the caller, matching RFC 5545's robustness principle.
func tokenize(input string) ([]clause, error) {
	segments := strings.Split(input, ";")
	clauses := make([]clause, 0, len(segments))

	for i := 0; i < len(segments); i++ {
		seg := strings.TrimSpace(segments[i])
		if seg == "" {
			continue
		}

		if seg == "DTSTART" && i+1 < len(segments) && strings.HasPrefix(segments[i+1], "TZID=") && strings.Contains(segments[i+1], ":") {
			rest := strings.TrimPrefix(segments[i+1], "TZID=")
			parts := strings.SplitN(rest, ":", 2)
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				return nil, fmt.Errorf("malformed DTSTART;TZID= clause: %q", segments[i+1])
			}
			clauses = append(clauses, clause{Name: "DTSTART", Value: parts[1], Zone: parts[0]})
			i++
			continue
		}

		eq := strings.IndexByte(seg, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed clause: %q", seg)
		}
		clauses = append(clauses, clause{Name: seg[:eq], Value: seg[eq+1:]})
	}

	return clauses, nil
}

// splitList splits a BY* clause value on ',' into ordered raw pieces.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
