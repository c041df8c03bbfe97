package rrule

import "time"

// Generate enumerates the rule's occurrences from its anchor, stopping
// once EffectiveCount() instants have been produced or, if UNTIL is
// set, before emitting anything strictly after it.
func Generate(r *Rule) ([]time.Time, error) {
	anchor, err := r.Anchor()
	if err != nil {
		return nil, err
	}
	anchor = normalizeAnchor(r, anchor)

	budget := r.EffectiveCount()
	out := make([]time.Time, 0, budget)

	current := anchor
	for len(out) < budget {
		next, err := nextOccurrence(r, current)
		if err != nil {
			return nil, err
		}
		if r.HasUntil() && next.After(r.Until) {
			break
		}
		out = append(out, next)
		current = next
	}
	return out, nil
}

// GenerateFrom enumerates occurrences at or after cutoff, continuing
// past instants before cutoff without counting them against the budget,
// until EffectiveCount() qualifying occurrences have been collected or
// UNTIL is reached.
func GenerateFrom(r *Rule, cutoff time.Time) ([]time.Time, error) {
	anchor, err := r.Anchor()
	if err != nil {
		return nil, err
	}
	anchor = normalizeAnchor(r, anchor)

	budget := r.EffectiveCount()
	out := make([]time.Time, 0, budget)

	current := anchor
	for len(out) < budget {
		next, err := nextOccurrence(r, current)
		if err != nil {
			return nil, err
		}
		if r.HasUntil() && next.After(r.Until) {
			break
		}
		current = next
		if next.Before(cutoff) {
			continue
		}
		out = append(out, next)
	}
	return out, nil
}
