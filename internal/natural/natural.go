// Package natural turns a natural-language phrase like "every weekday
// at 9am starting tomorrow" into a DTSTART plus a handful of RRULE
// clauses, so a CLI caller isn't forced to learn the iCalendar grammar
// just to build one rule.
package natural

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/en"

	"rrule/internal/constants"
)

// Parsed is what a natural-language phrase resolved to: a starting
// instant and, when the phrase implied them, a frequency and the BYDAY
// values a caller can fold into an RRULE string.
type Parsed struct {
	Start     time.Time
	Frequency string
	ByDay     []string
	InputText string
}

var (
	everyWeekdayRe = regexp.MustCompile(`(?i)\bevery\s+week\s*day\b`)
	everyDayRe     = regexp.MustCompile(`(?i)\bevery\s+day\b|\bdaily\b`)
	everyWeekRe    = regexp.MustCompile(`(?i)\bevery\s+week\b|\bweekly\b`)
	everyMonthRe   = regexp.MustCompile(`(?i)\bevery\s+month\b|\bmonthly\b`)
	everyYearRe    = regexp.MustCompile(`(?i)\bevery\s+year\b|\byearly\b|\bannually\b`)
)

var weekdayNames = map[string]string{
	"monday": "MO", "tuesday": "TU", "wednesday": "WE", "thursday": "TH",
	"friday": "FR", "saturday": "SA", "sunday": "SU",
}

// Parse resolves text against the reference instant now, returning the
// anchor time the phrase describes and any recurrence hints it carries.
func Parse(text string, now time.Time) (Parsed, error) {
	w := when.New(nil)
	w.Add(en.All...)

	res, err := w.Parse(text, now)
	if err != nil || res == nil {
		return Parsed{}, fmt.Errorf("could not understand the date/time in %q; try something like 'every weekday at 9am starting tomorrow'", text)
	}

	p := Parsed{Start: res.Time, InputText: text}
	p.Frequency = detectFrequency(text)
	p.ByDay = detectByDay(text)
	if everyWeekdayRe.MatchString(text) && len(p.ByDay) == 0 {
		p.Frequency = "WEEKLY"
		p.ByDay = []string{"MO", "TU", "WE", "TH", "FR"}
	}
	return p, nil
}

func detectFrequency(text string) string {
	switch {
	case everyWeekdayRe.MatchString(text):
		return "WEEKLY"
	case everyDayRe.MatchString(text):
		return "DAILY"
	case everyWeekRe.MatchString(text):
		return "WEEKLY"
	case everyMonthRe.MatchString(text):
		return "MONTHLY"
	case everyYearRe.MatchString(text):
		return "YEARLY"
	default:
		return ""
	}
}

func detectByDay(text string) []string {
	lower := strings.ToLower(text)
	var days []string
	for name, code := range weekdayNames {
		if strings.Contains(lower, name) {
			days = append(days, code)
		}
	}
	return days
}

// freqClause maps a plain frequency token to its FREQ= clause, the way
// the iCalendar grammar spells it.
func freqClause(freq string) string {
	switch freq {
	case "WEEKLY":
		return constants.RRuleFreqWeekly
	case "MONTHLY":
		return constants.RRuleFreqMonthly
	case "YEARLY":
		return constants.RRuleFreqYearly
	default:
		return constants.RRuleFreqDaily
	}
}

// ToRRule assembles an RRULE string from the parsed phrase, falling
// back to DAILY when the phrase carried no recognizable frequency.
func (p Parsed) ToRRule() string {
	parts := []string{
		fmt.Sprintf("DTSTART=%s", p.Start.Format("20060102T150405")),
		freqClause(p.Frequency),
	}
	if len(p.ByDay) > 0 {
		parts = append(parts, fmt.Sprintf("BYDAY=%s", strings.Join(p.ByDay, ",")))
	}
	return strings.Join(parts, ";")
}
