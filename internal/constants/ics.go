package constants

// Recurrence rule frequency clauses, as they appear verbatim in an
// RRULE string (RFC 5545 section 3.3.10).
const (
	RRuleFreqDaily   = "FREQ=DAILY"
	RRuleFreqWeekly  = "FREQ=WEEKLY"
	RRuleFreqMonthly = "FREQ=MONTHLY"
	RRuleFreqYearly  = "FREQ=YEARLY"
)
