// Package testutil holds shared constants: the IANA zone names used by
// the curated timezone catalog and a handful of sample RRULE strings.
package testutil

const (
	TZEuropeMadrid       = "Europe/Madrid"
	TZAtlanticCanary     = "Atlantic/Canary"
	TZAfricaCeuta        = "Africa/Ceuta"
	TZEuropeDublin       = "Europe/Dublin"
	TZEuropeLondon       = "Europe/London"
	TZEuropeParis        = "Europe/Paris"
	TZEuropeBerlin       = "Europe/Berlin"
	TZAmericaNewYork     = "America/New_York"
	TZAmericaSaoPaulo    = "America/Sao_Paulo"
	TZAmericaCampoGrande = "America/Campo_Grande"
	TZAustraliaPerth     = "Australia/Perth"

	CountryUnitedStates = "United States"
)

// Sample RRULE strings. The rrule, batchrule, and CLI test suites write
// their rules inline and do not reference these constants.
const (
	RRuleDailySimple      = "FREQ=DAILY;COUNT=5"
	RRuleWeeklyByDay      = "DTSTART=20260105T090000;FREQ=WEEKLY;BYDAY=MO;COUNT=6"
	RRuleMonthlyByDay     = "DTSTART=20260115T000000;FREQ=MONTHLY;BYMONTHDAY=15;COUNT=12"
	RRuleYearlyWithUntil  = "DTSTART=20260101T000000;FREQ=YEARLY;UNTIL=20301231T000000"
	RRuleWeeklyWithTZAndBy = "DTSTART;TZID=Australia/Perth:19970714T133000;FREQ=WEEKLY;UNTIL=20190422T133500;BYHOUR=8,12;BYMINUTE=30,45;BYDAY=TU,SU"
)
