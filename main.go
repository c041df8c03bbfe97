package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"rrule/internal/batchrule"
	"rrule/internal/config"
	"rrule/internal/natural"
	"rrule/internal/rrule"
	tzpkg "rrule/internal/timezone"
	"rrule/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printErr("%v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "rrule",
		Short:        "Parse, validate, and expand iCalendar recurrence rules",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Config file path (accepted but not read; configuration is loaded from the default config directory or the current directory)")

	cmd.AddCommand(
		newExpandCmd(),
		newValidateCmd(),
		newBuildCmd(),
		newQuickCmd(),
		newBatchCmd(),
		newTimezoneCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// ========================================================================
// expand
// ========================================================================

func newExpandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand <rrule>",
		Short: "Expand an RRULE string into its occurrence list",
		Args:  cobra.ExactArgs(1),
		RunE:  runExpand,
	}
	cmd.Flags().String("from", "", "Only emit occurrences at/after this RFC3339 cutoff (or a registered cutoff preset)")
	cmd.Flags().Int("count", 0, "Override the occurrence budget (defaults to COUNT, or the config default)")
	return cmd
}

func runExpand(cmd *cobra.Command, args []string) error {
	rule, err := rrule.Parse(args[0])
	if err != nil {
		return err
	}

	n, _ := cmd.Flags().GetInt("count")
	if n <= 0 && !rule.HasCount() && !rule.HasUntil() {
		if cfg, err := config.Load(); err == nil {
			n = cfg.DefaultCount
		}
	}
	if n > 0 {
		rule.Count = n
	}

	from, _ := cmd.Flags().GetString("from")
	var occurrences []time.Time
	if from != "" {
		cutoff, err := resolveCutoff(from)
		if err != nil {
			return err
		}
		occurrences, err = rrule.GenerateFrom(rule, cutoff)
		if err != nil {
			return err
		}
	} else {
		occurrences, err = rrule.Generate(rule)
		if err != nil {
			return err
		}
	}

	for _, ts := range rrule.FormatOccurrences(occurrences) {
		fmt.Println(ts)
	}
	return nil
}

// resolveCutoff accepts "now", "today" (local midnight), an RFC3339
// instant, a registered cutoff preset name, or a "+<duration>" offset
// from now.
func resolveCutoff(raw string) (time.Time, error) {
	switch {
	case raw == "now":
		return time.Now(), nil
	case raw == "today":
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case strings.HasPrefix(raw, "+"):
		d, err := time.ParseDuration(raw[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid cutoff offset %q: %w", raw, err)
		}
		return time.Now().Add(d), nil
	}

	if cfg, err := config.Load(); err == nil {
		if preset, ok := cfg.CutoffPreset(raw); ok {
			return resolveCutoff(preset)
		}
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse cutoff %q as RFC3339, a preset name, or a +duration offset", raw)
	}
	return t, nil
}

// ========================================================================
// validate
// ========================================================================

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <rrule>",
		Short: "Validate an RRULE string without expanding it",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
}

func runValidate(_ *cobra.Command, args []string) error {
	if _, err := rrule.Parse(args[0]); err != nil {
		printErr("%v\n", err)
		return err
	}
	printOK("valid\n")
	return nil
}

// ========================================================================
// build (interactive RRULE builder)
// ========================================================================

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Interactively build an RRULE string without memorizing the syntax",
		Long: `Generate RRULE strings for recurring events without memorizing the syntax.

Examples of what you can create:
  - Every weekday (Monday-Friday)
  - Every 2 weeks on Tuesday and Thursday
  - Every month or every year (there is no prompt for a day of the month or a month)
  - Custom patterns with end dates or occurrence counts`,
		RunE: runBuild,
	}
}

func runBuild(_ *cobra.Command, _ []string) error {
	freq, err := promptFrequency()
	if err != nil {
		return err
	}

	parts := []string{fmt.Sprintf("FREQ=%s", freq)}

	if interval := promptInterval(); interval != "" {
		parts = append(parts, interval)
	}
	if freq == "WEEKLY" {
		if days := promptWeeklyDays(); days != "" {
			parts = append(parts, days)
		}
	}
	if endCond := promptEndCondition(); endCond != "" {
		parts = append(parts, endCond)
	}

	built := strings.Join(parts, ";")

	if _, err := rrule.Parse(built); err != nil {
		printErr("generated rule failed validation: %v\n", err)
		return err
	}

	fmt.Println()
	printOK("Generated RRULE:\n")
	fmt.Println(built)
	fmt.Println()
	fmt.Println("This means:")
	fmt.Printf("  %s\n", interpret(built))

	return nil
}

func promptFrequency() (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Select frequency:",
		Options: []string{"DAILY", "WEEKLY", "MONTHLY", "YEARLY"},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

func promptInterval() string {
	var raw string
	prompt := &survey.Input{Message: "Repeat every N occurrences (default 1):"}
	_ = survey.AskOne(prompt, &raw)
	raw = strings.TrimSpace(raw)
	if raw != "" && raw != "1" {
		if n := atoiSafe(raw); n > 0 {
			return fmt.Sprintf("INTERVAL=%d", n)
		}
	}
	return ""
}

func promptWeeklyDays() string {
	var raw string
	prompt := &survey.Input{Message: "Days of week, comma-separated (MO,TU,WE,TH,FR,SA,SU), or blank:"}
	_ = survey.AskOne(prompt, &raw)
	raw = strings.TrimSpace(raw)
	if raw != "" {
		return fmt.Sprintf("BYDAY=%s", strings.ToUpper(raw))
	}
	return ""
}

func promptEndCondition() string {
	var choice string
	prompt := &survey.Select{
		Message: "How should the recurrence end?",
		Options: []string{"Never (infinite)", "After N occurrences", "On a specific date"},
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return ""
	}

	switch choice {
	case "After N occurrences":
		var raw string
		_ = survey.AskOne(&survey.Input{Message: "Number of occurrences:"}, &raw)
		if n := atoiSafe(raw); n > 0 {
			return fmt.Sprintf("COUNT=%d", n)
		}
	case "On a specific date":
		var raw string
		_ = survey.AskOne(&survey.Input{Message: "End date (YYYYMMDD):"}, &raw)
		raw = strings.TrimSpace(raw)
		if raw != "" {
			return fmt.Sprintf("UNTIL=%sT000000Z", raw)
		}
	}
	return ""
}

func interpret(built string) string {
	parts := strings.Split(built, ";")
	var freq, interval, byday, count, until string
	for _, part := range parts {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "FREQ":
			freq = strings.ToLower(kv[1])
		case "INTERVAL":
			interval = kv[1]
		case "BYDAY":
			byday = kv[1]
		case "COUNT":
			count = kv[1]
		case "UNTIL":
			until = kv[1]
		}
	}

	var result string
	if interval != "" && interval != "1" {
		result = fmt.Sprintf("Every %s %ss", interval, freq)
	} else {
		result = fmt.Sprintf("Every %s", freq)
	}
	if byday != "" {
		result += fmt.Sprintf(" on %s", byday)
	}
	switch {
	case count != "":
		result += fmt.Sprintf(", %s times", count)
	case until != "":
		result += fmt.Sprintf(", until %s", until)
	default:
		result += ", forever"
	}
	return result
}

// ========================================================================
// quick (natural language)
// ========================================================================

func newQuickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick [natural language description]",
		Short: "Build an RRULE from a single sentence (experimental)",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuick,
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

func runQuick(cmd *cobra.Command, args []string) error {
	parsed, err := natural.Parse(args[0], time.Now())
	if err != nil {
		return err
	}

	built := parsed.ToRRule()
	name := utils.Slugify(args[0])

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm {
		fmt.Println("I understood the following:")
		fmt.Printf("  Name:      %s\n", name)
		fmt.Printf("  Start:     %s\n", parsed.Start.Format("Mon, 02 Jan 2006 15:04 MST"))
		fmt.Printf("  RRULE:     %s\n", built)

		var confirmed bool
		prompt := &survey.Confirm{Message: "Does this look correct?", Default: true}
		if err := survey.AskOne(prompt, &confirmed); err != nil || !confirmed {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	fmt.Printf("%s: %s\n", name, built)
	return nil
}

// ========================================================================
// batch
// ========================================================================

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Expand every named RRULE in a CSV, JSON, or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	cmd.Flags().String("format", "auto", "Batch file format: auto, csv, json, or yaml")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	formatFlag, _ := cmd.Flags().GetString("format")

	format, err := batchrule.DetectFormat(formatFlag, path)
	if err != nil {
		return err
	}

	records, err := batchrule.LoadRecords(path, format)
	if err != nil {
		return err
	}

	results := batchrule.Expand(records)
	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			printErr("%s: %v\n", firstNonEmpty(res.Record.Name, res.Record.RRule), res.Err)
			continue
		}
		printOK("%s: %d occurrences\n", res.Record.Name, len(res.Occurrences))
		for _, ts := range rrule.FormatOccurrences(res.Occurrences) {
			fmt.Printf("  %s\n", ts)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d records failed", failures, len(results))
	}
	return nil
}

// ========================================================================
// timezone
// ========================================================================

func newTimezoneCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "timezone",
		Short: "Timezone lookup for resolving TZID clauses",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List known timezones (filterable)",
		RunE:  runTZList,
	}
	listCmd.Flags().String("search", "", "Filter by text (matches IANA, display name, or country)")

	infoCmd := &cobra.Command{
		Use:   "info <name-or-IANA>",
		Short: "Show details for a specific timezone",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTZInfo,
	}

	root.AddCommand(listCmd, infoCmd)
	return root
}

func runTZList(cmd *cobra.Command, _ []string) error {
	search, _ := cmd.Flags().GetString("search")
	search = strings.ToLower(strings.TrimSpace(search))

	tm := tzpkg.NewTimezoneManager()
	zones := tm.ListTimezones()

	fmt.Printf("%-32s  %-7s  %-3s  %-28s  %s\n", "IANA", "Offset", "DST", "Display", "Country")
	for _, z := range zones {
		if search != "" &&
			!strings.Contains(strings.ToLower(z.IANA), search) &&
			!strings.Contains(strings.ToLower(z.DisplayName), search) &&
			!strings.Contains(strings.ToLower(z.Country), search) {
			continue
		}
		dst := "no"
		if z.DST {
			dst = "yes"
		}
		fmt.Printf("%-32s  %-7s  %-3s  %-28s  %s\n", z.IANA, z.Offset, dst, z.DisplayName, z.Country)
	}
	return nil
}

func runTZInfo(_ *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	tm := tzpkg.NewTimezoneManager()

	zone, err := tm.GetTimezone(query)
	if err != nil {
		sugs := tm.SuggestTimezone(query)
		if len(sugs) == 0 {
			fmt.Println("Timezone not found.")
			return nil
		}
		fmt.Println("Timezone not found. Did you mean:")
		for _, s := range sugs {
			fmt.Printf("  - %s (%s) [%s]\n", s.DisplayName, s.Country, s.IANA)
		}
		return nil
	}

	fmt.Printf("IANA:       %s\n", zone.IANA)
	fmt.Printf("Display:    %s\n", zone.DisplayName)
	fmt.Printf("Country:    %s\n", zone.Country)
	fmt.Printf("Offset:     %s\n", zone.Offset)
	fmt.Printf("DST:        %v\n", zone.DST)
	return nil
}

// ========================================================================
// config
// ========================================================================

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rrule configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value",
			Args:  cobra.ExactArgs(2),
			RunE:  runConfigSet,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all configuration values",
			RunE:  runConfigList,
		},
		&cobra.Command{
			Use:   "cutoff-presets",
			Short: "List available cutoff presets",
			RunE:  runConfigCutoffPresets,
		},
	)

	return cmd
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	printOK("Config updated: %s = %s\n", args[0], args[1])
	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return cfg.List()
}

func runConfigCutoffPresets(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	names := cfg.ListCutoffPresets()
	if len(names) == 0 {
		fmt.Println("No cutoff presets configured.")
		return nil
	}
	sort.Strings(names)
	fmt.Println("Available cutoff presets:")
	for _, name := range names {
		preset, _ := cfg.CutoffPreset(name)
		fmt.Printf("  %s: %s\n", name, preset)
	}
	return nil
}

// ========================================================================
// version
// ========================================================================

var (
	version = "dev"
	commit  = "unknown"
	date    = ""
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			if strings.TrimSpace(date) == "" {
				fmt.Printf("rrule %s\n", version)
			} else {
				fmt.Printf("rrule %s (%s) built %s\n", version, commit, date)
			}
		},
	}
}

// ========================================================================
// Output helpers
// ========================================================================

func printOK(format string, a ...interface{}) {
	fmt.Printf("✅ %s", fmt.Sprintf(format, a...))
}

func printErr(format string, a ...interface{}) {
	fmt.Printf("❌ %s", fmt.Sprintf(format, a...))
}

func atoiSafe(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
