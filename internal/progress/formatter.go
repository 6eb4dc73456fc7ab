package progress

import (
	"fmt"
	"strings"
)

// formatCheckCounter returns the [N/Total] check counter string
func formatCheckCounter(number, total int) string {
	return fmt.Sprintf("[%d/%d]", number, total)
}

// buildCheckMessage constructs the line shown while a check runs
func buildCheckMessage(check CheckInfo) string {
	counter := formatCheckCounter(check.Number, check.Total)
	return fmt.Sprintf("%s Checking %s", counter, check.Name)
}

// buildResultMessage constructs the line shown once a check finishes
func buildResultMessage(check CheckInfo, findings int) string {
	counter := formatCheckCounter(check.Number, check.Total)
	switch findings {
	case 0:
		return fmt.Sprintf("%s %s check clean", counter, capitalize(check.Name))
	case 1:
		return fmt.Sprintf("%s %s check: 1 finding", counter, capitalize(check.Name))
	default:
		return fmt.Sprintf("%s %s check: %d findings", counter, capitalize(check.Name), findings)
	}
}

// capitalize returns the string with the first letter capitalized
func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// checkmark returns the appropriate checkmark symbol
func checkmark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Checkmark
	if supportsColor && symbols.Checkmark == "✓" {
		mark = "\033[32m" + mark + "\033[0m" // Green
	}
	return mark
}

// findingsMark returns the symbol for a check that reported findings
func findingsMark(symbols ProgressSymbols, supportsColor bool) string {
	mark := symbols.Findings
	if supportsColor && symbols.Findings == "!" {
		mark = "\033[33m" + mark + "\033[0m" // Yellow
	}
	return mark
}
