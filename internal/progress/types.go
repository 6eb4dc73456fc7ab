// Package progress shows a spinner and per-check status lines on stderr while
// a framework validation runs.
package progress

import "fmt"

// CheckInfo identifies one check within a validation run.
type CheckInfo struct {
	// Name is the check name (e.g., "structure", "naming", "styles")
	Name string
	// Number is the 1-based position of the check
	Number int
	// Total is the number of checks in the run
	Total int
}

// Validate checks that all CheckInfo fields meet validation requirements
func (c CheckInfo) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("check name cannot be empty")
	}
	if c.Number <= 0 {
		return fmt.Errorf("check number must be > 0")
	}
	if c.Total <= 0 {
		return fmt.Errorf("total checks must be > 0")
	}
	if c.Number > c.Total {
		return fmt.Errorf("check number cannot exceed total checks")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether the progress stream is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark marks a check with no findings ("✓" or "[OK]")
	Checkmark string
	// Findings marks a check that reported something ("!" or "[!!]")
	Findings string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
