package framework

// Severity classifies a finding into one of the three report buckets.
type Severity string

const (
	// SeverityError marks a finding that should fail a CI gate.
	SeverityError Severity = "error"
	// SeverityWarning marks a stylistic or best-practice deviation.
	SeverityWarning Severity = "warning"
	// SeverityInfo is reserved for informational notes. No check emits it today.
	SeverityInfo Severity = "info"
)

// Finding is a single human-readable result produced by a check.
type Finding struct {
	Severity Severity
	Check    string // Name of the check that produced the finding
	Message  string // Text that is reported verbatim
}

func errorFinding(check, message string) Finding {
	return Finding{Severity: SeverityError, Check: check, Message: message}
}

func warningFinding(check, message string) Finding {
	return Finding{Severity: SeverityWarning, Check: check, Message: message}
}

// ValidationResult holds the findings of one validation run, split by severity.
// Order within each bucket is the order the checks produced them.
type ValidationResult struct {
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
	Info     []string `json:"info" yaml:"info"`
}

// NewValidationResult returns a result whose buckets are empty, non-nil slices
// so they serialize as [] rather than null.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   []string{},
		Warnings: []string{},
		Info:     []string{},
	}
}

// Add appends a finding to the bucket matching its severity.
func (r *ValidationResult) Add(f Finding) {
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f.Message)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f.Message)
	default:
		r.Info = append(r.Info, f.Message)
	}
}

// HasErrors returns true if any error was recorded.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if any warning was recorded.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Passed reports whether the run produced neither errors nor warnings.
// Info entries do not affect the outcome.
func (r *ValidationResult) Passed() bool {
	return !r.HasErrors() && !r.HasWarnings()
}
