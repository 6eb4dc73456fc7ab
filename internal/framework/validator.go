package framework

import (
	"time"

	"go.uber.org/zap"
)

// Check names, in the order the Validator runs them.
const (
	CheckNameStructure     = "structure"
	CheckNameNaming        = "naming"
	CheckNameArchetypes    = "archetypes"
	CheckNameDocumentation = "documentation"
	CheckNameStyles        = "styles"
)

// CheckFunc inspects a framework root and returns its findings. It must not
// fail: per-file problems are reported as findings.
type CheckFunc func(root string) []Finding

// Check pairs a CheckFunc with its name.
type Check struct {
	Name string
	Run  CheckFunc
}

// DefaultChecks returns the checks in their required order.
func DefaultChecks() []Check {
	return []Check{
		{Name: CheckNameStructure, Run: CheckStructure},
		{Name: CheckNameNaming, Run: CheckNaming},
		{Name: CheckNameArchetypes, Run: CheckArchetypes},
		{Name: CheckNameDocumentation, Run: CheckDocumentation},
		{Name: CheckNameStyles, Run: CheckStyles},
	}
}

// Observer is notified as each check starts and finishes.
type Observer interface {
	CheckStarted(name string, number, total int)
	CheckFinished(name string, findings []Finding)
}

// Validator runs a fixed list of checks against a framework root.
type Validator struct {
	checks   []Check
	logger   *zap.Logger
	observer Observer
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for per-check debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithObserver registers an observer for check progress.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		v.observer = o
	}
}

// WithChecks replaces the default check list.
func WithChecks(checks ...Check) Option {
	return func(v *Validator) {
		v.checks = checks
	}
}

// New creates a Validator running DefaultChecks.
func New(opts ...Option) *Validator {
	v := &Validator{
		checks: DefaultChecks(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every check sequentially and merges their findings in check
// order. A missing root is not an error: its absence shows up as findings.
func (v *Validator) Validate(root string) *ValidationResult {
	result := NewValidationResult()
	total := len(v.checks)

	v.logger.Debug("validating framework", zap.String("root", root), zap.Int("checks", total))

	for i, check := range v.checks {
		if v.observer != nil {
			v.observer.CheckStarted(check.Name, i+1, total)
		}

		start := time.Now()
		findings := check.Run(root)
		for _, f := range findings {
			result.Add(f)
		}

		v.logger.Debug("check finished",
			zap.String("check", check.Name),
			zap.Int("findings", len(findings)),
			zap.Duration("elapsed", time.Since(start)))

		if v.observer != nil {
			v.observer.CheckFinished(check.Name, findings)
		}
	}

	v.logger.Debug("validation complete",
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Int("info", len(result.Info)))

	return result
}

// Validate runs the default checks against root with no logging or progress.
func Validate(root string) *ValidationResult {
	return New().Validate(root)
}
