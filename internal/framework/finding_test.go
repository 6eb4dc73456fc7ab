package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationResult_Add(t *testing.T) {
	t.Parallel()

	r := NewValidationResult()
	r.Add(Finding{Severity: SeverityWarning, Message: "w1"})
	r.Add(Finding{Severity: SeverityError, Message: "e1"})
	r.Add(Finding{Severity: SeverityInfo, Message: "i1"})
	r.Add(Finding{Severity: SeverityWarning, Message: "w1"})

	assert.Equal(t, []string{"e1"}, r.Errors)
	assert.Equal(t, []string{"w1", "w1"}, r.Warnings, "duplicates are kept")
	assert.Equal(t, []string{"i1"}, r.Info)
}

func TestValidationResult_Outcome(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		result       *ValidationResult
		wantErrors   bool
		wantWarnings bool
		wantPassed   bool
	}{
		"empty": {
			result:     NewValidationResult(),
			wantPassed: true,
		},
		"info only still passes": {
			result:     &ValidationResult{Info: []string{"note"}},
			wantPassed: true,
		},
		"warnings only": {
			result:       &ValidationResult{Warnings: []string{"w"}},
			wantWarnings: true,
		},
		"errors only": {
			result:     &ValidationResult{Errors: []string{"e"}},
			wantErrors: true,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantErrors, tc.result.HasErrors())
			assert.Equal(t, tc.wantWarnings, tc.result.HasWarnings())
			assert.Equal(t, tc.wantPassed, tc.result.Passed())
		})
	}
}

func TestNewValidationResult_NonNilBuckets(t *testing.T) {
	t.Parallel()

	r := NewValidationResult()

	assert.NotNil(t, r.Errors)
	assert.NotNil(t, r.Warnings)
	assert.NotNil(t, r.Info)
}
