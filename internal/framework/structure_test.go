package framework

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c4framework/c4validate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStructure(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts         []testutil.FrameworkOption
		wantErrors   []string
		wantWarnings []string
	}{
		"complete framework": {},
		"one missing directory": {
			opts:       []testutil.FrameworkOption{testutil.WithoutDir("themes")},
			wantErrors: []string{"Missing required directory: themes"},
		},
		"several missing directories": {
			opts: []testutil.FrameworkOption{
				testutil.WithoutDir("persons"),
				testutil.WithoutDir("terminology"),
			},
			wantErrors: []string{
				"Missing required directory: persons",
				"Missing required directory: terminology",
			},
		},
		"empty directory": {
			opts:         []testutil.FrameworkOption{testutil.WithEmptyDir("components")},
			wantWarnings: []string{"Empty directory: components"},
		},
		"missing workspace file": {
			opts:       []testutil.FrameworkOption{testutil.WithoutFile("workspace.dsl")},
			wantErrors: []string{"Missing workspace.dsl file"},
		},
		"unexpected directory is ignored": {
			opts: []testutil.FrameworkOption{testutil.WithFile("extras/notes.txt", "x")},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root := testutil.CreateFramework(t, tc.opts...)
			errs, warns := split(CheckStructure(root))

			assert.Equal(t, tc.wantErrors, errs)
			assert.Equal(t, tc.wantWarnings, warns)
		})
	}
}

func TestCheckStructure_FileInPlaceOfDirectory(t *testing.T) {
	t.Parallel()

	root := testutil.CreateFramework(t, testutil.WithoutDir("styles"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "styles"), []byte("not a dir"), 0644))

	errs, warns := split(CheckStructure(root))

	assert.Equal(t, []string{"Missing required directory: styles"}, errs)
	assert.Empty(t, warns)
}

func TestCheckStructure_FindingsCarryCheckName(t *testing.T) {
	t.Parallel()

	root := testutil.CreateFramework(t, testutil.WithoutFile("workspace.dsl"))

	findings := CheckStructure(root)

	require.Len(t, findings, 1)
	assert.Equal(t, CheckNameStructure, findings[0].Check)
	assert.Equal(t, SeverityError, findings[0].Severity)
}

// split separates findings into error and warning messages, keeping order.
// Both slices stay nil when nothing matches so they compare equal to a nil want.
func split(findings []Finding) (errs, warns []string) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			errs = append(errs, f.Message)
		case SeverityWarning:
			warns = append(warns, f.Message)
		}
	}
	return errs, warns
}
