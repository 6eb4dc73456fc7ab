// Package inject tests workspace eligibility checks and framework block rendering.
// Related: internal/inject/inject.go
// Tags: inject, workspace, archetypes, styles, themes
package inject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleWorkspace = `workspace "Bank" {
    model {
        customer = person "Customer"
    }
    views {
        systemLandscape {
            include *
        }
    }
}
`

func sampleCatalog() *Catalog {
	return &Catalog{
		Persons:     []string{"customer-person.dsl"},
		Systems:     []string{"core-system.dsl"},
		Containers:  []string{"api-container.dsl", "db-container.dsl"},
		Components:  []string{},
		Styles:      []string{"element-styles.dsl"},
		Terminology: []string{"definitions.dsl"},
		Themes:      []string{"dark.json", "default.json"},
	}
}

func TestShouldInject(t *testing.T) {
	t.Parallel()

	enabled := Options{Enabled: true, AutoInclude: true, Prefix: "c4framework"}

	tests := map[string]struct {
		content    string
		opts       Options
		wantInject bool
		wantReason string
	}{
		"plain workspace": {
			content:    sampleWorkspace,
			opts:       enabled,
			wantInject: true,
		},
		"injection disabled": {
			content:    sampleWorkspace,
			opts:       Options{AutoInclude: true, Prefix: "c4framework"},
			wantReason: "disabled",
		},
		"auto-include disabled": {
			content:    sampleWorkspace,
			opts:       Options{Enabled: true, Prefix: "c4framework"},
			wantReason: "auto-include",
		},
		"opt-out marker": {
			content:    "// !c4framework:disable\n" + sampleWorkspace,
			opts:       enabled,
			wantReason: "opts out",
		},
		"framework marker": {
			content:    "!c4framework\n" + sampleWorkspace,
			opts:       enabled,
			wantReason: "already includes",
		},
		"existing include": {
			content:    "!include c4framework/styles/a.dsl\n",
			opts:       enabled,
			wantReason: "already includes",
		},
		"custom prefix": {
			content:    "!include vendor/c4/styles/a.dsl\n",
			opts:       Options{Enabled: true, AutoInclude: true, Prefix: "vendor/c4"},
			wantReason: "already includes",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := ShouldInject(tc.content, tc.opts)
			assert.Equal(t, tc.wantInject, got.Inject)
			if tc.wantReason != "" {
				assert.Contains(t, got.Reason, tc.wantReason)
			}
		})
	}
}

func TestInject_FullWorkspace(t *testing.T) {
	t.Parallel()

	out := Inject(sampleWorkspace, sampleCatalog(), "c4framework")

	want := Header +
		"workspace \"Bank\" {\n" +
		"    model {\n" +
		"        archetypes {\n" +
		"            // Person Archetypes\n" +
		"            !include c4framework/persons/customer-person.dsl\n" +
		"            \n" +
		"            // System Archetypes\n" +
		"            !include c4framework/systems/core-system.dsl\n" +
		"            \n" +
		"            // Container Archetypes\n" +
		"            !include c4framework/containers/api-container.dsl\n" +
		"            !include c4framework/containers/db-container.dsl\n" +
		"            \n" +
		"            // Component Archetypes\n" +
		"        }\n" +
		"\n" +
		"        customer = person \"Customer\"\n" +
		"    }\n" +
		"    views {\n" +
		"        styles {\n" +
		"            !include c4framework/styles/element-styles.dsl\n" +
		"            theme default\n" +
		"        }\n" +
		"\n" +
		"        !include c4framework/terminology/definitions.dsl\n" +
		"        themes c4framework/themes/dark.json c4framework/themes/default.json\n" +
		"\n" +
		"        systemLandscape {\n" +
		"            include *\n" +
		"        }\n" +
		"    }\n" +
		"}\n"

	assert.Equal(t, want, out.Text)
	assert.True(t, out.ArchetypesInjected)
	assert.True(t, out.StylesInjected)
}

func TestInject_NoThemesOmitsThemesLine(t *testing.T) {
	t.Parallel()

	cat := sampleCatalog()
	cat.Themes = nil

	out := Inject(sampleWorkspace, cat, "c4framework")

	assert.NotContains(t, out.Text, "themes ")
	assert.Contains(t, out.Text, "            theme default\n")
}

func TestInject_BlocksInjectedOnce(t *testing.T) {
	t.Parallel()

	content := "workspace {\n    model {\n    }\n    model {\n    }\n    views {\n    }\n    views {\n    }\n}\n"
	out := Inject(content, sampleCatalog(), "c4framework")

	assert.Equal(t, 1, strings.Count(out.Text, "archetypes {"))
	assert.Equal(t, 1, strings.Count(out.Text, "styles {"))
}

func TestInject_ViewsInsideModelIgnored(t *testing.T) {
	t.Parallel()

	content := "workspace {\n    model {\n        views {\n}\n"
	out := Inject(content, sampleCatalog(), "c4framework")

	assert.True(t, out.ArchetypesInjected)
	assert.False(t, out.StylesInjected)
}

func TestInject_WithoutBlocksPassesThrough(t *testing.T) {
	t.Parallel()

	observed, logs := observer.New(zapcore.WarnLevel)
	in := NewInjector(sampleCatalog(), "c4framework", zap.New(observed))

	content := "// just a comment\n\n\n"
	out := in.Inject(content)

	assert.Equal(t, Header+"// just a comment\n", out.Text)
	assert.False(t, out.ArchetypesInjected)
	assert.False(t, out.StylesInjected)

	messages := make([]string, 0, logs.Len())
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{
		"could not inject framework archetypes: model block not found",
		"could not inject framework styles: views block not found",
	}, messages)
}

func TestInject_ModelOutsideWorkspaceIgnored(t *testing.T) {
	t.Parallel()

	out := Inject("model {\n}\n", sampleCatalog(), "c4framework")

	assert.False(t, out.ArchetypesInjected)
	assert.Equal(t, Header+"model {\n}\n", out.Text)
}

func TestNewInjector_NilCatalog(t *testing.T) {
	t.Parallel()

	out := NewInjector(nil, "c4framework", nil).Inject("workspace {\n    model {\n    }\n}\n")

	assert.True(t, out.ArchetypesInjected)
	assert.Contains(t, out.Text, "            // Component Archetypes\n        }\n")
}
