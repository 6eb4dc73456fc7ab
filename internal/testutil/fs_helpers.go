// Package testutil provides test utilities and helpers for c4validate tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixture contents for a framework root that passes every check.
const (
	WorkspaceDSL = `workspace "C4 Framework" {
    model {
    }

    views {
    }
}
`

	ArchetypeDSL = `archetypes {
    BankSystem = softwareSystem {
        properties {
            "system.type" "core"
            "business.owner" "Retail Banking"
            "technical.owner" "Platform Team"
        }
    }
}
`

	StylesDSL = `styles {
    element "Person" {
        shape person
    }
    element "Container" {
        background #438dd5
    }
    element "Component" {
        background #85bbf0
    }
}
`
)

// frameworkDirs mirrors the directories a framework root must contain.
var frameworkDirs = []string{
	"custom-archetypes",
	"persons",
	"systems",
	"containers",
	"components",
	"styles",
	"themes",
	"docs",
	"terminology",
}

// defaultFiles seeds every directory so none is reported empty.
var defaultFiles = map[string]string{
	"workspace.dsl":                     WorkspaceDSL,
	"custom-archetypes/bank-system.dsl": ArchetypeDSL,
	"persons/customer-person.dsl":       "Customer = person {\n}\n",
	"systems/core-system.dsl":           "CoreSystem = softwareSystem {\n}\n",
	"containers/api-container.dsl":      "ApiContainer = container {\n    technology \"Go\"\n}\n",
	"components/rest-component.dsl":     "RestComponent = component {\n}\n",
	"styles/default.dsl":                StylesDSL,
	"themes/default.json":               "{\"name\": \"default\"}\n",
	"docs/EXTENSION_GUIDE.md":           "# Extension Guide\n",
	"docs/FRAMEWORK_GOVERNANCE.md":      "# Framework Governance\n",
	"terminology/definitions.dsl":       "terminology {\n    person \"Actor\"\n}\n",
}

// frameworkConfig holds configuration for CreateFramework
type frameworkConfig struct {
	files        map[string]string
	skipDirs     map[string]bool
	emptyDirs    map[string]bool
	extraEntries map[string]os.FileMode
}

// FrameworkOption is a functional option for CreateFramework
type FrameworkOption func(*frameworkConfig)

// WithFile adds or replaces a file, relative to the framework root.
func WithFile(rel, content string) FrameworkOption {
	return func(c *frameworkConfig) {
		c.files[filepath.ToSlash(rel)] = content
	}
}

// WithoutFile removes one of the default files.
func WithoutFile(rel string) FrameworkOption {
	return func(c *frameworkConfig) {
		delete(c.files, filepath.ToSlash(rel))
	}
}

// WithoutDir omits a required directory and every default file inside it.
func WithoutDir(name string) FrameworkOption {
	return func(c *frameworkConfig) {
		c.skipDirs[name] = true
	}
}

// WithEmptyDir creates a required directory with no entries.
func WithEmptyDir(name string) FrameworkOption {
	return func(c *frameworkConfig) {
		c.emptyDirs[name] = true
	}
}

// WithFileMode creates rel with the given permissions after all files are written.
func WithFileMode(rel string, mode os.FileMode) FrameworkOption {
	return func(c *frameworkConfig) {
		c.extraEntries[filepath.ToSlash(rel)] = mode
	}
}

// CreateFramework builds a framework root under t.TempDir() and returns its
// path. With no options the root passes every validation check.
func CreateFramework(t *testing.T, opts ...FrameworkOption) string {
	t.Helper()

	cfg := &frameworkConfig{
		files:        make(map[string]string, len(defaultFiles)),
		skipDirs:     make(map[string]bool),
		emptyDirs:    make(map[string]bool),
		extraEntries: make(map[string]os.FileMode),
	}
	for rel, content := range defaultFiles {
		cfg.files[rel] = content
	}
	for _, opt := range opts {
		opt(cfg)
	}

	root := t.TempDir()

	for _, dir := range frameworkDirs {
		if cfg.skipDirs[dir] {
			continue
		}
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	for rel, content := range cfg.files {
		top := topLevel(rel)
		if cfg.skipDirs[top] || cfg.emptyDirs[top] {
			continue
		}
		WriteFile(t, filepath.Join(root, filepath.FromSlash(rel)), content)
	}

	for rel, mode := range cfg.extraEntries {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if !FileExists(path) {
			WriteFile(t, path, "")
		}
		if err := os.Chmod(path, mode); err != nil {
			t.Fatalf("failed to chmod %s: %v", rel, err)
		}
	}

	return root
}

// topLevel returns the first path element of a slash-separated relative path,
// or "" for files at the root.
func topLevel(rel string) string {
	top, _, found := strings.Cut(rel, "/")
	if !found {
		return ""
	}
	return top
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// CanEnforcePermissions reports whether chmod-based unreadable fixtures work,
// which is not the case when tests run as root.
func CanEnforcePermissions() bool {
	return os.Geteuid() != 0
}
