package inject

import (
	"strings"

	"go.uber.org/zap"
)

// Markers recognised in workspace content.
const (
	// OptOutMarker disables injection for the workspace that contains it.
	OptOutMarker = "!c4framework:disable"
	// FrameworkMarker declares the framework as already included.
	FrameworkMarker = "!c4framework"
)

// Header is prepended to every injected workspace.
const Header = "// C4 Framework Auto-Injected\n" +
	"// To disable: add '" + OptOutMarker + "' to your workspace file\n\n"

const (
	blockIndent   = "        "
	includeIndent = "            "
)

// Options controls whether a workspace is eligible for injection.
type Options struct {
	Enabled     bool
	AutoInclude bool
	// Prefix is the include path under which the framework is mounted.
	Prefix string
}

// Decision explains the outcome of ShouldInject.
type Decision struct {
	Inject bool
	Reason string
}

// ShouldInject decides whether content should have the framework injected.
func ShouldInject(content string, opts Options) Decision {
	switch {
	case !opts.Enabled:
		return Decision{Reason: "framework injection is disabled"}
	case !opts.AutoInclude:
		return Decision{Reason: "framework auto-include is disabled"}
	case strings.Contains(content, OptOutMarker):
		return Decision{Reason: "workspace opts out with " + OptOutMarker}
	case strings.Contains(content, opts.Prefix+"/") || strings.Contains(content, FrameworkMarker):
		return Decision{Reason: "workspace already includes the framework"}
	}
	return Decision{Inject: true, Reason: "framework not referenced"}
}

// Output is the rendered workspace and which blocks were added to it.
type Output struct {
	Text               string
	ArchetypesInjected bool
	StylesInjected     bool
}

// Injector rewrites workspace content against a catalog.
type Injector struct {
	catalog *Catalog
	prefix  string
	logger  *zap.Logger
}

// NewInjector returns an injector for cat mounted at prefix. A nil logger is
// replaced with a no-op one.
func NewInjector(cat *Catalog, prefix string, logger *zap.Logger) *Injector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cat == nil {
		cat = &Catalog{}
	}
	return &Injector{catalog: cat, prefix: prefix, logger: logger}
}

// Inject is a convenience wrapper that renders content without logging.
func Inject(content string, cat *Catalog, prefix string) Output {
	return NewInjector(cat, prefix, nil).Inject(content)
}

// Inject adds an archetypes block after the first model line of the
// workspace and a styles block after the first views line outside the model.
// All other lines pass through unchanged.
func (in *Injector) Inject(content string) Output {
	var b strings.Builder
	b.WriteString(Header)

	var (
		out         Output
		inWorkspace bool
		inModel     bool
	)

	for _, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "workspace"):
			inWorkspace = true

		case inWorkspace && !out.ArchetypesInjected &&
			strings.HasPrefix(trimmed, "model") && strings.Contains(trimmed, "{"):
			b.WriteString(line + "\n")
			in.writeArchetypes(&b)
			inModel = true
			out.ArchetypesInjected = true
			continue

		case inModel && trimmed == "}":
			inModel = false

		case inWorkspace && !inModel && !out.StylesInjected &&
			strings.HasPrefix(trimmed, "views") && strings.Contains(trimmed, "{"):
			b.WriteString(line + "\n")
			in.writeStyles(&b)
			out.StylesInjected = true
			continue
		}

		b.WriteString(line + "\n")
	}

	if !out.ArchetypesInjected {
		in.logger.Warn("could not inject framework archetypes: model block not found")
	}
	if !out.StylesInjected {
		in.logger.Warn("could not inject framework styles: views block not found")
	}
	in.logger.Debug("workspace rendered",
		zap.Bool("archetypes", out.ArchetypesInjected),
		zap.Bool("styles", out.StylesInjected))

	out.Text = b.String()
	return out
}

func (in *Injector) writeArchetypes(b *strings.Builder) {
	groups := []struct {
		heading string
		dir     string
		files   []string
	}{
		{"// Person Archetypes", "persons", in.catalog.Persons},
		{"// System Archetypes", "systems", in.catalog.Systems},
		{"// Container Archetypes", "containers", in.catalog.Containers},
		{"// Component Archetypes", "components", in.catalog.Components},
	}

	b.WriteString(blockIndent + "archetypes {\n")
	for i, group := range groups {
		if i > 0 {
			b.WriteString(includeIndent + "\n")
		}
		b.WriteString(includeIndent + group.heading + "\n")
		for _, file := range group.files {
			b.WriteString(includeIndent + in.include(group.dir, file) + "\n")
		}
	}
	b.WriteString(blockIndent + "}\n\n")
}

func (in *Injector) writeStyles(b *strings.Builder) {
	b.WriteString(blockIndent + "styles {\n")
	for _, file := range in.catalog.Styles {
		b.WriteString(includeIndent + in.include("styles", file) + "\n")
	}
	b.WriteString(includeIndent + "theme default\n")
	b.WriteString(blockIndent + "}\n\n")

	for _, file := range in.catalog.Terminology {
		b.WriteString(blockIndent + in.include("terminology", file) + "\n")
	}

	if len(in.catalog.Themes) > 0 {
		paths := make([]string, len(in.catalog.Themes))
		for i, file := range in.catalog.Themes {
			paths[i] = in.path("themes", file)
		}
		b.WriteString(blockIndent + "themes " + strings.Join(paths, " ") + "\n")
	}
	b.WriteString("\n")
}

func (in *Injector) include(dir, file string) string {
	return "!include " + in.path(dir, file)
}

func (in *Injector) path(dir, file string) string {
	return in.prefix + "/" + dir + "/" + file
}

// splitLines splits on newlines and drops trailing empty lines, so the
// rendered text always ends with exactly one newline.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
