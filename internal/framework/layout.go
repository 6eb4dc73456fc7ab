// Package framework validates the on-disk layout of a C4 framework workspace.
//
// A framework root holds archetype definitions, styles, themes, terminology and
// documentation. Validation is a fixed sequence of checks (structure, naming,
// archetype completeness, documentation, styles), each a pure function of the
// root path that returns its own findings. The Validator merges them in order.
//
// Inspection is text based: definition files are matched with substrings and
// regular expressions, never parsed, so keywords inside comments or string
// literals are matched as well.
package framework

// Directory and file names that make up a framework root.
const (
	ArchetypesDir  = "custom-archetypes"
	PersonsDir     = "persons"
	SystemsDir     = "systems"
	ContainersDir  = "containers"
	ComponentsDir  = "components"
	StylesDir      = "styles"
	ThemesDir      = "themes"
	DocsDir        = "docs"
	TerminologyDir = "terminology"

	WorkspaceFile = "workspace.dsl"

	// DefinitionExt is the suffix of architecture definition files.
	DefinitionExt = ".dsl"
	// DocumentationExt is the suffix of documentation files under docs/.
	DocumentationExt = ".md"

	// PropertiesMarker opens a properties block inside an archetype definition.
	PropertiesMarker = "properties {"
)

// RequiredDirs lists the subdirectories every framework root must contain.
var RequiredDirs = []string{
	ArchetypesDir,
	PersonsDir,
	SystemsDir,
	ContainersDir,
	ComponentsDir,
	StylesDir,
	ThemesDir,
	DocsDir,
	TerminologyDir,
}

// RequiredDocs lists the documents expected directly under docs/.
var RequiredDocs = []string{
	"EXTENSION_GUIDE.md",
	"FRAMEWORK_GOVERNANCE.md",
}

// StyledElements lists the element tags every style file should cover.
var StyledElements = []string{"Person", "Container", "Component"}

// ElementKeywords are the DSL keywords that introduce model elements.
var ElementKeywords = []string{"person", "softwareSystem", "container", "component"}

// PropertySpec maps an element keyword to the property names an archetype of
// that kind is expected to declare.
type PropertySpec struct {
	Keyword    string
	Properties []string
}

// RequiredProperties is ordered so findings come out deterministically.
var RequiredProperties = []PropertySpec{
	{Keyword: "softwareSystem", Properties: []string{"system.type", "business.owner", "technical.owner"}},
	{Keyword: "container", Properties: []string{"technology"}},
	{Keyword: "component", Properties: []string{"technology"}},
}
