package framework

import (
	"fmt"
	"path/filepath"
)

// CheckDocumentation warns about each required document missing from docs/.
// A missing docs/ directory is an error on its own, regardless of what
// CheckStructure already reported.
func CheckDocumentation(root string) []Finding {
	dir := filepath.Join(root, DocsDir)
	if !exists(dir) {
		return []Finding{errorFinding(CheckNameDocumentation, "Missing docs directory")}
	}

	present := make(map[string]bool)
	for _, name := range listWithExt(dir, DocumentationExt) {
		present[name] = true
	}

	var findings []Finding
	for _, doc := range RequiredDocs {
		if !present[doc] {
			findings = append(findings, warningFinding(CheckNameDocumentation,
				fmt.Sprintf("Missing documentation: %s", doc)))
		}
	}
	return findings
}
