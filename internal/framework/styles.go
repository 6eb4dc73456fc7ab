package framework

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CheckStyles verifies that each style file under styles/ declares a style
// for every basic element. Nothing is reported when styles/ is absent; that
// case belongs to CheckStructure.
func CheckStyles(root string) []Finding {
	dir := filepath.Join(root, StylesDir)
	if !exists(dir) {
		return nil
	}

	names := listWithExt(dir, DefinitionExt)
	if len(names) == 0 {
		return []Finding{warningFinding(CheckNameStyles, "No style files found")}
	}

	var findings []Finding
	for _, name := range names {
		text, err := readText(filepath.Join(dir, name))
		if err != nil {
			findings = append(findings, errorFinding(CheckNameStyles,
				fmt.Sprintf("Error reading style file %s: %v", name, err)))
			continue
		}

		for _, element := range StyledElements {
			if !strings.Contains(text, fmt.Sprintf("element %q", element)) {
				findings = append(findings, warningFinding(CheckNameStyles,
					fmt.Sprintf("Missing style for %s in %s", element, name)))
			}
		}
	}
	return findings
}
