package framework

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CheckArchetypes inspects the definition files directly inside
// custom-archetypes/. A file without a properties block gets a single warning;
// otherwise each element keyword found in the text contributes a warning per
// required property whose quoted name is absent. Keywords are tested
// independently, so one file can collect warnings for several kinds.
//
// Unlike CheckNaming, an unreadable archetype file is an error.
func CheckArchetypes(root string) []Finding {
	var findings []Finding

	dir := filepath.Join(root, ArchetypesDir)
	for _, name := range listWithExt(dir, DefinitionExt) {
		text, err := readText(filepath.Join(dir, name))
		if err != nil {
			findings = append(findings, errorFinding(CheckNameArchetypes,
				fmt.Sprintf("Error reading archetype file %s: %v", name, err)))
			continue
		}

		if !strings.Contains(text, PropertiesMarker) {
			findings = append(findings, warningFinding(CheckNameArchetypes,
				fmt.Sprintf("No properties block found in archetype: %s", name)))
			continue
		}

		for _, req := range RequiredProperties {
			if !strings.Contains(text, req.Keyword) {
				continue
			}
			for _, prop := range req.Properties {
				if !strings.Contains(text, `"`+prop+`"`) {
					findings = append(findings, warningFinding(CheckNameArchetypes,
						fmt.Sprintf("Missing recommended property '%s' in %s", prop, name)))
				}
			}
		}
	}

	return findings
}
