package framework

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	kebabCase  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	pascalCase = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

	// elementAssignment captures the identifier in `<id> = <keyword>`. Word
	// characters are Unicode letters, numbers and underscore, so `Café` is one
	// identifier; combining marks are not word characters. The keyword is not
	// anchored on the right, so `x = containerInstance` matches.
	elementAssignment = regexp.MustCompile(`([\p{L}\p{N}_]+)\s*=\s*(?:` + strings.Join(ElementKeywords, "|") + `)`)
)

// IsKebabCase reports whether s is lowercase alphanumeric segments joined by
// single hyphens.
func IsKebabCase(s string) bool {
	return kebabCase.MatchString(s)
}

// IsPascalCase reports whether s starts with an uppercase ASCII letter followed
// only by letters and digits.
func IsPascalCase(s string) bool {
	return pascalCase.MatchString(s)
}

// ElementIdentifiers returns, in order of appearance, every identifier that is
// assigned an element keyword in text.
func ElementIdentifiers(text string) []string {
	matches := elementAssignment.FindAllStringSubmatch(text, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}

// CheckNaming walks every definition file below root and warns about file
// names that are not kebab-case and element identifiers that are not
// PascalCase. Unreadable files are reported as warnings.
func CheckNaming(root string) []Finding {
	var findings []Finding

	for _, path := range walkWithExt(root, DefinitionExt) {
		name := filepath.Base(path)

		if !IsKebabCase(strings.TrimSuffix(name, DefinitionExt)) {
			findings = append(findings, warningFinding(CheckNameNaming,
				fmt.Sprintf("File name not in kebab-case: %s", name)))
		}

		text, err := readText(path)
		if err != nil {
			findings = append(findings, warningFinding(CheckNameNaming,
				fmt.Sprintf("Could not read file %s: %v", name, err)))
			continue
		}

		for _, id := range ElementIdentifiers(text) {
			if !IsPascalCase(id) {
				findings = append(findings, warningFinding(CheckNameNaming,
					fmt.Sprintf("Archetype name not in PascalCase: %s in %s", id, name)))
			}
		}
	}

	return findings
}
