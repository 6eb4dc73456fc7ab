package framework

import (
	"fmt"
	"os"
	"path/filepath"
)

// CheckStructure verifies that every required directory exists and is
// non-empty, and that the workspace file is present. Directories outside the
// required set are ignored.
func CheckStructure(root string) []Finding {
	var findings []Finding

	for _, name := range RequiredDirs {
		dir := filepath.Join(root, name)

		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			findings = append(findings, errorFinding(CheckNameStructure,
				fmt.Sprintf("Missing required directory: %s", name)))
			continue
		}

		empty, err := isEmptyDir(dir)
		if err != nil {
			findings = append(findings, errorFinding(CheckNameStructure,
				fmt.Sprintf("Error reading directory %s: %v", name, err)))
			continue
		}
		if empty {
			findings = append(findings, warningFinding(CheckNameStructure,
				fmt.Sprintf("Empty directory: %s", name)))
		}
	}

	if !exists(filepath.Join(root, WorkspaceFile)) {
		findings = append(findings, errorFinding(CheckNameStructure,
			fmt.Sprintf("Missing %s file", WorkspaceFile)))
	}

	return findings
}
