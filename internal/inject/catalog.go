// Package inject renders a workspace definition with the framework's
// archetypes, styles, terminology and themes included, so a workspace can use
// the framework without listing every file by hand.
package inject

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/c4framework/c4validate/internal/framework"
)

// themeExt is the suffix of theme files; every other category holds definitions.
const themeExt = ".json"

// Catalog lists the includable files of a framework root, by category.
// Each list holds sorted, de-duplicated base names.
type Catalog struct {
	Persons     []string
	Systems     []string
	Containers  []string
	Components  []string
	Styles      []string
	Terminology []string
	Themes      []string
}

// Discover scans root for includable files. A missing category directory
// yields an empty list; root itself must be a directory.
func Discover(root string) (*Catalog, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading framework root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("framework root %s is not a directory", root)
	}

	cat := &Catalog{}
	targets := []struct {
		dir  string
		ext  string
		dest *[]string
	}{
		{framework.PersonsDir, framework.DefinitionExt, &cat.Persons},
		{framework.SystemsDir, framework.DefinitionExt, &cat.Systems},
		{framework.ContainersDir, framework.DefinitionExt, &cat.Containers},
		{framework.ComponentsDir, framework.DefinitionExt, &cat.Components},
		{framework.StylesDir, framework.DefinitionExt, &cat.Styles},
		{framework.TerminologyDir, framework.DefinitionExt, &cat.Terminology},
		{framework.ThemesDir, themeExt, &cat.Themes},
	}

	for _, target := range targets {
		names, err := scan(filepath.Join(root, target.dir), target.ext)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", target.dir, err)
		}
		*target.dest = names
	}
	return cat, nil
}

// Empty reports whether no category holds any file.
func (c *Catalog) Empty() bool {
	return len(c.Persons)+len(c.Systems)+len(c.Containers)+len(c.Components)+
		len(c.Styles)+len(c.Terminology)+len(c.Themes) == 0
}

func scan(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
