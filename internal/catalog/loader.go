package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// DefaultPatterns select recipe files inside a catalog directory.
var DefaultPatterns = []string{"**/*.yaml", "**/*.yml"}

// Load decodes every recipe file in fsys matching any of patterns. Files
// are read in lexical path order, which becomes the display order.
func Load(fsys fs.FS, patterns ...string) ([]Recipe, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	recipes := make([]Recipe, 0, len(paths))
	for _, p := range paths {
		r, err := decodeFile(fsys, p)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

func decodeFile(fsys fs.FS, path string) (Recipe, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Recipe{}, fmt.Errorf("reading %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		return Recipe{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return r, nil
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	return Open(nil, nil)
}

// Open builds a catalog from the built-in recipes followed by the recipes
// found in dirs. Ids must be unique across all sources.
func Open(dirs []string, patterns []string) (*Catalog, error) {
	recipes, err := Load(builtinFS, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading built-in catalog: %w", err)
	}

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("catalog dir %s: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("catalog dir %s: not a directory", dir)
		}
		extra, err := Load(os.DirFS(dir), patterns...)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", dir, err)
		}
		recipes = append(recipes, extra...)
	}

	return New(recipes...)
}
