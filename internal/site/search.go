package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/view"
)

// SearchEntry is one recipe in the published search index.
type SearchEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// BuildSearchIndex lists the catalog in display order.
func BuildSearchIndex(c *catalog.Catalog) []SearchEntry {
	recipes := c.All()
	entries := make([]SearchEntry, len(recipes))
	for i, r := range recipes {
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		entries[i] = SearchEntry{
			ID:          r.ID,
			Name:        r.Name,
			Path:        view.DetailPath(r.ID),
			Description: r.Description,
			Tags:        tags,
		}
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
