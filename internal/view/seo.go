package view

import (
	"encoding/json"
	"strings"

	"github.com/ziadkadry99/animdocs/internal/catalog"
)

// SiteInfo is the site-wide metadata used for head tags.
type SiteInfo struct {
	Title       string
	Description string
	BaseURL     string
}

// Meta is the head metadata of one page.
type Meta struct {
	Title        string
	Description  string
	CanonicalURL string
	// StructuredData is JSON-LD, empty when the page has none.
	StructuredData string
}

type techArticle struct {
	Context        string `json:"@context"`
	Type           string `json:"@type"`
	Headline       string `json:"headline"`
	Description    string `json:"description"`
	Keywords       string `json:"keywords"`
	ArticleSection string `json:"articleSection"`
	ArticleBody    string `json:"articleBody"`
}

// PageMeta computes the head metadata for path.
func PageMeta(c *catalog.Catalog, path string, site SiteInfo) Meta {
	m := Meta{
		Title:        site.Title,
		Description:  site.Description,
		CanonicalURL: strings.TrimSuffix(site.BaseURL, "/") + path,
	}

	id, ok := CurrentID(path)
	if !ok {
		return m
	}
	r, ok := catalog.FindByID(c, id)
	if !ok {
		return m
	}

	m.Title = r.Name + " | " + site.Title
	m.Description = r.Description

	data, err := json.Marshal(techArticle{
		Context:        "https://schema.org",
		Type:           "TechArticle",
		Headline:       r.Name,
		Description:    r.Description,
		Keywords:       strings.Join(r.Tags, ", "),
		ArticleSection: "React Native Animation",
		ArticleBody:    r.Description + " Common use cases include: " + strings.Join(r.UseCases, ", "),
	})
	if err == nil {
		m.StructuredData = string(data)
	}
	return m
}
