package view

import "github.com/ziadkadry99/animdocs/internal/catalog"

// Crumb is one breadcrumb entry. The last crumb has no Href.
type Crumb struct {
	Label string
	Href  string
}

// Breadcrumbs derives the trail for path: always Home, then the recipe
// name on a detail page of a known recipe.
func Breadcrumbs(c *catalog.Catalog, path string) []Crumb {
	crumbs := []Crumb{{Label: "Home", Href: HomePath}}
	id, ok := CurrentID(path)
	if !ok {
		return crumbs
	}
	if r, ok := catalog.FindByID(c, id); ok {
		crumbs = append(crumbs, Crumb{Label: r.Name})
	}
	return crumbs
}
