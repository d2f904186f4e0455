package view

import "github.com/ziadkadry99/animdocs/internal/catalog"

// Listing is the searchable index shown in the sidebar. Results are
// recomputed from the catalog on every call; nothing is cached.
type Listing struct {
	catalog *catalog.Catalog
	term    string
}

// NewListing returns a listing with an empty search term.
func NewListing(c *catalog.Catalog) *Listing {
	return &Listing{catalog: c}
}

// SetTerm replaces the search term.
func (l *Listing) SetTerm(term string) { l.term = term }

// Term returns the current search term.
func (l *Listing) Term() string { return l.term }

// Results returns the recipes matching the current term.
func (l *Listing) Results() []catalog.Recipe {
	return catalog.FilterByTerm(l.catalog, l.term)
}

// NoResults reports whether the current term matches nothing.
func (l *Listing) NoResults() bool {
	return len(l.Results()) == 0
}

// NavItem is one sidebar link.
type NavItem struct {
	ID     string
	Name   string
	Href   string
	Active bool
}

// NavItems returns sidebar links for the current results, marking
// currentID as active.
func (l *Listing) NavItems(currentID string) []NavItem {
	results := l.Results()
	items := make([]NavItem, len(results))
	for i, r := range results {
		items[i] = NavItem{
			ID:     r.ID,
			Name:   r.Name,
			Href:   DetailPath(r.ID),
			Active: r.ID == currentID,
		}
	}
	return items
}
