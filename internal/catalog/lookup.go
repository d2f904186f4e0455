package catalog

import "strings"

// FindByID is an exact-match lookup used to route to a detail view.
// There is no partial or fuzzy matching.
func FindByID(c *Catalog, id string) (Recipe, bool) {
	return c.ByID(id)
}

// FilterByTerm returns the recipes whose name or any tag contains term,
// ignoring case, in catalog order. An empty term matches everything.
// The term is matched literally; surrounding whitespace is not trimmed.
func FilterByTerm(c *Catalog, term string) []Recipe {
	out := make([]Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		if Matches(r, term) {
			out = append(out, r.clone())
		}
	}
	return out
}

// Matches reports whether r's name or one of its tags contains term.
func Matches(r Recipe, term string) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
