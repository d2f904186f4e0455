// Package catalog holds the animation recipe catalog and the lookups
// the site, CLI and MCP server run against it.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned when no recipe has the requested id.
var ErrNotFound = errors.New("animation not found")

var idPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Catalog is an ordered, read-only set of recipes. Insertion order is the
// display order. A Catalog is never mutated after New, so it can be shared
// between goroutines freely.
type Catalog struct {
	recipes []Recipe
	index   map[string]int
}

// New validates recipes and builds a Catalog from them.
func New(recipes ...Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]Recipe, 0, len(recipes)),
		index:   make(map[string]int, len(recipes)),
	}
	for i, r := range recipes {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		if _, dup := c.index[r.ID]; dup {
			return nil, fmt.Errorf("recipe %d: duplicate id %q", i, r.ID)
		}
		c.index[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r.clone())
	}
	return c, nil
}

func validate(r Recipe) error {
	if !idPattern.MatchString(r.ID) {
		return fmt.Errorf("id %q is not URL-safe", r.ID)
	}
	if r.Name == "" {
		return fmt.Errorf("%s: name is required", r.ID)
	}
	for _, lang := range Languages() {
		if r.Sources[lang] == "" {
			return fmt.Errorf("%s: missing %s source", r.ID, lang)
		}
	}
	for lang := range r.Sources {
		if !lang.Valid() {
			return fmt.Errorf("%s: %w: %q", r.ID, ErrUnsupportedLanguage, string(lang))
		}
	}
	return nil
}

// All returns every recipe in display order.
func (c *Catalog) All() []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = r.clone()
	}
	return out
}

// ByID returns the recipe with the given id.
func (c *Catalog) ByID(id string) (Recipe, bool) {
	i, ok := c.index[id]
	if !ok {
		return Recipe{}, false
	}
	return c.recipes[i].clone(), true
}

// Get is ByID with an error for callers that propagate failures.
func (c *Catalog) Get(id string) (Recipe, error) {
	r, ok := c.ByID(id)
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return r, nil
}

// First returns the first recipe in display order.
func (c *Catalog) First() (Recipe, bool) {
	if len(c.recipes) == 0 {
		return Recipe{}, false
	}
	return c.recipes[0].clone(), true
}

// Len returns the number of recipes.
func (c *Catalog) Len() int { return len(c.recipes) }
