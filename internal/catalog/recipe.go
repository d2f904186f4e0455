package catalog

import (
	"errors"
	"fmt"
)

// Language selects one of the two source variants a recipe ships with.
type Language string

const (
	TypeScript Language = "typescript"
	JavaScript Language = "javascript"
)

// DefaultLanguage is the tab a detail view opens on.
const DefaultLanguage = TypeScript

// ErrUnsupportedLanguage is returned for any language outside the enum.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Languages returns the supported languages in tab order.
func Languages() []Language {
	return []Language{TypeScript, JavaScript}
}

// ParseLanguage maps user input onto a Language.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(s); l {
	case TypeScript, JavaScript:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Valid reports whether l is one of the two defined languages.
func (l Language) Valid() bool {
	return l == TypeScript || l == JavaScript
}

// Extension is the file extension used for exported sources.
func (l Language) Extension() string {
	switch l {
	case TypeScript:
		return "tsx"
	case JavaScript:
		return "jsx"
	}
	return ""
}

// Label is the human-readable tab title.
func (l Language) Label() string {
	switch l {
	case TypeScript:
		return "TypeScript"
	case JavaScript:
		return "JavaScript"
	}
	return string(l)
}

// Recipe is a single animation component in the catalog.
type Recipe struct {
	ID              string              `yaml:"id" json:"id"`
	Name            string              `yaml:"name" json:"name"`
	Description     string              `yaml:"description" json:"description"`
	UseCases        []string            `yaml:"use_cases" json:"use_cases"`
	PerformanceTips []string            `yaml:"performance_tips,omitempty" json:"performance_tips,omitempty"`
	Tags            []string            `yaml:"tags" json:"tags"`
	Sources         map[Language]string `yaml:"sources" json:"sources"`
	PreviewURL      string              `yaml:"preview_url,omitempty" json:"preview_url,omitempty"`
}

// Source returns the source text for lang.
func (r Recipe) Source(lang Language) (string, error) {
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(lang))
	}
	return r.Sources[lang], nil
}

// clone returns a deep copy so callers cannot reach into the store.
func (r Recipe) clone() Recipe {
	out := r
	out.UseCases = append([]string(nil), r.UseCases...)
	out.PerformanceTips = append([]string(nil), r.PerformanceTips...)
	out.Tags = append([]string(nil), r.Tags...)
	out.Sources = make(map[Language]string, len(r.Sources))
	for k, v := range r.Sources {
		out.Sources[k] = v
	}
	return out
}
