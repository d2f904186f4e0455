package view

import "context"

// ThemeCookie is the cookie the HTTP layer persists the theme in.
const ThemeCookie = "animdocs_theme"

// Code styles used for highlighted source in each theme.
const (
	LightCodeStyle = "vs"
	DarkCodeStyle  = "monokai"
)

// Theme is the dark/light display flag. It only changes presentation.
type Theme struct {
	Dark bool
}

// ParseTheme reads a persisted theme value; anything but "dark" is light.
func ParseTheme(v string) Theme {
	return Theme{Dark: v == "dark"}
}

// Toggle flips the theme and returns the new value.
func (t *Theme) Toggle() Theme {
	t.Dark = !t.Dark
	return *t
}

// String is the persisted form.
func (t Theme) String() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

// ClassName is the CSS class applied to the document root.
func (t Theme) ClassName() string {
	return "theme-" + t.String()
}

// CodeStyle names the chroma style for highlighted code.
func (t Theme) CodeStyle() string {
	if t.Dark {
		return DarkCodeStyle
	}
	return LightCodeStyle
}

// ToggleLabel is the accessible label of the theme button.
func (t Theme) ToggleLabel() string {
	if t.Dark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

type themeKey struct{}

// WithTheme returns a context carrying t.
func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, themeKey{}, t)
}

// ThemeFrom returns the theme stored in ctx, light if none.
func ThemeFrom(ctx context.Context) Theme {
	t, _ := ctx.Value(themeKey{}).(Theme)
	return t
}
