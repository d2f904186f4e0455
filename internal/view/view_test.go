package view

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/ziadkadry99/animdocs/internal/catalog"
)

func recipe(id, name string, tags ...string) catalog.Recipe {
	return catalog.Recipe{
		ID:          id,
		Name:        name,
		Description: name + " does things.",
		UseCases:    []string{"Loading screens", "Forms"},
		Tags:        tags,
		Sources: map[catalog.Language]string{
			catalog.TypeScript: "export const " + strings.ReplaceAll(name, " ", "") + ": React.FC = () => null;\n",
			catalog.JavaScript: "export const " + strings.ReplaceAll(name, " ", "") + " = () => null;\n",
		},
	}
}

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		recipe("progress-bar", "Progress Bar", "progress", "loading", "ui", "feedback"),
		recipe("flip-card", "Flip Card", "card", "flip", "interaction", "3d", "transition"),
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestOpenDetail(t *testing.T) {
	c := newCatalog(t)

	res := OpenDetail(c, "flip-card")
	if !res.Found() {
		t.Fatal("expected flip-card to open")
	}
	if res.Detail.Recipe().ID != "flip-card" {
		t.Errorf("opened %q", res.Detail.Recipe().ID)
	}

	res = OpenDetail(c, "nonexistent")
	if res.Found() {
		t.Fatal("nonexistent should not open")
	}
	if res.RedirectTo != HomePath {
		t.Errorf("RedirectTo = %q, want %q", res.RedirectTo, HomePath)
	}
}

func TestDetailTabStateMachine(t *testing.T) {
	c := newCatalog(t)
	d := OpenDetail(c, "progress-bar").Detail

	if d.ActiveTab() != catalog.TypeScript {
		t.Fatalf("initial tab = %q, want typescript", d.ActiveTab())
	}
	before := d.ActiveSource()
	if before != d.Recipe().Sources[catalog.TypeScript] {
		t.Errorf("ActiveSource does not match the typescript source")
	}

	changed, err := d.SelectTab(catalog.TypeScript)
	if err != nil || changed {
		t.Errorf("re-selecting the active tab: changed=%v err=%v, want no-op", changed, err)
	}

	changed, err = d.SelectTab(catalog.JavaScript)
	if err != nil || !changed {
		t.Fatalf("SelectTab(javascript): changed=%v err=%v", changed, err)
	}
	if d.ActiveSource() != d.Recipe().Sources[catalog.JavaScript] {
		t.Error("javascript tab shows the wrong source")
	}
	if d.FileName() != "ProgressBar.jsx" {
		t.Errorf("FileName = %q", d.FileName())
	}

	if _, err := d.SelectTab(catalog.TypeScript); err != nil {
		t.Fatal(err)
	}
	if d.ActiveSource() != before {
		t.Error("round trip typescript -> javascript -> typescript changed the source")
	}

	if _, err := d.SelectTab("python"); !errors.Is(err, catalog.ErrUnsupportedLanguage) {
		t.Errorf("SelectTab(python) err = %v", err)
	}
	if d.ActiveTab() != catalog.TypeScript {
		t.Error("invalid selection changed state")
	}
}

func TestDetailTabs(t *testing.T) {
	d := NewDetail(recipe("flip-card", "Flip Card"))
	want := []Tab{
		{Language: catalog.TypeScript, Label: "TypeScript", Active: true},
		{Language: catalog.JavaScript, Label: "JavaScript", Active: false},
	}
	if diff := cmp.Diff(want, d.Tabs()); diff != "" {
		t.Errorf("Tabs mismatch (-want +got):\n%s", diff)
	}
}

func TestDetailExportAndCopy(t *testing.T) {
	d := NewDetail(recipe("flip-card", "Flip Card"))

	var saved string
	name, err := d.Export(saverFunc(func(n, content, _ string) error {
		saved = content
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if name != "FlipCard.tsx" || saved != d.ActiveSource() {
		t.Errorf("export name=%q content=%q", name, saved)
	}

	cb := &memClipboard{}
	if !d.Copy(cb, zap.NewNop()) || cb.text != d.ActiveSource() {
		t.Error("copy did not place the active source on the clipboard")
	}
	cb.err = errors.New("denied")
	if d.Copy(cb, zap.NewNop()) {
		t.Error("copy should report failure when the clipboard fails")
	}
}

func TestDetailPreviewURL(t *testing.T) {
	r := recipe("flip-card", "Flip Card")
	d := NewDetail(r)
	if got := d.PreviewURL("/assets/"); got != "/assets/videos/flip-card.mp4" {
		t.Errorf("PreviewURL = %q", got)
	}
	r.PreviewURL = "https://cdn.example.com/flip.webm"
	if got := NewDetail(r).PreviewURL("/assets"); got != r.PreviewURL {
		t.Errorf("explicit PreviewURL ignored: %q", got)
	}
}

func TestListing(t *testing.T) {
	c := newCatalog(t)
	l := NewListing(c)

	if l.Term() != "" {
		t.Errorf("initial term = %q", l.Term())
	}
	if len(l.Results()) != 2 {
		t.Errorf("empty term should list everything, got %d", len(l.Results()))
	}

	l.SetTerm("card")
	items := l.NavItems("flip-card")
	want := []NavItem{{ID: "flip-card", Name: "Flip Card", Href: "/animation/flip-card", Active: true}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("NavItems mismatch (-want +got):\n%s", diff)
	}

	l.SetTerm("nothing matches")
	if !l.NoResults() {
		t.Error("expected NoResults")
	}
}

func TestCurrentID(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/", "", false},
		{"/animation/", "", false},
		{"/animation/flip-card", "flip-card", true},
		{"/animation/flip-card/download", "flip-card", true},
		{"/other/flip-card", "", false},
	}
	for _, tt := range tests {
		got, ok := CurrentID(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CurrentID(%q) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
	if DetailPath("flip-card") != "/animation/flip-card" {
		t.Errorf("DetailPath = %q", DetailPath("flip-card"))
	}
}

func TestBreadcrumbs(t *testing.T) {
	c := newCatalog(t)

	want := []Crumb{{Label: "Home", Href: "/"}, {Label: "Flip Card"}}
	if diff := cmp.Diff(want, Breadcrumbs(c, "/animation/flip-card")); diff != "" {
		t.Errorf("detail breadcrumbs (-want +got):\n%s", diff)
	}

	home := []Crumb{{Label: "Home", Href: "/"}}
	for _, p := range []string{"/", "/animation/unknown"} {
		if diff := cmp.Diff(home, Breadcrumbs(c, p)); diff != "" {
			t.Errorf("breadcrumbs for %q (-want +got):\n%s", p, diff)
		}
	}
}

func TestTheme(t *testing.T) {
	th := ParseTheme("")
	if th.Dark || th.CodeStyle() != LightCodeStyle || th.ClassName() != "theme-light" {
		t.Errorf("default theme = %+v", th)
	}
	th.Toggle()
	if !th.Dark || th.String() != "dark" || th.CodeStyle() != DarkCodeStyle {
		t.Errorf("toggled theme = %+v", th)
	}
	if ParseTheme(th.String()) != th {
		t.Error("theme does not survive its persisted form")
	}

	ctx := WithTheme(context.Background(), th)
	if !ThemeFrom(ctx).Dark {
		t.Error("theme lost in context")
	}
	if ThemeFrom(context.Background()).Dark {
		t.Error("missing theme should default to light")
	}
}

func TestPageMeta(t *testing.T) {
	c := newCatalog(t)
	site := SiteInfo{Title: "React Native Animation Components", Description: "A library.", BaseURL: "https://rn.example.com/"}

	m := PageMeta(c, "/", site)
	if m.Title != site.Title || m.Description != site.Description || m.StructuredData != "" {
		t.Errorf("home meta = %+v", m)
	}
	if m.CanonicalURL != "https://rn.example.com/" {
		t.Errorf("canonical = %q", m.CanonicalURL)
	}

	m = PageMeta(c, "/animation/flip-card", site)
	if m.Title != "Flip Card | React Native Animation Components" {
		t.Errorf("title = %q", m.Title)
	}
	if m.Description != "Flip Card does things." {
		t.Errorf("description = %q", m.Description)
	}

	var ld map[string]string
	if err := json.Unmarshal([]byte(m.StructuredData), &ld); err != nil {
		t.Fatalf("structured data: %v", err)
	}
	if ld["@type"] != "TechArticle" || ld["keywords"] != "card, flip, interaction, 3d, transition" {
		t.Errorf("structured data = %v", ld)
	}
	if ld["articleBody"] != "Flip Card does things. Common use cases include: Loading screens, Forms" {
		t.Errorf("articleBody = %q", ld["articleBody"])
	}

	m = PageMeta(c, "/animation/unknown", site)
	if m.Title != site.Title {
		t.Errorf("unknown recipe title = %q", m.Title)
	}
}

type saverFunc func(name, content, mimeType string) error

func (f saverFunc) Save(name, content, mimeType string) error { return f(name, content, mimeType) }

type memClipboard struct {
	text string
	err  error
}

func (m *memClipboard) WriteAll(s string) error {
	if m.err != nil {
		return m.err
	}
	m.text = s
	return nil
}
