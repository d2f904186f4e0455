package view

import (
	"go.uber.org/zap"

	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/export"
)

// DetailResult is the outcome of opening a detail view: either a Detail to
// render or a path to redirect to.
type DetailResult struct {
	Detail     *Detail
	RedirectTo string
}

// Found reports whether a detail view was opened.
func (r DetailResult) Found() bool { return r.Detail != nil }

// OpenDetail opens the detail view for id. Unknown ids fall back to the
// listing page instead of an error.
func OpenDetail(c *catalog.Catalog, id string) DetailResult {
	r, ok := catalog.FindByID(c, id)
	if !ok {
		return DetailResult{RedirectTo: HomePath}
	}
	return DetailResult{Detail: NewDetail(r)}
}

// Detail is the state of one recipe's detail page: which language tab is
// active. It starts on the default language and only changes through
// SelectTab.
type Detail struct {
	recipe catalog.Recipe
	active catalog.Language
}

// NewDetail returns a detail view for r on the default tab.
func NewDetail(r catalog.Recipe) *Detail {
	return &Detail{recipe: r, active: catalog.DefaultLanguage}
}

// Recipe returns the recipe being shown.
func (d *Detail) Recipe() catalog.Recipe { return d.recipe }

// ActiveTab returns the selected language.
func (d *Detail) ActiveTab() catalog.Language { return d.active }

// SelectTab switches to lang. Selecting the active tab is a no-op.
func (d *Detail) SelectTab(lang catalog.Language) (bool, error) {
	if !lang.Valid() {
		return false, export.ErrUnsupportedLanguage
	}
	if lang == d.active {
		return false, nil
	}
	d.active = lang
	return true, nil
}

// ActiveSource is the source shown under the active tab.
func (d *Detail) ActiveSource() string {
	// active is always valid, so the error branch cannot trigger.
	src, _ := export.GetSource(d.recipe, d.active)
	return src
}

// FileName is the download name for the active tab.
func (d *Detail) FileName() string {
	name, _ := export.SuggestFileName(d.recipe, d.active)
	return name
}

// Export saves the active source through saver.
func (d *Detail) Export(saver export.Saver) (string, error) {
	return export.ExportToFile(d.recipe, d.active, saver)
}

// Copy copies the active source and returns the "copied" indicator.
func (d *Detail) Copy(cb export.Clipboard, log *zap.Logger) bool {
	return export.CopySource(cb, d.recipe, d.active, log)
}

// Tab describes one entry of the language switcher.
type Tab struct {
	Language catalog.Language
	Label    string
	Active   bool
}

// Tabs lists the language tabs in display order.
func (d *Detail) Tabs() []Tab {
	langs := catalog.Languages()
	tabs := make([]Tab, len(langs))
	for i, l := range langs {
		tabs[i] = Tab{Language: l, Label: l.Label(), Active: l == d.active}
	}
	return tabs
}

// PreviewURL returns the preview asset for the recipe. An explicit
// preview_url wins over the assetBase convention. The asset is not checked.
func (d *Detail) PreviewURL(assetBase string) string {
	if d.recipe.PreviewURL != "" {
		return d.recipe.PreviewURL
	}
	return VideoPath(assetBase, d.recipe.ID)
}
