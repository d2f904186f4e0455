package site

import (
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/export"
	"github.com/ziadkadry99/animdocs/internal/view"
)

// Options configures a Renderer.
type Options struct {
	Site view.SiteInfo
	// BasePath prefixes every site-relative link, e.g. /react-native-animations.
	BasePath string
	// AssetBase locates preview videos. Defaults to BasePath.
	AssetBase string
	// Static renders pages for a plain file host: download links point at
	// exported files and the theme toggle runs in the browser.
	Static bool
	// EventsURL receives copy reports from the browser. Empty disables them.
	EventsURL string
	// Intro is the home page introduction in markdown. Nil uses DefaultIntro.
	Intro []byte
}

// Renderer produces the HTML pages of the site.
type Renderer struct {
	catalog     *catalog.Catalog
	opts        Options
	intro       template.HTML
	highlighter *Highlighter
	home        *template.Template
	detail      *template.Template
	notFound    *template.Template
	codeCSS     string
}

// pageData is the data passed to the layout template.
type pageData struct {
	Meta           view.Meta
	StructuredData template.JS
	SiteTitle      string
	Theme          view.Theme
	Static         bool
	EventsURL      string
	Crumbs         []view.Crumb
	Sidebar        *sidebarData
	Home           *homeData
	Detail         *detailData
}

type sidebarData struct {
	Term      string
	Items     []sidebarItem
	NoResults bool
}

type sidebarItem struct {
	Name   string
	Tags   string
	Href   string
	Active bool
	Hidden bool
}

type homeData struct {
	Intro   template.HTML
	Explore string
	Cards   []card
}

type card struct {
	Name        string
	Description string
	Href        string
}

type detailData struct {
	ID              string
	Name            string
	Description     string
	Tags            []string
	UseCases        []string
	PerformanceTips []string
	PreviewURL      string
	Active          catalog.Language
	DownloadHref    string
	FileName        string
	Panes           []codePane
}

type codePane struct {
	Language     catalog.Language
	Label        string
	Active       bool
	Source       string
	Highlighted  template.HTML
	FileName     string
	DownloadHref string
}

// NewRenderer parses the page templates and renders the intro once.
func NewRenderer(c *catalog.Catalog, opts Options) (*Renderer, error) {
	opts.BasePath = strings.TrimSuffix(opts.BasePath, "/")
	if opts.AssetBase == "" {
		opts.AssetBase = opts.BasePath
	}

	r := &Renderer{
		catalog:     c,
		opts:        opts,
		highlighter: NewHighlighter(),
	}

	introMD := opts.Intro
	if introMD == nil {
		introMD = defaultIntro
	}
	intro, err := renderIntro(introMD)
	if err != nil {
		return nil, err
	}
	r.intro = intro

	layout, err := template.New("site").Funcs(template.FuncMap{"url": r.link}).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	if r.home, err = parsePage(layout, "home", homeTemplate); err != nil {
		return nil, err
	}
	if r.detail, err = parsePage(layout, "detail", detailTemplate); err != nil {
		return nil, err
	}
	if r.notFound, err = template.New("not-found").Parse(notFoundTemplate); err != nil {
		return nil, fmt.Errorf("parsing not-found template: %w", err)
	}

	if r.codeCSS, err = CodeCSS(); err != nil {
		return nil, err
	}
	return r, nil
}

func parsePage(layout *template.Template, name, text string) (*template.Template, error) {
	clone, err := layout.Clone()
	if err != nil {
		return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
	}
	t, err := clone.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s template: %w", name, err)
	}
	return t, nil
}

// link prefixes a site-relative path with the base path.
func (r *Renderer) link(path string) string {
	if !strings.HasPrefix(path, "/") {
		return path
	}
	return r.opts.BasePath + path
}

// Stylesheet returns the site stylesheet.
func (r *Renderer) Stylesheet() string { return cssContent }

// Script returns the site script.
func (r *Renderer) Script() string { return jsContent }

// CodeStylesheet returns the token colours for both themes.
func (r *Renderer) CodeStylesheet() string { return r.codeCSS }

// Home renders the landing page.
func (r *Renderer) Home(w io.Writer, theme view.Theme) error {
	recipes := r.catalog.All()
	cards := make([]card, len(recipes))
	for i, rec := range recipes {
		cards[i] = card{Name: rec.Name, Description: rec.Description, Href: view.DetailPath(rec.ID)}
	}

	home := &homeData{Intro: r.intro, Cards: cards}
	if first, ok := r.catalog.First(); ok {
		home.Explore = view.DetailPath(first.ID)
	}

	data := r.page(view.HomePath, theme)
	data.Home = home
	return r.home.ExecuteTemplate(w, "layout", data)
}

// Detail renders the page of an open recipe with the sidebar filtered by
// listing.
func (r *Renderer) Detail(w io.Writer, d *view.Detail, listing *view.Listing, theme view.Theme) error {
	rec := d.Recipe()
	path := view.DetailPath(rec.ID)

	langs := catalog.Languages()
	panes := make([]codePane, 0, len(langs))
	for _, lang := range langs {
		source, err := rec.Source(lang)
		if err != nil {
			return err
		}
		highlighted, err := r.highlighter.Render(source, lang)
		if err != nil {
			return err
		}
		fileName, err := export.SuggestFileName(rec, lang)
		if err != nil {
			return err
		}
		panes = append(panes, codePane{
			Language:     lang,
			Label:        lang.Label(),
			Active:       lang == d.ActiveTab(),
			Source:       source,
			Highlighted:  template.HTML(highlighted),
			FileName:     fileName,
			DownloadHref: r.downloadHref(rec.ID, lang, fileName),
		})
	}

	data := r.page(path, theme)
	data.Sidebar = r.sidebar(listing, rec.ID)
	data.Detail = &detailData{
		ID:              rec.ID,
		Name:            rec.Name,
		Description:     rec.Description,
		Tags:            rec.Tags,
		UseCases:        rec.UseCases,
		PerformanceTips: rec.PerformanceTips,
		PreviewURL:      d.PreviewURL(r.opts.AssetBase),
		Active:          d.ActiveTab(),
		DownloadHref:    r.downloadHref(rec.ID, d.ActiveTab(), d.FileName()),
		FileName:        d.FileName(),
		Panes:           panes,
	}
	return r.detail.ExecuteTemplate(w, "layout", data)
}

// NotFound renders the static-host fallback page that redirects home.
func (r *Renderer) NotFound(w io.Writer) error {
	return r.notFound.Execute(w, r.link(view.HomePath))
}

func (r *Renderer) page(path string, theme view.Theme) pageData {
	meta := view.PageMeta(r.catalog, path, r.opts.Site)
	return pageData{
		Meta:           meta,
		StructuredData: template.JS(meta.StructuredData),
		SiteTitle:      r.opts.Site.Title,
		Theme:          theme,
		Static:         r.opts.Static,
		EventsURL:      r.opts.EventsURL,
		Crumbs:         view.Breadcrumbs(r.catalog, path),
	}
}

// sidebar lists every recipe and hides those outside the listing's
// results, so the browser-side filter can widen the list again.
func (r *Renderer) sidebar(listing *view.Listing, currentID string) *sidebarData {
	if listing == nil {
		listing = view.NewListing(r.catalog)
	}
	shown := make(map[string]bool)
	for _, rec := range listing.Results() {
		shown[rec.ID] = true
	}

	all := r.catalog.All()
	nav := view.NewListing(r.catalog).NavItems(currentID)
	items := make([]sidebarItem, len(nav))
	for i, n := range nav {
		items[i] = sidebarItem{
			Name:   n.Name,
			Tags:   strings.Join(all[i].Tags, "\n"),
			Href:   n.Href,
			Active: n.Active,
			Hidden: !shown[n.ID],
		}
	}
	return &sidebarData{Term: listing.Term(), Items: items, NoResults: len(shown) == 0}
}

// downloadHref points at the download endpoint when served and at the
// exported file on static builds.
func (r *Renderer) downloadHref(id string, lang catalog.Language, fileName string) string {
	if r.opts.Static {
		return view.DetailPath(id) + "/" + url.PathEscape(fileName)
	}
	return view.DetailPath(id) + "/download?lang=" + url.QueryEscape(string(lang))
}
