package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/export"
	"github.com/ziadkadry99/animdocs/internal/view"
)

// themeCookieAge keeps the theme choice for a year.
const themeCookieAge = 365 * 24 * time.Hour

// RoutesDeps holds what the site handlers need.
type RoutesDeps struct {
	Catalog  *catalog.Catalog
	Renderer *Renderer
	// Recorder receives downloads and copies. Nil discards them.
	Recorder activity.Recorder
	// AssetsDir is served under /videos. Empty disables it.
	AssetsDir string
	// Cache holds rendered pages. Nil renders every request.
	Cache *PageCache
	Log   *zap.Logger
}

// RegisterRoutes wires the pages, their assets and the catalog JSON API.
func RegisterRoutes(r chi.Router, deps RoutesDeps) {
	if deps.Recorder == nil {
		deps.Recorder = activity.Nop{}
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	h := &routeHandler{deps: deps}

	r.Group(func(r chi.Router) {
		r.Use(h.withTheme)
		r.Get("/", h.home)
		r.Get("/animation/{id}", h.detail)
		r.Get("/animation/{id}/download", h.download)
		r.Post("/theme", h.toggleTheme)
	})

	r.Get("/static/{name}", h.static)
	r.Get("/search-index.json", h.searchIndex)

	r.Route("/api/animations", func(r chi.Router) {
		r.Get("/", h.listAnimations)
		r.Get("/{id}", h.getAnimation)
	})
	r.Post("/api/events/copy", h.copyEvent)

	if deps.AssetsDir != "" {
		r.Handle("/videos/*", http.StripPrefix(h.deps.Renderer.link("/"), http.FileServer(http.Dir(deps.AssetsDir))))
	}
}

type routeHandler struct {
	deps RoutesDeps
}

// withTheme puts the visitor's theme cookie into the request context.
func (h *routeHandler) withTheme(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var theme view.Theme
		if c, err := r.Cookie(view.ThemeCookie); err == nil {
			theme = view.ParseTheme(c.Value)
		}
		next.ServeHTTP(w, r.WithContext(view.WithTheme(r.Context(), theme)))
	})
}

func (h *routeHandler) home(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}
	h.renderHTML(w, r, func(buf io.Writer) error {
		return h.deps.Renderer.Home(buf, view.ThemeFrom(r.Context()))
	})
}

func (h *routeHandler) detail(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}
	d, ok := h.openDetail(w, r)
	if !ok {
		return
	}

	listing := view.NewListing(h.deps.Catalog)
	listing.SetTerm(r.URL.Query().Get("q"))

	h.renderHTML(w, r, func(buf io.Writer) error {
		return h.deps.Renderer.Detail(buf, d, listing, view.ThemeFrom(r.Context()))
	})
}

func (h *routeHandler) download(w http.ResponseWriter, r *http.Request) {
	d, ok := h.openDetail(w, r)
	if !ok {
		return
	}

	fileName, err := d.Export(export.ResponseSaver{W: w})
	event := activity.Event{
		Kind:     activity.KindDownload,
		RecipeID: d.Recipe().ID,
		Language: string(d.ActiveTab()),
		FileName: fileName,
		Origin:   activity.OriginWeb,
	}
	if err != nil {
		event.Error = err.Error()
		h.deps.Log.Warn("download failed", zap.String("id", d.Recipe().ID), zap.Error(err))
	}
	h.record(r, event)
}

// openDetail resolves {id} and ?lang. It answers the request itself when
// the recipe is unknown (redirect home) or the language is not offered.
func (h *routeHandler) openDetail(w http.ResponseWriter, r *http.Request) (*view.Detail, bool) {
	res := view.OpenDetail(h.deps.Catalog, chi.URLParam(r, "id"))
	if !res.Found() {
		http.Redirect(w, r, h.deps.Renderer.link(res.RedirectTo), http.StatusFound)
		return nil, false
	}

	if v := r.URL.Query().Get("lang"); v != "" {
		lang, err := catalog.ParseLanguage(v)
		if err == nil {
			_, err = res.Detail.SelectTab(lang)
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
	}
	return res.Detail, true
}

func (h *routeHandler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := view.ThemeFrom(r.Context())
	theme.Toggle()

	http.SetCookie(w, &http.Cookie{
		Name:     view.ThemeCookie,
		Value:    theme.String(),
		Path:     h.deps.Renderer.link("/"),
		MaxAge:   int(themeCookieAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.backTo(r), http.StatusSeeOther)
}

// backTo returns the same-site page named by the Referer, or home.
func (h *routeHandler) backTo(r *http.Request) string {
	home := h.deps.Renderer.link(view.HomePath)
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" {
		return home
	}
	if ref.Host != "" && ref.Host != r.Host {
		return home
	}
	if !strings.HasPrefix(ref.Path, h.deps.Renderer.link("/")) {
		return home
	}
	back := ref.Path
	if ref.RawQuery != "" {
		back += "?" + ref.RawQuery
	}
	return back
}

func (h *routeHandler) static(w http.ResponseWriter, r *http.Request) {
	var content, contentType string
	switch chi.URLParam(r, "name") {
	case "style.css":
		content, contentType = h.deps.Renderer.Stylesheet(), "text/css; charset=utf-8"
	case "code.css":
		content, contentType = h.deps.Renderer.CodeStylesheet(), "text/css; charset=utf-8"
	case "script.js":
		content, contentType = h.deps.Renderer.Script(), "text/javascript; charset=utf-8"
	default:
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.WriteString(w, content)
}

func (h *routeHandler) searchIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BuildSearchIndex(h.deps.Catalog))
}

func (h *routeHandler) listAnimations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.FilterByTerm(h.deps.Catalog, r.URL.Query().Get("q")))
}

func (h *routeHandler) getAnimation(w http.ResponseWriter, r *http.Request) {
	rec, err := h.deps.Catalog.Get(chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

type copyEventRequest struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Error    string `json:"error,omitempty"`
}

// copyEvent records a clipboard copy reported by the browser.
func (h *routeHandler) copyEvent(w http.ResponseWriter, r *http.Request) {
	var req copyEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if _, ok := catalog.FindByID(h.deps.Catalog, req.ID); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown animation"})
		return
	}
	lang, err := catalog.ParseLanguage(req.Language)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	h.record(r, activity.Event{
		Kind:     activity.KindCopy,
		RecipeID: req.ID,
		Language: string(lang),
		Origin:   activity.OriginWeb,
		Error:    req.Error,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *routeHandler) record(r *http.Request, e activity.Event) {
	if err := h.deps.Recorder.Record(r.Context(), e); err != nil {
		h.deps.Log.Warn("recording activity",
			zap.String("kind", string(e.Kind)),
			zap.String("id", e.RecipeID),
			zap.Error(err),
		)
	}
}

// pageKey identifies a rendered page: the theme changes the markup, the
// query selects the tab and the sidebar filter.
func pageKey(r *http.Request) string {
	return view.ThemeFrom(r.Context()).String() + " " + r.URL.Path + "?" + r.URL.RawQuery
}

// serveCached answers r from the page cache when it holds the page.
func (h *routeHandler) serveCached(w http.ResponseWriter, r *http.Request) bool {
	page, ok := h.deps.Cache.Get(pageKey(r))
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Page-Cache", "hit")
	w.Write(page)
	return true
}

// renderHTML buffers the page so a template failure becomes a clean 500.
// Rendered pages are stored in the page cache.
func (h *routeHandler) renderHTML(w http.ResponseWriter, r *http.Request, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		h.deps.Log.Error("rendering page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.deps.Cache.Set(pageKey(r), buf.Bytes())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
