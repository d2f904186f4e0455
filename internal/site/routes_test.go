package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/animdocs/internal/activity"
	"github.com/ziadkadry99/animdocs/internal/catalog"
	"github.com/ziadkadry99/animdocs/internal/view"
)

type memRecorder struct {
	mu     sync.Mutex
	events []activity.Event
}

func (m *memRecorder) Record(_ context.Context, e activity.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

func (m *memRecorder) all() []activity.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]activity.Event(nil), m.events...)
}

func setupRouter(t *testing.T, basePath string) (chi.Router, *memRecorder) {
	t.Helper()
	c := testCatalog(t)
	rec := &memRecorder{}

	assets := t.TempDir()
	if err := os.MkdirAll(filepath.Join(assets, "videos"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assets, "videos", "alpha.mp4"), []byte("fake video"), 0o644); err != nil {
		t.Fatal(err)
	}

	deps := RoutesDeps{
		Catalog:   c,
		Renderer:  testRenderer(t, c, Options{BasePath: basePath}),
		Recorder:  rec,
		AssetsDir: assets,
	}

	r := chi.NewRouter()
	if basePath == "" {
		RegisterRoutes(r, deps)
	} else {
		r.Route(basePath, func(r chi.Router) { RegisterRoutes(r, deps) })
	}
	return r, rec
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomeRoute(t *testing.T) {
	r, _ := setupRouter(t, "")
	w := serve(r, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	assertContains(t, w.Body.String(), "Alpha Card", "Beta Loader")
}

func TestDetailRoute(t *testing.T) {
	r, _ := setupRouter(t, "")

	w := serve(r, httptest.NewRequest("GET", "/animation/alpha", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	assertContains(t, w.Body.String(), `class="tab active" role="tab" href="?lang=typescript"`)

	w = serve(r, httptest.NewRequest("GET", "/animation/alpha?lang=javascript&q=card", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	assertContains(t, w.Body.String(),
		`class="tab active" role="tab" href="?lang=javascript"`,
		`value="card"`,
		`<li data-name="Beta Loader" data-tags="loading" hidden>`,
	)
}

func TestDetailRouteRejectsUnsupportedLanguage(t *testing.T) {
	r, _ := setupRouter(t, "")
	w := serve(r, httptest.NewRequest("GET", "/animation/alpha?lang=python", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUnknownRecipeRedirectsHome(t *testing.T) {
	tests := []struct {
		basePath string
		path     string
		want     string
	}{
		{"", "/animation/missing", "/"},
		{"", "/animation/missing/download", "/"},
		{"/rn", "/rn/animation/missing", "/rn/"},
	}
	for _, tt := range tests {
		r, rec := setupRouter(t, tt.basePath)
		w := serve(r, httptest.NewRequest("GET", tt.path, nil))
		if w.Code != http.StatusFound {
			t.Errorf("%s: status = %d, want 302", tt.path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); loc != tt.want {
			t.Errorf("%s: Location = %q, want %q", tt.path, loc, tt.want)
		}
		if n := len(rec.all()); n != 0 {
			t.Errorf("%s: recorded %d events for an unknown recipe", tt.path, n)
		}
	}
}

func TestDownloadRoute(t *testing.T) {
	r, rec := setupRouter(t, "")
	w := serve(r, httptest.NewRequest("GET", "/animation/alpha/download?lang=javascript", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=AlphaCard.jsx" {
		t.Errorf("Content-Disposition = %q", got)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Errorf("Content-Type = %q", w.Header().Get("Content-Type"))
	}
	if w.Body.String() != alphaJS {
		t.Errorf("body = %q, want %q", w.Body.String(), alphaJS)
	}

	events := rec.all()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Kind != activity.KindDownload || e.RecipeID != "alpha" || e.Language != "javascript" ||
		e.FileName != "AlphaCard.jsx" || e.Origin != activity.OriginWeb || e.Error != "" {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestDownloadRouteDefaultsToTypeScript(t *testing.T) {
	r, _ := setupRouter(t, "")
	w := serve(r, httptest.NewRequest("GET", "/animation/alpha/download", nil))
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=AlphaCard.tsx" {
		t.Errorf("Content-Disposition = %q", got)
	}
	if w.Body.String() != alphaTS {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestThemeToggle(t *testing.T) {
	r, _ := setupRouter(t, "")

	req := httptest.NewRequest("POST", "/theme", nil)
	req.Header.Set("Referer", "http://example.com/animation/alpha?lang=javascript")
	w := serve(r, req)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/animation/alpha?lang=javascript" {
		t.Errorf("Location = %q", loc)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != view.ThemeCookie || cookies[0].Value != "dark" {
		t.Fatalf("cookies = %+v", cookies)
	}

	// The cookie now selects the dark theme, and toggling again goes back.
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: view.ThemeCookie, Value: "dark"})
	assertContains(t, serve(r, req).Body.String(), `class="theme-dark"`, `aria-label="Switch to light mode"`)

	req = httptest.NewRequest("POST", "/theme", nil)
	req.AddCookie(&http.Cookie{Name: view.ThemeCookie, Value: "dark"})
	w = serve(r, req)
	if c := w.Result().Cookies(); len(c) != 1 || c[0].Value != "light" {
		t.Errorf("second toggle cookies = %+v", c)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location without referer = %q, want /", loc)
	}
}

func TestThemeToggleIgnoresForeignReferer(t *testing.T) {
	r, _ := setupRouter(t, "")
	req := httptest.NewRequest("POST", "/theme", nil)
	req.Header.Set("Referer", "https://evil.example.net/phish")
	w := serve(r, req)
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestStaticAssets(t *testing.T) {
	r, _ := setupRouter(t, "")
	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/static/style.css", "text/css; charset=utf-8", ".sidebar"},
		{"/static/code.css", "text/css; charset=utf-8", ".theme-dark .chroma"},
		{"/static/script.js", "text/javascript; charset=utf-8", "clipboard"},
	}
	for _, tt := range tests {
		w := serve(r, httptest.NewRequest("GET", tt.path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", tt.path, w.Code)
			continue
		}
		if ct := w.Header().Get("Content-Type"); ct != tt.contentType {
			t.Errorf("%s: Content-Type = %q", tt.path, ct)
		}
		if !strings.Contains(w.Body.String(), tt.contains) {
			t.Errorf("%s: body missing %q", tt.path, tt.contains)
		}
	}

	if w := serve(r, httptest.NewRequest("GET", "/static/other.css", nil)); w.Code != http.StatusNotFound {
		t.Errorf("unknown asset status = %d, want 404", w.Code)
	}
}

func TestVideoAssets(t *testing.T) {
	for _, base := range []string{"", "/rn"} {
		r, _ := setupRouter(t, base)
		w := serve(r, httptest.NewRequest("GET", base+"/videos/alpha.mp4", nil))
		if w.Code != http.StatusOK {
			t.Errorf("base %q: status = %d", base, w.Code)
			continue
		}
		if w.Body.String() != "fake video" {
			t.Errorf("base %q: body = %q", base, w.Body.String())
		}
	}
}

func TestAnimationsAPI(t *testing.T) {
	r, _ := setupRouter(t, "")

	w := serve(r, httptest.NewRequest("GET", "/api/animations?q=LOAD", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var recipes []catalog.Recipe
	if err := json.Unmarshal(w.Body.Bytes(), &recipes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(recipes) != 1 || recipes[0].ID != "beta" {
		t.Errorf("q=LOAD returned %+v", recipes)
	}

	w = serve(r, httptest.NewRequest("GET", "/api/animations?q=nothing-matches", nil))
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("empty result body = %q, want []", w.Body.String())
	}

	w = serve(r, httptest.NewRequest("GET", "/api/animations/alpha", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var alpha catalog.Recipe
	if err := json.Unmarshal(w.Body.Bytes(), &alpha); err != nil {
		t.Fatal(err)
	}
	if alpha.Name != "Alpha Card" || alpha.Sources[catalog.JavaScript] != alphaJS {
		t.Errorf("unexpected recipe: %+v", alpha)
	}

	w = serve(r, httptest.NewRequest("GET", "/api/animations/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", w.Code)
	}
}

func TestSearchIndexRoute(t *testing.T) {
	r, _ := setupRouter(t, "")
	w := serve(r, httptest.NewRequest("GET", "/search-index.json", nil))
	var entries []SearchEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 2 || entries[0].Path != "/animation/alpha" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestCopyEvent(t *testing.T) {
	r, rec := setupRouter(t, "")

	body := `{"id":"alpha","language":"javascript"}`
	w := serve(r, httptest.NewRequest("POST", "/api/events/copy", strings.NewReader(body)))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	events := rec.all()
	if len(events) != 1 || events[0].Kind != activity.KindCopy || events[0].Language != "javascript" {
		t.Errorf("events = %+v", events)
	}

	bad := []string{
		`not json`,
		`{"id":"missing","language":"typescript"}`,
		`{"id":"alpha","language":"python"}`,
	}
	for _, b := range bad {
		w := serve(r, httptest.NewRequest("POST", "/api/events/copy", strings.NewReader(b)))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", b, w.Code)
		}
	}
	if n := len(rec.all()); n != 1 {
		t.Errorf("bad requests recorded events: %d", n)
	}
}
