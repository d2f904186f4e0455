package site

// layoutTemplate is the page shell shared by every page. Each page template
// defines "content".
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}" class="{{.Theme.ClassName}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Meta.Title}}</title>
  <meta name="description" content="{{.Meta.Description}}">
  <link rel="canonical" href="{{.Meta.CanonicalURL}}">
  <meta property="og:type" content="website">
  <meta property="og:title" content="{{.Meta.Title}}">
  <meta property="og:description" content="{{.Meta.Description}}">
  <meta property="og:url" content="{{.Meta.CanonicalURL}}">
  <meta name="twitter:card" content="summary">
  <meta name="twitter:title" content="{{.Meta.Title}}">
  <meta name="twitter:description" content="{{.Meta.Description}}">
  <link rel="stylesheet" href="{{url "/static/style.css"}}">
  <link rel="stylesheet" href="{{url "/static/code.css"}}">
  {{with .StructuredData}}<script type="application/ld+json">{{.}}</script>{{end}}
  {{if .Static}}<script>
    try {
      var stored = localStorage.getItem("animdocs-theme");
      if (stored === "dark" || stored === "light") {
        document.documentElement.setAttribute("data-theme", stored);
        document.documentElement.className = "theme-" + stored;
      }
    } catch (e) {}
  </script>{{end}}
</head>
<body{{if .Static}} data-static="true"{{end}}{{with .EventsURL}} data-events="{{.}}"{{end}}>
  {{if .Sidebar}}
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <a href="{{url "/"}}" class="project-title">{{.SiteTitle}}</a>
      <form class="search-form" method="get" action="">
        {{with .Detail}}<input type="hidden" name="lang" value="{{.Active}}">{{end}}
        <input type="text" id="search-input" name="q" value="{{.Sidebar.Term}}" placeholder="Search animations..." autocomplete="off">
      </form>
    </div>
    <h2 class="sidebar-heading">Animations</h2>
    <ul class="sidebar-list" id="sidebar-list">
      {{range .Sidebar.Items}}
      <li data-name="{{.Name}}" data-tags="{{.Tags}}"{{if .Hidden}} hidden{{end}}><a href="{{url .Href}}"{{if .Active}} class="active"{{end}}>{{.Name}}</a></li>
      {{end}}
      <li class="no-results" id="no-results"{{if not .Sidebar.NoResults}} hidden{{end}}>No results found</li>
    </ul>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  {{end}}
  <main class="content{{if not .Sidebar}} full{{end}}">
    <div class="top-bar">
      {{if .Sidebar}}<button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>{{end}}
      <ol class="breadcrumbs">
        {{range .Crumbs}}
        <li>{{if .Href}}<a href="{{url .Href}}">{{.Label}}</a>{{else}}<span aria-current="page">{{.Label}}</span>{{end}}</li>
        {{end}}
      </ol>
      {{if .Static}}
      <button class="theme-toggle" id="theme-toggle" type="button" aria-label="{{.Theme.ToggleLabel}}">{{template "theme-icons"}}</button>
      {{else}}
      <form method="post" action="{{url "/theme"}}" class="theme-form">
        <button class="theme-toggle" type="submit" aria-label="{{.Theme.ToggleLabel}}">{{template "theme-icons"}}</button>
      </form>
      {{end}}
    </div>
    <article class="page-content">
      {{template "content" .}}
    </article>
  </main>
  <script src="{{url "/static/script.js"}}"></script>
</body>
</html>{{end}}

{{define "theme-icons"}}<svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
  <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
</svg><svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
  <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
</svg>{{end}}`

// homeTemplate renders the landing page.
const homeTemplate = `{{define "content"}}
<header class="hero">
  <h1>{{.SiteTitle}}</h1>
  {{with .Home.Explore}}<a class="explore" href="{{url .}}">Explore &rarr;</a>{{end}}
</header>
<section class="intro">
  {{.Home.Intro}}
</section>
<h2>Available Animations</h2>
<div class="card-grid">
  {{range .Home.Cards}}
  <a class="card" href="{{url .Href}}">
    <h3>{{.Name}}</h3>
    <p>{{.Description}}</p>
    <span class="card-link">View details &rarr;</span>
  </a>
  {{end}}
</div>
{{end}}`

// detailTemplate renders one recipe.
const detailTemplate = `{{define "content"}}{{with .Detail}}
<h1>{{.Name}}</h1>
<p class="lead">{{.Description}}</p>
<ul class="tags">
  {{range .Tags}}<li class="tag">{{.}}</li>{{end}}
</ul>

<h2>Use Cases</h2>
<ul class="use-cases">
  {{range .UseCases}}<li>{{.}}</li>{{end}}
</ul>

{{if .PerformanceTips}}
<h2>Performance Tips</h2>
<ul class="tips">
  {{range .PerformanceTips}}<li>{{.}}</li>{{end}}
</ul>
{{end}}

<h2>Preview</h2>
<div class="preview">
  <video controls preload="metadata">
    <source src="{{.PreviewURL}}" type="video/mp4">
    Your browser does not support the video tag.
  </video>
</div>

<div class="implementation-header">
  <h2>Implementation</h2>
  <a class="download" id="download" href="{{url .DownloadHref}}"{{if $.Static}} download="{{.FileName}}"{{end}}>Download Code</a>
</div>
<div class="code-tabs" role="tablist">
  {{range .Panes}}
  <a class="tab{{if .Active}} active{{end}}" role="tab" href="?lang={{.Language}}" data-lang="{{.Language}}" aria-selected="{{.Active}}">{{.Label}}</a>
  {{end}}
</div>
{{range .Panes}}
<div class="code-pane" data-lang="{{.Language}}" data-download="{{url .DownloadHref}}" data-file="{{.FileName}}"{{if not .Active}} hidden{{end}}>
  <button class="copy-button" type="button" aria-label="Copy code to clipboard" data-recipe="{{$.Detail.ID}}" data-lang="{{.Language}}">Copy</button>
  <textarea class="raw-source" hidden readonly>{{.Source}}</textarea>
  {{.Highlighted}}
</div>
{{end}}
{{end}}{{end}}`

// notFoundTemplate sends visitors of unknown paths on a static host back home.
const notFoundTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta http-equiv="refresh" content="0; url={{.}}">
  <title>Redirecting</title>
</head>
<body><a href="{{.}}">Continue to the home page</a></body>
</html>`

// cssContent is the site stylesheet. Token colours live in code.css.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #4f46e5;
  --accent-hover: #4338ca;
  --accent-light: #eef2ff;
  --code-bg: #ffffff;
  --sidebar-width: 288px;
  --content-max-width: 900px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

.theme-dark {
  --bg: #111827;
  --bg-secondary: #1f2937;
  --bg-sidebar: #1f2937;
  --text: #f3f4f6;
  --text-secondary: #d1d5db;
  --text-muted: #9ca3af;
  --border: #374151;
  --accent: #818cf8;
  --accent-hover: #a5b4fc;
  --accent-light: rgba(49,46,129,0.3);
  --code-bg: #272822;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
  display: flex;
  min-height: 100vh;
}

a { color: var(--accent); }
a:hover { color: var(--accent-hover); }

.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0;
  left: 0;
  bottom: 0;
  overflow-y: auto;
  z-index: 100;
  padding: 20px 16px;
}

.project-title {
  display: block;
  font-size: 1.1rem;
  font-weight: 700;
  text-decoration: none;
  margin-bottom: 16px;
}

#search-input {
  width: 100%;
  padding: 8px 12px;
  border: 1px solid var(--border);
  border-radius: 6px;
  font-size: 0.85rem;
  background: var(--bg);
  color: var(--text);
  outline: none;
}

#search-input:focus {
  border-color: var(--accent);
  box-shadow: 0 0 0 3px var(--accent-light);
}

.sidebar-heading {
  margin: 24px 0 8px;
  font-size: 0.72rem;
  font-weight: 600;
  letter-spacing: 0.05em;
  text-transform: uppercase;
  color: var(--text-muted);
}

.sidebar-list { list-style: none; }

.sidebar-list a {
  display: block;
  padding: 6px 12px;
  border-radius: 6px;
  font-size: 0.88rem;
  color: var(--text-secondary);
  text-decoration: none;
}

.sidebar-list a:hover { background: var(--accent-light); color: var(--accent); }
.sidebar-list a.active { background: var(--accent-light); color: var(--accent); font-weight: 600; }
.sidebar-list .no-results { padding: 6px 12px; font-size: 0.88rem; color: var(--text-muted); }

.sidebar-overlay {
  display: none;
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.4);
  z-index: 99;
}

.sidebar-overlay.visible { display: block; }

.content { margin-left: var(--sidebar-width); flex: 1; min-width: 0; }
.content.full { margin-left: 0; }

.top-bar {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 10px 24px;
  border-bottom: 1px solid var(--border);
  background: var(--bg);
  position: sticky;
  top: 0;
  z-index: 50;
}

.menu-toggle { display: none; background: none; border: none; color: var(--text); cursor: pointer; }

.breadcrumbs { display: flex; list-style: none; flex: 1; font-size: 0.88rem; color: var(--text-muted); }
.breadcrumbs li + li::before { content: "/"; margin: 0 8px; }
.breadcrumbs a { text-decoration: none; }

.theme-form { display: contents; }

.theme-toggle {
  background: none;
  border: 1px solid var(--border);
  border-radius: 6px;
  color: var(--text);
  cursor: pointer;
  padding: 6px;
  display: flex;
}

.theme-dark .sun-icon { display: inline; }
.theme-dark .moon-icon { display: none; }
.theme-light .sun-icon { display: none; }
.theme-light .moon-icon { display: inline; }

.page-content { max-width: var(--content-max-width); margin: 0 auto; padding: 32px 24px 64px; }
.page-content h1 { font-size: 2rem; margin-bottom: 8px; }
.page-content h2 { font-size: 1.25rem; margin: 32px 0 12px; }
.page-content ul { padding-left: 1.4em; }
.lead { color: var(--text-secondary); margin-bottom: 16px; }

.hero { text-align: center; margin-bottom: 24px; }
.explore {
  display: inline-block;
  margin-top: 16px;
  padding: 6px 20px;
  border: 2px solid var(--border);
  border-radius: 999px;
  text-decoration: none;
  box-shadow: var(--shadow-lg);
}

.intro blockquote {
  margin-top: 16px;
  padding: 16px;
  border-radius: 8px;
  background: var(--accent-light);
}

.card-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 20px; }

.card {
  display: block;
  padding: 20px;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--bg-secondary);
  box-shadow: var(--shadow);
  color: var(--text);
  text-decoration: none;
}

.card:hover { box-shadow: var(--shadow-lg); color: var(--text); }
.card p { font-size: 0.9rem; color: var(--text-secondary); margin: 8px 0 12px; }
.card-link { font-size: 0.88rem; color: var(--accent); font-weight: 500; }

.page-content ul.tags { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 8px; }
.tag {
  padding: 2px 12px;
  border-radius: 999px;
  font-size: 0.75rem;
  font-weight: 500;
  background: var(--accent-light);
  color: var(--accent);
}

.preview {
  display: flex;
  justify-content: center;
  padding: 16px;
  border-radius: 8px;
  background: var(--bg-secondary);
}

.preview video { max-width: 100%; max-height: 300px; border-radius: 4px; }

.implementation-header { display: flex; align-items: center; justify-content: space-between; }

.download {
  padding: 6px 12px;
  border-radius: 6px;
  font-size: 0.88rem;
  font-weight: 500;
  text-decoration: none;
  background: var(--accent-light);
}

.code-tabs { display: flex; border-bottom: 1px solid var(--border); margin-top: 12px; }

.tab {
  flex: 1;
  text-align: center;
  padding: 8px 16px;
  font-size: 0.88rem;
  font-weight: 500;
  color: var(--text-muted);
  text-decoration: none;
}

.tab.active { color: var(--accent); border-bottom: 2px solid var(--accent); background: var(--bg-secondary); }

.code-pane { position: relative; margin-top: 12px; }
.code-pane pre { padding: 16px; border-radius: 8px; overflow-x: auto; font-size: 0.875rem; line-height: 1.5; }

.copy-button {
  position: absolute;
  top: 8px;
  right: 8px;
  padding: 4px 10px;
  border: none;
  border-radius: 6px;
  background: rgba(31,41,55,0.7);
  color: #fff;
  cursor: pointer;
  opacity: 0;
  transition: opacity 0.2s;
}

.code-pane:hover .copy-button, .copy-button:focus { opacity: 1; }

@media (max-width: 1024px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.3s; }
  .sidebar.open { transform: translateX(0); }
  .content { margin-left: 0; }
  .menu-toggle { display: block; }
}
`

// jsContent wires the sidebar filter, code tabs, copy buttons and, on
// static builds, the theme toggle.
const jsContent = `(function() {
  var html = document.documentElement;
  var body = document.body;
  var isStatic = body.getAttribute("data-static") === "true";

  // Theme toggle. Served pages post to /theme instead.
  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle && isStatic) {
    themeToggle.addEventListener("click", function() {
      var next = html.getAttribute("data-theme") === "dark" ? "light" : "dark";
      html.setAttribute("data-theme", next);
      html.className = "theme-" + next;
      themeToggle.setAttribute("aria-label", next === "dark" ? "Switch to light mode" : "Switch to dark mode");
      try { localStorage.setItem("animdocs-theme", next); } catch (e) {}
    });
  }

  // Mobile sidebar.
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");
  var menuToggle = document.getElementById("menu-toggle");
  function setSidebar(open) {
    if (!sidebar) return;
    sidebar.classList.toggle("open", open);
    overlay.classList.toggle("visible", open);
  }
  if (menuToggle) menuToggle.addEventListener("click", function() { setSidebar(!sidebar.classList.contains("open")); });
  if (overlay) overlay.addEventListener("click", function() { setSidebar(false); });

  // Sidebar filter: case-insensitive substring over name and tags, term used as typed.
  var searchInput = document.getElementById("search-input");
  var list = document.getElementById("sidebar-list");
  var noResults = document.getElementById("no-results");
  function matches(item, term) {
    if (item.getAttribute("data-name").toLowerCase().indexOf(term) !== -1) return true;
    var tags = item.getAttribute("data-tags").split("\n");
    for (var i = 0; i < tags.length; i++) {
      if (tags[i].toLowerCase().indexOf(term) !== -1) return true;
    }
    return false;
  }
  function applyFilter() {
    var term = searchInput.value.toLowerCase();
    var shown = 0;
    var items = list.querySelectorAll("li[data-name]");
    for (var i = 0; i < items.length; i++) {
      var ok = matches(items[i], term);
      items[i].hidden = !ok;
      if (ok) shown++;
    }
    noResults.hidden = shown !== 0;
  }
  if (searchInput && list) {
    searchInput.addEventListener("input", applyFilter);
    searchInput.form.addEventListener("submit", function(e) { e.preventDefault(); applyFilter(); });
  }

  // Code tabs.
  var tabs = document.querySelectorAll(".tab[data-lang]");
  var panes = document.querySelectorAll(".code-pane");
  var download = document.getElementById("download");
  function selectTab(lang) {
    var found = false;
    for (var i = 0; i < panes.length; i++) {
      if (panes[i].getAttribute("data-lang") === lang) found = true;
    }
    if (!found) return;
    for (var j = 0; j < tabs.length; j++) {
      var active = tabs[j].getAttribute("data-lang") === lang;
      tabs[j].classList.toggle("active", active);
      tabs[j].setAttribute("aria-selected", active ? "true" : "false");
    }
    for (var k = 0; k < panes.length; k++) {
      var pane = panes[k];
      pane.hidden = pane.getAttribute("data-lang") !== lang;
      if (!pane.hidden && download) {
        download.href = pane.getAttribute("data-download");
        if (download.hasAttribute("download")) download.setAttribute("download", pane.getAttribute("data-file"));
      }
    }
  }
  for (var t = 0; t < tabs.length; t++) {
    tabs[t].addEventListener("click", function(e) {
      e.preventDefault();
      var lang = this.getAttribute("data-lang");
      selectTab(lang);
      if (window.history && history.replaceState) {
        var url = new URL(window.location.href);
        url.searchParams.set("lang", lang);
        history.replaceState(null, "", url.toString());
      }
    });
  }
  if (isStatic && tabs.length) {
    var requested = new URL(window.location.href).searchParams.get("lang");
    if (requested) selectTab(requested);
  }

  // Copy buttons. The confirmation only shows after a successful write.
  var eventsURL = body.getAttribute("data-events");
  function report(button, ok, err) {
    if (!eventsURL || !window.fetch) return;
    fetch(eventsURL, {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({
        id: button.getAttribute("data-recipe"),
        language: button.getAttribute("data-lang"),
        error: err ? String(err) : ""
      })
    }).catch(function() {});
  }
  var buttons = document.querySelectorAll(".copy-button");
  for (var b = 0; b < buttons.length; b++) {
    buttons[b].addEventListener("click", function() {
      var button = this;
      var source = button.parentNode.querySelector(".raw-source").value;
      if (!navigator.clipboard) {
        console.error("Failed to copy code:", "clipboard unavailable");
        report(button, false, "clipboard unavailable");
        return;
      }
      navigator.clipboard.writeText(source).then(function() {
        button.textContent = "Copied";
        setTimeout(function() { button.textContent = "Copy"; }, 2000);
        report(button, true);
      }).catch(function(err) {
        console.error("Failed to copy code:", err);
        report(button, false, err);
      });
    });
  }
})();
`
