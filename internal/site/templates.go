package site

// indexTemplate is the Go html/template for the home page: the post-card
// grid with category filters, search box, and empty-state indicator.
const indexTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Site.Title}}</title>
  {{if .Site.Description}}<meta name="description" content="{{.Site.Description}}">{{end}}
  <link rel="stylesheet" href="style.css">
  <link rel="stylesheet" href="syntax-light.css" id="syntax-light">
  <link rel="stylesheet" href="syntax-dark.css" id="syntax-dark" disabled>
  <link rel="alternate" type="application/rss+xml" title="{{.Site.Title}}" href="feed.xml">
</head>
<body>
  <header class="site-header">
    <a class="site-title" href="index.html">{{.Site.Title}}</a>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
      </svg>
      <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
      </svg>
    </button>
  </header>
  <main class="container">
    {{if .Site.Description}}<p class="site-intro">{{.Site.Description}}</p>{{end}}
    <div class="controls">
      <div class="filter-bar" role="group" aria-label="Filter by category">
        <button class="filter-btn active" data-category="all">All</button>
        {{range .Categories}}<button class="filter-btn" data-category="{{.}}">{{.}}</button>
        {{end}}
      </div>
      <input type="search" id="search-input" placeholder="Search posts..." autocomplete="off" aria-label="Search posts">
    </div>
    <section class="post-grid" id="post-grid"{{if not .Cards}} hidden{{end}}>
      {{range .Cards}}<article class="post-card" data-category="{{.Category}}" data-title="{{.Title}}" data-snippet="{{.Snippet}}">
        <h2 class="card-title"><a href="{{.Permalink}}">{{.Title}}</a></h2>
        <div class="card-meta">
          {{if not .Date.IsZero}}<time datetime="{{.Date.Format "2006-01-02"}}">{{.Date.Format "Jan 2, 2006"}}</time>{{end}}
          {{if .Category}}<span class="card-category">{{.Category}}</span>{{end}}
        </div>
        <p class="card-snippet">{{.Snippet}}</p>
      </article>
      {{end}}
    </section>
    <div class="empty-state" id="empty-state"{{if .Cards}} hidden{{end}}>
      <p>No posts match your filters.</p>
    </div>
  </main>
  <footer class="site-footer">
    <p>{{if .Site.Author}}&copy; {{.Site.Author}} &middot; {{end}}<a href="feed.xml">RSS</a></p>
  </footer>
  <script src="script.js"></script>
  {{if .LiveReload}}{{template "livereload"}}{{end}}
</body>
</html>`

// postTemplate renders a single post page one level below the site root.
const postTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Post.Title}} — {{.Site.Title}}</title>
  {{if .Post.Summary}}<meta name="description" content="{{.Post.Summary}}">{{end}}
  <link rel="stylesheet" href="../style.css">
  <link rel="stylesheet" href="../syntax-light.css" id="syntax-light">
  <link rel="stylesheet" href="../syntax-dark.css" id="syntax-dark" disabled>
</head>
<body>
  <header class="site-header">
    <a class="site-title" href="../index.html">{{.Site.Title}}</a>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
      <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
      </svg>
      <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
      </svg>
    </button>
  </header>
  <main class="container">
    <article class="post">
      <header class="post-header">
        <h1>{{.Post.Title}}</h1>
        <div class="card-meta">
          {{if not .Post.Date.IsZero}}<time datetime="{{.Post.Date.Format "2006-01-02"}}">{{.Post.Date.Format "January 2, 2006"}}</time>{{end}}
          {{if .Post.Category}}<span class="card-category">{{.Post.Category}}</span>{{end}}
        </div>
      </header>
      <div class="post-body">
        {{.Post.HTML}}
      </div>
      {{if .Post.Tags}}<div class="post-tags">{{range .Post.Tags}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
      <p class="back-link"><a href="../index.html">&larr; All posts</a></p>
    </article>
  </main>
  <footer class="site-footer">
    <p>{{if .Site.Author}}&copy; {{.Site.Author}} &middot; {{end}}<a href="../feed.xml">RSS</a></p>
  </footer>
  <script src="../script.js"></script>
  {{if .LiveReload}}{{template "livereload"}}{{end}}
</body>
</html>`

// livereloadTemplate is injected only by the preview server's builds; it
// never appears in production output.
const livereloadTemplate = `{{define "livereload"}}<script>
(function() {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(proto + location.host + "/livereload");
  sock.onmessage = function(ev) { if (ev.data === "reload") location.reload(); };
})();
</script>{{end}}`

// cssContent is the site stylesheet.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #ffffff;
  --bg-card: #f8f9fa;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --accent-light: #e7f5ff;
  --content-max-width: 760px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-card: #1f2030;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-hover: #89b4fa;
  --accent-light: #1a1b2e;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
}

/* ============ Base ============ */
* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
  background: var(--bg);
  color: var(--text);
  transition: background 0.2s ease, color 0.2s ease;
}

a { color: var(--accent); text-decoration: none; }
a:hover { color: var(--accent-hover); text-decoration: underline; }

.container {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 1.5rem 1rem 3rem;
}

/* ============ Header ============ */
.site-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 1rem;
  border-bottom: 1px solid var(--border);
}

.site-title {
  font-size: 1.3rem;
  font-weight: 700;
  color: var(--text);
}
.site-title:hover { color: var(--accent); text-decoration: none; }

.site-intro { color: var(--text-secondary); margin-top: 0; }

.theme-toggle {
  background: none;
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 6px 8px;
  cursor: pointer;
  color: var(--text);
  line-height: 0;
}
.theme-toggle:hover { border-color: var(--accent); color: var(--accent); }
.theme-toggle .moon-icon { display: none; }
[data-theme="dark"] .theme-toggle .sun-icon { display: none; }
[data-theme="dark"] .theme-toggle .moon-icon { display: inline; }

/* ============ Filter controls ============ */
.controls {
  display: flex;
  flex-wrap: wrap;
  gap: 0.75rem;
  align-items: center;
  margin: 1rem 0 1.5rem;
}

.filter-bar { display: flex; flex-wrap: wrap; gap: 0.5rem; }

.filter-btn {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 999px;
  padding: 4px 14px;
  font-size: 0.85rem;
  color: var(--text-secondary);
  cursor: pointer;
  text-transform: capitalize;
}
.filter-btn:hover { border-color: var(--accent); color: var(--accent); }
.filter-btn.active {
  background: var(--accent);
  border-color: var(--accent);
  color: #fff;
}

#search-input {
  flex: 1;
  min-width: 180px;
  padding: 6px 12px;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: var(--bg-card);
  color: var(--text);
  font-size: 0.9rem;
}
#search-input:focus { outline: none; border-color: var(--accent); }

/* ============ Post cards ============ */
.post-grid { display: grid; gap: 1rem; }
.post-grid[hidden] { display: none; }

.post-card {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 10px;
  padding: 1rem 1.25rem;
  box-shadow: var(--shadow);
}
.post-card[hidden] { display: none; }

.card-title { margin: 0 0 0.25rem; font-size: 1.1rem; }
.card-title a { color: var(--text); }
.card-title a:hover { color: var(--accent); }

.card-meta {
  display: flex;
  gap: 0.75rem;
  align-items: center;
  font-size: 0.8rem;
  color: var(--text-muted);
}

.card-category {
  background: var(--accent-light);
  color: var(--accent);
  border-radius: 999px;
  padding: 1px 10px;
  text-transform: capitalize;
}

.card-snippet { margin: 0.5rem 0 0; color: var(--text-secondary); font-size: 0.9rem; }

.empty-state {
  text-align: center;
  color: var(--text-muted);
  padding: 3rem 0;
}
.empty-state[hidden] { display: none; }

/* ============ Post page ============ */
.post-header h1 { margin-bottom: 0.25rem; }

.post-body { margin-top: 1.5rem; }
.post-body img { max-width: 100%; }
.post-body pre {
  padding: 0.9rem 1rem;
  border-radius: 8px;
  overflow-x: auto;
  border: 1px solid var(--border);
}
.post-body code {
  font-family: "SF Mono", Menlo, Consolas, monospace;
  font-size: 0.88em;
}
.post-body blockquote {
  margin: 0;
  padding-left: 1rem;
  border-left: 3px solid var(--accent);
  color: var(--text-secondary);
}

.post-tags { margin-top: 1.5rem; display: flex; gap: 0.5rem; flex-wrap: wrap; }
.tag {
  font-size: 0.78rem;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 999px;
  padding: 1px 10px;
  color: var(--text-muted);
}

.back-link { margin-top: 2rem; }

/* ============ Footer ============ */
.site-footer {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 1rem;
  border-top: 1px solid var(--border);
  color: var(--text-muted);
  font-size: 0.85rem;
}

@media (max-width: 600px) {
  .controls { flex-direction: column; align-items: stretch; }
}
`

// jsContent is the client script: the theme controller and the debounced
// post filter/search engine. The logic mirrors internal/theme and
// internal/postfilter; changes there must be reflected here.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;

  // ===== Theme controller =====
  var themeToggle = document.getElementById("theme-toggle");
  var syntaxLight = document.getElementById("syntax-light");
  var syntaxDark = document.getElementById("syntax-dark");

  function getStoredTheme() {
    try {
      var v = localStorage.getItem("blog-theme");
      return v === "light" || v === "dark" ? v : null;
    } catch (e) { return null; }
  }

  function applyTheme(theme) {
    html.setAttribute("data-theme", theme);
    if (syntaxLight) syntaxLight.disabled = theme === "dark";
    if (syntaxDark) syntaxDark.disabled = theme !== "dark";
    if (themeToggle) themeToggle.setAttribute("aria-pressed", theme === "dark" ? "true" : "false");
  }

  function setTheme(theme) {
    try { localStorage.setItem("blog-theme", theme); } catch (e) {}
    applyTheme(theme);
  }

  var osDark = window.matchMedia ? window.matchMedia("(prefers-color-scheme: dark)") : null;
  var stored = getStoredTheme();
  if (stored) {
    applyTheme(stored);
  } else if (osDark && osDark.matches) {
    applyTheme("dark");
  } else {
    applyTheme("light");
  }

  if (osDark && osDark.addEventListener) {
    osDark.addEventListener("change", function(e) {
      // An explicit stored choice always wins over the OS signal.
      if (getStoredTheme()) return;
      applyTheme(e.matches ? "dark" : "light");
    });
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var current = html.getAttribute("data-theme") || "light";
      setTheme(current === "dark" ? "light" : "dark");
    });
  }

  // ===== Post filter / search engine =====
  var grid = document.getElementById("post-grid");
  var emptyState = document.getElementById("empty-state");
  var searchInput = document.getElementById("search-input");
  var filterButtons = document.querySelectorAll(".filter-btn");

  if (!grid) return; // post pages have no grid; the rest is a no-op

  var cards = [];
  grid.querySelectorAll(".post-card").forEach(function(el) {
    cards.push({
      el: el,
      category: el.getAttribute("data-category") || "",
      title: (el.getAttribute("data-title") || "").toLowerCase(),
      snippet: (el.getAttribute("data-snippet") || "").toLowerCase(),
      text: el.textContent.toLowerCase()
    });
  });

  var state = { activeCategory: "all", query: "" };

  function matches(card) {
    var categoryOk = state.activeCategory === "all" || card.category === state.activeCategory;
    var q = state.query;
    var searchOk = q === "" ||
      card.title.indexOf(q) !== -1 ||
      card.snippet.indexOf(q) !== -1 ||
      card.text.indexOf(q) !== -1;
    return categoryOk && searchOk;
  }

  function recompute() {
    var visible = 0;
    cards.forEach(function(card) {
      var show = matches(card);
      card.el.hidden = !show;
      if (show) visible++;
    });
    if (emptyState) emptyState.hidden = visible !== 0;
    grid.hidden = visible === 0;
  }

  filterButtons.forEach(function(btn) {
    btn.addEventListener("click", function() {
      filterButtons.forEach(function(b) { b.classList.remove("active"); });
      this.classList.add("active");
      state.activeCategory = this.getAttribute("data-category") || "all";
      recompute();
    });
  });

  if (searchInput) {
    // Trailing debounce: each keystroke cancels the pending recompute
    // and reschedules with the latest value.
    var pending = null;
    searchInput.addEventListener("input", function() {
      var value = this.value;
      if (pending) clearTimeout(pending);
      pending = setTimeout(function() {
        pending = null;
        state.query = value.toLowerCase().trim();
        recompute();
      }, 300);
    });
  }

  // Initial pass so the grid/empty-state pairing holds before any input,
  // including on a site with no posts at all.
  recompute();
})();
`
