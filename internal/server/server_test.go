package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arumugaprakash-t/blogs/internal/config"
	"github.com/arumugaprakash-t/blogs/internal/site"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	outDir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.OutputDir = outDir
	cfg.Server.AllowAll = true

	entries := []site.SearchEntry{
		{Path: "posts/java-performance.html", Title: "Java Performance", Category: "tech", Snippet: "Tuning the JVM", Content: "Tuning the JVM garbage collector"},
		{Path: "posts/lisbon-guide.html", Title: "Lisbon Guide", Category: "travel", Snippet: "A week in Lisbon", Content: "A week in Lisbon with pastries"},
		{Path: "posts/go-microservices.html", Title: "Go Microservices", Category: "tech", Snippet: "Building services", Content: "Building services in Go"},
	}
	if err := site.WriteSearchIndex(entries, filepath.Join(outDir, "search-index.json")); err != nil {
		t.Fatalf("WriteSearchIndex: %v", err)
	}

	return New(cfg), outDir
}

func doSearch(t *testing.T, srv *Server, category, query string) searchResponse {
	t.Helper()
	body, _ := json.Marshal(searchRequest{Category: category, Query: query})
	req := httptest.NewRequest("POST", "/api/search", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return resp
}

func TestHealthCheck(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestSearchByCategory(t *testing.T) {
	srv, _ := testServer(t)

	resp := doSearch(t, srv, "tech", "")
	if resp.Total != 2 {
		t.Fatalf("expected 2 tech results, got %d", resp.Total)
	}
	if resp.Results[0].Title != "Java Performance" || resp.Results[1].Title != "Go Microservices" {
		t.Errorf("results out of source order: %q, %q", resp.Results[0].Title, resp.Results[1].Title)
	}
	if resp.Empty {
		t.Error("empty flag should be false with results")
	}
}

func TestSearchByQuery(t *testing.T) {
	srv, _ := testServer(t)

	// Query matching is case-insensitive and reaches into full content.
	resp := doSearch(t, srv, "", "GARBAGE")
	if resp.Total != 1 {
		t.Fatalf("expected 1 result, got %d", resp.Total)
	}
	if resp.Results[0].Title != "Java Performance" {
		t.Errorf("expected Java Performance, got %q", resp.Results[0].Title)
	}
}

func TestSearchCombinedNoMatch(t *testing.T) {
	srv, _ := testServer(t)

	resp := doSearch(t, srv, "travel", "garbage collector")
	if resp.Total != 0 {
		t.Fatalf("expected 0 results, got %d", resp.Total)
	}
	if !resp.Empty {
		t.Error("empty flag should be true with zero results")
	}
}

func TestSearchBadBody(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest("POST", "/api/search", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSearchWithoutIndex(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputDir = t.TempDir()
	srv := New(cfg)

	body, _ := json.Marshal(searchRequest{Query: "anything"})
	req := httptest.NewRequest("POST", "/api/search", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 before a build, got %d", w.Code)
	}
}

func TestServesGeneratedFiles(t *testing.T) {
	srv, outDir := testServer(t)

	if err := os.WriteFile(filepath.Join(outDir, "index.html"), []byte("<html>hello</html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/index.html", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("hello")) {
		t.Error("expected index.html contents")
	}
}

func TestWatcherRebuildsOnChange(t *testing.T) {
	contentDir := t.TempDir()

	var rebuilds atomic.Int32
	watcher, err := NewWatcher(Watched{
		Dirs:    []string{contentDir},
		Rebuild: func() error { rebuilds.Add(1); return nil },
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer watcher.Stop()

	go watcher.Run()

	if err := os.WriteFile(filepath.Join(contentDir, "new-post.md"), []byte("# hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for rebuilds.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if rebuilds.Load() == 0 {
		t.Fatal("expected a rebuild after content change")
	}
}

func TestWatcherSkipsMissingDirs(t *testing.T) {
	watcher, err := NewWatcher(Watched{
		Dirs:    []string{filepath.Join(t.TempDir(), "does-not-exist")},
		Rebuild: func() error { return nil },
	})
	if err != nil {
		t.Fatalf("NewWatcher should tolerate missing dirs: %v", err)
	}
	watcher.Stop()
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	hub := NewHub()
	hub.Broadcast() // no clients, should not panic
	if hub.ClientCount() != 0 {
		t.Errorf("expected 0 clients, got %d", hub.ClientCount())
	}
	hub.Close()
}
