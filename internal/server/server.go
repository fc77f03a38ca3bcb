// Package server hosts the local preview server: it serves the generated
// site, exposes a search API over the same matching rules the client
// script uses, and pushes live-reload events while watching content.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arumugaprakash-t/blogs/internal/config"
	"github.com/arumugaprakash-t/blogs/internal/postfilter"
	"github.com/arumugaprakash-t/blogs/internal/site"
	"github.com/arumugaprakash-t/blogs/internal/theme"
)

// Server serves the output directory and the preview APIs.
type Server struct {
	cfg        *config.Config
	hub        *Hub
	themeStore *theme.FileStore
	themeCtl   *theme.Controller
	router     chi.Router
	httpServer *http.Server
}

// New creates a preview server for the given configuration.
func New(cfg *config.Config) *Server {
	// The preview session's theme choice lives next to the generated
	// site, the server-side analogue of the browser's localStorage.
	store := &theme.FileStore{Path: filepath.Join(cfg.OutputDir, ".theme")}
	ctl := theme.NewController(store)
	ctl.Init(false)

	s := &Server{
		cfg:        cfg,
		hub:        NewHub(),
		themeStore: store,
		themeCtl:   ctl,
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.Server.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/api/search", s.handleSearch)
	r.Get("/api/theme", s.handleGetTheme)
	r.Put("/api/theme", s.handleSetTheme)
	r.Delete("/api/theme", s.handleClearTheme)
	r.Get("/livereload", s.hub.ServeWS)

	// Everything else is the generated site.
	fileServer := http.FileServer(http.Dir(s.cfg.OutputDir))
	r.Handle("/*", fileServer)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live-reload hub.
func (s *Server) LiveReloadHub() *Hub { return s.hub }

// searchRequest is the body of POST /api/search.
type searchRequest struct {
	Category string `json:"category"`
	Query    string `json:"query"`
}

// searchResponse lists the entries that survive the active filters,
// in the order they appear on the index page.
type searchResponse struct {
	Results []site.SearchEntry `json:"results"`
	Total   int                `json:"total"`
	Empty   bool               `json:"empty"`
}

// handleSearch runs the card matching rules server-side against the
// generated search index. The preview UI does not depend on it; it
// exists so the same filters can be scripted against a running server.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	entries, err := site.ReadSearchIndex(filepath.Join(s.cfg.OutputDir, "search-index.json"))
	if err != nil {
		http.Error(w, `{"error":"search index not available; run a build first"}`, http.StatusServiceUnavailable)
		return
	}

	cards := make([]postfilter.Card, len(entries))
	for i, e := range entries {
		cards[i] = postfilter.Card{
			Category: e.Category,
			Title:    e.Title,
			Snippet:  e.Snippet,
			Body:     e.Content,
		}
	}

	st := postfilter.NewState()
	if req.Category != "" {
		st.ActiveCategory = req.Category
	}
	st.Query = postfilter.NormalizeQuery(req.Query)

	res := postfilter.Recompute(st, cards)

	resp := searchResponse{
		Results: make([]site.SearchEntry, 0, res.VisibleCount()),
		Total:   res.VisibleCount(),
		Empty:   res.ShowEmptyState,
	}
	for _, idx := range res.Visible {
		resp.Results = append(resp.Results, entries[idx])
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("search response encode: %v", err)
	}
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("preview server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and drops reload clients.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
