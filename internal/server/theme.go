package server

import (
	"encoding/json"
	"net/http"

	"github.com/arumugaprakash-t/blogs/internal/theme"
)

// themeResponse reports the preview server's active theme.
type themeResponse struct {
	Theme  string `json:"theme"`
	Stored bool   `json:"stored"`
}

// themeRequest sets an explicit theme choice.
type themeRequest struct {
	Theme string `json:"theme"`
}

// handleGetTheme returns the theme the preview session last applied.
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	_, stored := s.themeStore.Get()
	writeTheme(w, themeResponse{Theme: string(s.themeCtl.Active()), Stored: stored})
}

// handleSetTheme persists an explicit choice, so the preview keeps it
// across restarts the way the browser keeps localStorage.
func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	pref, ok := theme.Parse(req.Theme)
	if !ok {
		http.Error(w, `{"error":"theme must be \"light\" or \"dark\""}`, http.StatusBadRequest)
		return
	}
	if err := s.themeCtl.Set(pref); err != nil {
		http.Error(w, `{"error":"could not persist theme"}`, http.StatusInternalServerError)
		return
	}
	writeTheme(w, themeResponse{Theme: string(s.themeCtl.Active()), Stored: true})
}

// handleClearTheme drops the stored choice; the session falls back to
// the default resolution.
func (s *Server) handleClearTheme(w http.ResponseWriter, r *http.Request) {
	if err := s.themeStore.Clear(); err != nil {
		http.Error(w, `{"error":"could not clear theme"}`, http.StatusInternalServerError)
		return
	}
	active := s.themeCtl.Init(false)
	writeTheme(w, themeResponse{Theme: string(active), Stored: false})
}

func writeTheme(w http.ResponseWriter, resp themeResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
