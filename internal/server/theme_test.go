package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func doTheme(t *testing.T, srv *Server, method, body string) (int, themeResponse) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, "/api/theme", reader)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var resp themeResponse
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
	}
	return w.Code, resp
}

func TestThemeDefaultsToLight(t *testing.T) {
	srv, _ := testServer(t)

	code, resp := doTheme(t, srv, "GET", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Theme != "light" || resp.Stored {
		t.Errorf("fresh server should report light and no stored choice, got %+v", resp)
	}
}

func TestThemeSetPersistsAcrossServers(t *testing.T) {
	srv, _ := testServer(t)

	code, resp := doTheme(t, srv, "PUT", `{"theme":"dark"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Theme != "dark" || !resp.Stored {
		t.Errorf("expected stored dark, got %+v", resp)
	}

	// A new server over the same output dir picks up the choice.
	fresh := New(srv.cfg)
	code, resp = doTheme(t, fresh, "GET", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Theme != "dark" || !resp.Stored {
		t.Errorf("choice should survive a restart, got %+v", resp)
	}
}

func TestThemeRejectsUnknownValue(t *testing.T) {
	srv, _ := testServer(t)

	if code, _ := doTheme(t, srv, "PUT", `{"theme":"sepia"}`); code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown theme, got %d", code)
	}
	if code, _ := doTheme(t, srv, "PUT", "not json"); code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad body, got %d", code)
	}
}

func TestThemeClearRevertsToDefault(t *testing.T) {
	srv, _ := testServer(t)

	if code, _ := doTheme(t, srv, "PUT", `{"theme":"dark"}`); code != http.StatusOK {
		t.Fatal("set should succeed")
	}

	code, resp := doTheme(t, srv, "DELETE", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if resp.Theme != "light" || resp.Stored {
		t.Errorf("clear should revert to light with no stored choice, got %+v", resp)
	}
}
