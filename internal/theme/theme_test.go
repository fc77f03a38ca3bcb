package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		stored    Preference
		hasStored bool
		osDark    bool
		want      Preference
	}{
		{"stored dark wins over light OS", Dark, true, false, Dark},
		{"stored light wins over dark OS", Light, true, true, Light},
		{"no stored, dark OS", "", false, true, Dark},
		{"no stored, light OS", "", false, false, Light},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.stored, tt.hasStored, tt.osDark); got != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if p, ok := Parse("dark"); !ok || p != Dark {
		t.Errorf("Parse(dark) = %q, %v", p, ok)
	}
	if p, ok := Parse("light"); !ok || p != Light {
		t.Errorf("Parse(light) = %q, %v", p, ok)
	}
	if _, ok := Parse("solarized"); ok {
		t.Error("unknown values should read as absent")
	}
	if _, ok := Parse(""); ok {
		t.Error("empty value should read as absent")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := &MemStore{}

	c := NewController(store)
	c.Init(false)
	if err := c.Set(Dark); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh controller over the same store simulates a page reload;
	// the persisted choice must win regardless of the OS preference.
	reloaded := NewController(store)
	if got := reloaded.Init(false); got != Dark {
		t.Errorf("after reload with light OS: theme = %q, want dark", got)
	}
	if got := NewController(store).Init(true); got != Dark {
		t.Errorf("after reload with dark OS: theme = %q, want dark", got)
	}
}

func TestSystemChangeHonoredOnlyWithoutStoredChoice(t *testing.T) {
	store := &MemStore{}
	c := NewController(store)

	if got := c.Init(false); got != Light {
		t.Fatalf("initial theme = %q, want light", got)
	}

	// No explicit choice yet: the OS signal applies.
	if got := c.OnSystemChange(true); got != Dark {
		t.Errorf("OS change to dark: theme = %q, want dark", got)
	}
	if got := c.OnSystemChange(false); got != Light {
		t.Errorf("OS change back to light: theme = %q, want light", got)
	}

	// After an explicit choice the OS signal is ignored, permanently.
	if err := c.Set(Light); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := c.OnSystemChange(true); got != Light {
		t.Errorf("OS change after explicit choice: theme = %q, want light", got)
	}

	// Clearing storage restores OS control.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := c.OnSystemChange(true); got != Dark {
		t.Errorf("OS change after storage clear: theme = %q, want dark", got)
	}
}

func TestToggle(t *testing.T) {
	c := NewController(&MemStore{})
	c.Init(false)

	got, err := c.Toggle()
	if err != nil || got != Dark {
		t.Errorf("first toggle = %q, %v; want dark", got, err)
	}
	got, err = c.Toggle()
	if err != nil || got != Light {
		t.Errorf("second toggle = %q, %v; want light", got, err)
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "theme")
	store := &FileStore{Path: path}

	if _, ok := store.Get(); ok {
		t.Error("missing file should read as no choice")
	}

	if err := store.Set(Dark); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if p, ok := store.Get(); !ok || p != Dark {
		t.Errorf("Get = %q, %v; want dark, true", p, ok)
	}

	// Garbage content reads as absent, never as an error.
	if err := os.WriteFile(path, []byte("purple\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.Get(); ok {
		t.Error("malformed value should read as no choice")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on a missing file should be a no-op, got %v", err)
	}
}
