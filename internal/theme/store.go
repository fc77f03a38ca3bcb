package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MemStore is an in-memory Store, used in tests and as the default when
// no persistence path is configured.
type MemStore struct {
	pref Preference
	set  bool
}

func (m *MemStore) Get() (Preference, bool) {
	if !m.set {
		return "", false
	}
	return m.pref, true
}

func (m *MemStore) Set(p Preference) error {
	m.pref = p
	m.set = true
	return nil
}

func (m *MemStore) Clear() error {
	m.set = false
	m.pref = ""
	return nil
}

// FileStore persists the preference as a single-line file. A missing or
// malformed file reads as "no choice made" rather than an error.
type FileStore struct {
	Path string
}

func (f *FileStore) Get() (Preference, bool) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", false
	}
	return Parse(strings.TrimSpace(string(data)))
}

func (f *FileStore) Set(p Preference) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("creating theme state dir: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(string(p)+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing theme state: %w", err)
	}
	return nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing theme state: %w", err)
	}
	return nil
}
