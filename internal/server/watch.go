package server

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arumugaprakash-t/blogs/internal/postfilter"
)

// rebuildDelay coalesces bursts of filesystem events (editors often
// write a file several times in quick succession) into one rebuild.
const rebuildDelay = 300 * time.Millisecond

// Watcher watches the content and static directories and triggers a
// rebuild plus a live-reload broadcast when something changes.
type Watcher struct {
	target   *Watched
	fsw      *fsnotify.Watcher
	debounce *postfilter.Debouncer
	done     chan struct{}
}

// Watched is what the watcher drives: a rebuild function and a hub to
// notify afterwards.
type Watched struct {
	Dirs    []string
	Rebuild func() error
	Hub     *Hub
}

// NewWatcher sets up recursive watches on every directory under the
// given roots. Roots that do not exist are skipped.
func NewWatcher(w Watched) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	watcher := &Watcher{
		target:   &w,
		fsw:      fsw,
		debounce: postfilter.NewDebouncer(rebuildDelay),
		done:     make(chan struct{}),
	}

	for _, root := range w.Dirs {
		if err := watcher.addRecursive(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	return watcher, nil
}

// addRecursive registers the root and all directories under it.
func (w *Watcher) addRecursive(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return w.fsw.Add(root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// Run processes events until Stop is called.
func (w *Watcher) Run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories need their own watch so nested files are seen.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				log.Printf("watch %s: %v", event.Name, err)
			}
		}
	}

	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.debounce.Trigger(func() {
		log.Printf("change detected, rebuilding site")
		if err := w.target.Rebuild(); err != nil {
			log.Printf("rebuild failed: %v", err)
			return
		}
		if w.target.Hub != nil {
			w.target.Hub.Broadcast()
		}
	})
}

// Stop halts event processing and releases the underlying watcher.
func (w *Watcher) Stop() {
	close(w.done)
	w.debounce.Stop()
	w.fsw.Close()
}
