package postfilter

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period used for search input and for
// coalescing filesystem events during watch rebuilds.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer is a single-slot trailing debounce: each Trigger cancels any
// pending invocation and schedules a new one, so a burst of calls inside
// the quiet period runs the callback exactly once, with the last value.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a Debouncer with the given quiet period.
// A non-positive interval falls back to DefaultDebounce.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{interval: interval}
}

// Trigger schedules fn to run after the quiet period, cancelling any
// previously scheduled run. fn executes on a timer goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Stop cancels any pending invocation. It does not wait for a running
// callback to finish.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
