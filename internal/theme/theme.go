// Package theme holds the light/dark preference resolution used by the
// generated site. The emitted client script applies the same rules against
// localStorage and prefers-color-scheme; this package is the reference
// implementation, with a file-backed store for the preview server.
package theme

// Preference is a display mode choice.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// StorageKey is the key under which the client persists its choice.
const StorageKey = "blog-theme"

// Parse validates a raw stored value. Anything other than the two known
// values is treated as absent.
func Parse(s string) (Preference, bool) {
	switch Preference(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Opposite returns the other preference. Transitions are toggle-only.
func (p Preference) Opposite() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

// Resolve applies the override-priority rule: an explicit stored choice
// always wins; otherwise the OS preference decides; otherwise light.
func Resolve(stored Preference, hasStored, osDark bool) Preference {
	if hasStored {
		return stored
	}
	if osDark {
		return Dark
	}
	return Light
}

// Store persists an explicit user choice. Get reports ok=false when the
// user has never made a choice (or the value is unreadable).
type Store interface {
	Get() (Preference, bool)
	Set(Preference) error
	Clear() error
}

// Controller tracks the active theme for one page lifetime and keeps it
// synchronized with the store and OS-level change notifications.
type Controller struct {
	store  Store
	active Preference
}

// NewController wraps the given store. Call Init before use.
func NewController(store Store) *Controller {
	return &Controller{store: store}
}

// Init resolves and applies the initial theme: stored choice first, then
// the OS preference, then light. It always succeeds.
func (c *Controller) Init(osDark bool) Preference {
	stored, ok := c.store.Get()
	c.active = Resolve(stored, ok, osDark)
	return c.active
}

// Active returns the currently applied theme.
func (c *Controller) Active() Preference { return c.active }

// Set persists the choice and applies it. Once set, OS change
// notifications are ignored until the store is cleared.
func (c *Controller) Set(p Preference) error {
	if err := c.store.Set(p); err != nil {
		return err
	}
	c.active = p
	return nil
}

// Toggle flips between light and dark, persisting the result.
func (c *Controller) Toggle() (Preference, error) {
	next := c.active.Opposite()
	return next, c.Set(next)
}

// OnSystemChange handles an OS scheme-change notification. It is honored
// only while no explicit choice is stored; it may fire any number of
// times and is idempotent.
func (c *Controller) OnSystemChange(osDark bool) Preference {
	if _, ok := c.store.Get(); ok {
		return c.active
	}
	if osDark {
		c.active = Dark
	} else {
		c.active = Light
	}
	return c.active
}
