// Package notify delivers transient user-visible notices, the terminal
// equivalent of toast messages. Notices carry an optional id; repeats with
// the same id inside the active window coalesce into a single notice.
package notify

import (
	"sync"
	"time"
)

// Fixed notice ids. Reusing an id is how callers opt into coalescing.
const (
	// LogoutID keys the logged-out notice so rapid repeated logouts
	// surface at most one message.
	LogoutID = "logout-id"
	// ServerErrorID keys remote-failure notices so a burst of failing
	// calls does not stack identical errors.
	ServerErrorID = "custom-id-yes"
)

// Notifier is implemented by anything that can surface a transient notice.
// An empty id means the notice is never deduplicated.
type Notifier interface {
	Info(id, message string)
	Success(id, message string)
	Error(id, message string)
}

// DefaultActiveWindow is how long a notice id stays "active" for
// deduplication purposes.
const DefaultActiveWindow = 5 * time.Second

// Deduped wraps a Notifier and coalesces notices that share an id while
// that id is still active.
type Deduped struct {
	inner  Notifier
	mu     sync.Mutex
	window time.Duration
	nowFn  func() time.Time
	seen   map[string]time.Time
}

// DedupedOption defines a function type to modify the Deduped instance.
type DedupedOption func(*Deduped)

// WithActiveWindow overrides how long an id suppresses repeats.
func WithActiveWindow(window time.Duration) DedupedOption {
	return func(d *Deduped) {
		d.window = window
	}
}

// WithNowFunc sets the clock (primarily for testing).
func WithNowFunc(nowFn func() time.Time) DedupedOption {
	return func(d *Deduped) {
		d.nowFn = nowFn
	}
}

var _ Notifier = (*Deduped)(nil)

// NewDeduped wraps inner with id-based coalescing.
func NewDeduped(inner Notifier, options ...DedupedOption) *Deduped {
	d := &Deduped{
		inner:  inner,
		window: DefaultActiveWindow,
		nowFn:  time.Now,
		seen:   make(map[string]time.Time),
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

func (d *Deduped) Info(id, message string) {
	if d.shouldShow(id) {
		d.inner.Info(id, message)
	}
}

func (d *Deduped) Success(id, message string) {
	if d.shouldShow(id) {
		d.inner.Success(id, message)
	}
}

func (d *Deduped) Error(id, message string) {
	if d.shouldShow(id) {
		d.inner.Error(id, message)
	}
}

// shouldShow reports whether a notice with the given id may be surfaced,
// and marks it active if so.
func (d *Deduped) shouldShow(id string) bool {
	if id == "" {
		return true
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.nowFn()
	if shown, ok := d.seen[id]; ok && now.Sub(shown) < d.window {
		return false
	}
	d.seen[id] = now
	return true
}
