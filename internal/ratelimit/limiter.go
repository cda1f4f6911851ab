// Package ratelimit bounds per-client request rate with a sliding window.
// It exists to protect a paid, quota-limited upstream API; it is best-effort
// abuse mitigation, not a security boundary.
package ratelimit

import (
	"log"
	"time"
)

const (
	// DefaultLimit requests per DefaultWindow per client.
	DefaultLimit  = 10
	DefaultWindow = 60 * time.Second
)

// Store persists per-client request timestamps. Take must be atomic per key:
// it drops timestamps at or before cutoff, then either records now (allowed)
// or leaves the window untouched and reports the oldest surviving timestamp
// so the caller can compute a retry hint.
//
// Implementations must be safe for concurrent use; two parallel requests
// from the same client must not lose updates.
type Store interface {
	Take(key string, cutoff, now time.Time, limit int) (allowed bool, oldest time.Time, err error)
}

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed bool
	// RetryAfter is a hint for the Retry-After header; zero when allowed.
	RetryAfter time.Duration
}

// Window is a sliding-window admission gate. Entries older than the window
// are purged on every call, so per-call cost is proportional to the client's
// recent request count, bounded by the limit.
type Window struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewWindow(store Store, limit int, window time.Duration) *Window {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Window{store: store, limit: limit, window: window, now: time.Now}
}

// Allow reports whether the client identified by key may proceed. A rejected
// attempt is not recorded. Allow never fails: a store error is logged and the
// request admitted, trading strictness for availability when the shared store
// is down.
func (w *Window) Allow(key string) Decision {
	now := w.now()
	allowed, oldest, err := w.store.Take(key, now.Add(-w.window), now, w.limit)
	if err != nil {
		log.Printf("ratelimit: store error for %q: %v", key, err)
		return Decision{Allowed: true}
	}
	if allowed {
		return Decision{Allowed: true}
	}
	retry := oldest.Add(w.window).Sub(now)
	if retry < time.Second {
		retry = time.Second
	}
	return Decision{Allowed: false, RetryAfter: retry}
}
