package middleware

import (
	"sync"
	"time"
)

const (
	// DefaultFailureLimit failed logins trigger a cooldown of
	// DefaultLockoutDuration before another attempt is accepted.
	DefaultFailureLimit    = 5
	DefaultLockoutDuration = 30 * time.Second
)

type lockoutEntry struct {
	failures    int
	lockedUntil time.Time
}

// LoginGuard tracks failed login attempts per key and imposes a
// temporary cooldown after repeated failures. The check runs before any
// credential lookup, so a locked attempt never touches the store.
type LoginGuard struct {
	mu       sync.Mutex
	limit    int
	duration time.Duration
	entries  map[string]*lockoutEntry
	now      func() time.Time
}

func NewLoginGuard(limit int, duration time.Duration) *LoginGuard {
	if limit <= 0 {
		limit = DefaultFailureLimit
	}
	if duration <= 0 {
		duration = DefaultLockoutDuration
	}
	return &LoginGuard{
		limit:    limit,
		duration: duration,
		entries:  make(map[string]*lockoutEntry),
		now:      time.Now,
	}
}

// Allow reports whether a login attempt for key may proceed, and if not,
// how much of the cooldown remains.
func (g *LoginGuard) Allow(key string) (bool, time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[key]
	if !ok {
		return true, 0
	}
	if remaining := e.lockedUntil.Sub(g.now()); remaining > 0 {
		return false, remaining
	}
	return true, 0
}

// RecordFailure counts a failed attempt. The failure that reaches the
// limit starts the cooldown and resets the counter, so the lockout
// re-arms if failures continue afterwards.
func (g *LoginGuard) RecordFailure(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[key]
	if !ok {
		e = &lockoutEntry{}
		g.entries[key] = e
	}
	e.failures++
	if e.failures >= g.limit {
		e.lockedUntil = g.now().Add(g.duration)
		e.failures = 0
	}
}

// RecordSuccess clears the failure history for key.
func (g *LoginGuard) RecordSuccess(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key)
}

// Cleanup drops entries whose cooldown has passed and that carry no
// pending failures.
func (g *LoginGuard) Cleanup() {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for key, e := range g.entries {
		if e.failures == 0 && now.After(e.lockedUntil) {
			delete(g.entries, key)
		}
	}
}
