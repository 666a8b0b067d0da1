package handlers

import "sync"

// inflightGuard prevents re-entrant calls for the same key, e.g. a
// booking-code resolution triggered twice by rapid repeated user action.
// The resolver itself does not deduplicate; the guard lives at the call
// site and is released on every path.
type inflightGuard struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{keys: make(map[string]struct{})}
}

// tryAcquire reports whether the key was free and, if so, claims it.
func (g *inflightGuard) tryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.keys[key]; busy {
		return false
	}
	g.keys[key] = struct{}{}
	return true
}

// release frees the key. Callers defer it immediately after acquiring.
func (g *inflightGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.keys, key)
}
