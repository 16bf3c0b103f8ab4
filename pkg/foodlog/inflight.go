package foodlog

import "sync"

// requestGuard keeps at most one model request in flight per user. A user is
// either Idle (absent from the set) or Requesting (present); begin refuses
// the transition to Requesting while one is active.
type requestGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newRequestGuard() *requestGuard {
	return &requestGuard{active: make(map[string]struct{})}
}

func (g *requestGuard) begin(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.active[userID]; ok {
		return false
	}
	g.active[userID] = struct{}{}
	return true
}

func (g *requestGuard) end(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, userID)
}
