package optimistic

import "sync"

// Guard serializes actions per entity key, the programmatic equivalent of
// disabling a button while its request is in flight. Cross-entity actions
// stay concurrent.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{active: make(map[string]struct{})}
}

// TryAcquire reports whether the key was free. A false return means a
// request for the same entity is already running and the duplicate must be
// dropped.
func (g *Guard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = struct{}{}
	return true
}

func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}

// Busy reports whether the key currently has a request in flight, used to
// render per-item loading indicators.
func (g *Guard) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.active[key]
	return busy
}
