package optimistic

import "sync/atomic"

// Gate tags each issued query with a monotonic ticket and accepts only the
// latest one's response. A late answer from a superseded query is discarded
// instead of silently overwriting newer state.
type Gate struct {
	latest atomic.Uint64
}

func NewGate() *Gate {
	return &Gate{}
}

// Next issues a ticket for a new query, superseding all earlier ones.
func (g *Gate) Next() uint64 {
	return g.latest.Add(1)
}

// Accept reports whether the response for the given ticket may be applied.
func (g *Gate) Accept(ticket uint64) bool {
	return g.latest.Load() == ticket
}
