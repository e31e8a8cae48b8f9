package periods

import (
	"sync"

	"freyr/domain/auction"
)

// Registry is a sliding window of delivery periods open for order
// submission. The scheduler advances it once per clearing cycle: the
// nearest open period closes (it is about to be delivered) and a new
// one opens at the far end of the window.
type Registry struct {
	mu    sync.RWMutex
	first auction.Period
	count int
}

// New returns a registry whose open window starts at first and spans
// count consecutive periods.
func New(first auction.Period, count int) *Registry {
	return &Registry{first: first, count: count}
}

// Open returns the periods currently open for submission, in order.
func (r *Registry) Open() []auction.Period {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]auction.Period, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.first + auction.Period(i)
	}
	return out
}

// IsOpen reports whether p currently accepts submissions.
func (r *Registry) IsOpen(p auction.Period) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return p >= r.first && p < r.first+auction.Period(r.count)
}

// Advance slides the window forward by one period.
func (r *Registry) Advance() {
	r.mu.Lock()
	r.first++
	r.mu.Unlock()
}
