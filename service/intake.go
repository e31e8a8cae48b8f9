package service

import (
	"sync"

	"freyr/domain/auction"
)

// intake is the submission buffer between concurrent Submit callers and
// the single-threaded cycle. drain swaps the slice out atomically so a
// cycle never observes a half-appended batch.
type intake struct {
	mu      sync.Mutex
	pending []auction.Order
}

func (in *intake) append(o auction.Order) {
	in.mu.Lock()
	in.pending = append(in.pending, o)
	in.mu.Unlock()
}

func (in *intake) drain() []auction.Order {
	in.mu.Lock()
	batch := in.pending
	in.pending = nil
	in.mu.Unlock()
	return batch
}
