// Package store owns the current order snapshot. The snapshot is replaced
// wholesale on every successful fetch and never partially mutated; readers
// always see a complete, self-consistent list.
package store

import (
	"sync"

	"festival-orders/models"
)

// OrderStore holds the latest order snapshot and notifies subscribers when
// it is replaced. The refresh loop is the only writer; aggregation and
// staleness are pure readers.
type OrderStore struct {
	mu       sync.RWMutex
	snapshot []models.OrderView
	nextSub  int
	subs     map[int]func([]models.OrderView)
}

func New() *OrderStore {
	return &OrderStore{subs: make(map[int]func([]models.OrderView))}
}

// Replace swaps in a new snapshot and notifies subscribers with it. The
// input is copied so later caller mutation cannot leak into readers.
func (s *OrderStore) Replace(orders []models.OrderView) {
	snap := make([]models.OrderView, len(orders))
	copy(snap, orders)

	s.mu.Lock()
	s.snapshot = snap
	subs := make([]func([]models.OrderView), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Snapshot returns a copy of the current order list.
func (s *OrderStore) Snapshot() []models.OrderView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make([]models.OrderView, len(s.snapshot))
	copy(snap, s.snapshot)
	return snap
}

// Subscribe registers a callback invoked on every Replace. The returned
// function unsubscribes; after it returns the callback will not be invoked
// for subsequent replaces.
func (s *OrderStore) Subscribe(fn func([]models.OrderView)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
