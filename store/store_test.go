package store

import (
	"testing"

	"festival-orders/models"
)

func TestReplaceAndSnapshot(t *testing.T) {
	s := New()
	if got := s.Snapshot(); len(got) != 0 {
		t.Fatalf("fresh store snapshot = %v, want empty", got)
	}

	orders := []models.OrderView{{ID: 1}, {ID: 2}}
	s.Replace(orders)

	snap := s.Snapshot()
	if len(snap) != 2 || snap[0].ID != 1 || snap[1].ID != 2 {
		t.Fatalf("Snapshot = %v", snap)
	}

	// Mutating either side must not leak into the store.
	orders[0].ID = 99
	snap[1].ID = 99
	again := s.Snapshot()
	if again[0].ID != 1 || again[1].ID != 2 {
		t.Errorf("store shares memory with callers: %v", again)
	}
}

func TestSubscribe(t *testing.T) {
	s := New()
	var seen [][]models.OrderView
	unsubscribe := s.Subscribe(func(o []models.OrderView) { seen = append(seen, o) })

	s.Replace([]models.OrderView{{ID: 1}})
	s.Replace([]models.OrderView{{ID: 1}, {ID: 2}})
	if len(seen) != 2 || len(seen[1]) != 2 {
		t.Fatalf("subscriber saw %v", seen)
	}

	unsubscribe()
	s.Replace(nil)
	if len(seen) != 2 {
		t.Errorf("subscriber called after unsubscribe")
	}
}
