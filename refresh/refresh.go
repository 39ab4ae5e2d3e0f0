// Package refresh drives near-real-time polling of the order list. It fetches
// a fresh snapshot at a fixed rate, detects newly arrived pending orders
// between consecutive snapshots, and hands each snapshot to the caller. It
// has zero knowledge of how snapshots are displayed or what the new-order
// alert sounds like; both arrive as callbacks.
package refresh

import (
	"context"
	"log"
	"time"

	"festival-orders/models"
)

// FetchFunc retrieves one full order snapshot.
type FetchFunc func(ctx context.Context) ([]models.OrderView, error)

type Config struct {
	// Interval is the polling period. The loop re-arms on a fixed rate and
	// does not wait for an in-flight fetch, so overlapping fetches can
	// happen when the network is slow.
	Interval time.Duration

	// Timeout bounds each individual fetch. Zero means one Interval, which
	// keeps slow fetches from piling up indefinitely.
	Timeout time.Duration

	// OnSnapshot receives every applied snapshot, oldest first. Snapshots
	// that resolve out of order are discarded, never delivered.
	OnSnapshot func([]models.OrderView)

	// OnNewPending fires when an applied snapshot contains pending orders
	// absent from the previous one, after OnSnapshot has delivered that
	// snapshot. It never fires for the first applied snapshot, so a
	// page-load's worth of backlog does not ring the alarm.
	OnNewPending func()
}

// Loop is a running poller. Stop it when done; no callback fires after Stop
// returns.
type Loop struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type fetchResult struct {
	seq    uint64
	orders []models.OrderView
	err    error
}

// Start begins polling immediately: one fetch right away, then one per
// interval.
func Start(fetch FetchFunc, cfg Config) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &Loop{cancel: cancel, done: make(chan struct{})}
	go l.run(ctx, fetch, cfg)
	return l
}

// Stop cancels the loop and waits for it to wind down. Once Stop returns,
// neither OnSnapshot nor OnNewPending will be invoked again.
func (l *Loop) Stop() {
	l.cancel()
	<-l.done
}

func (l *Loop) run(ctx context.Context, fetch FetchFunc, cfg Config) {
	defer close(l.done)

	results := make(chan fetchResult)
	var issued uint64

	launch := func() {
		issued++
		seq := issued
		go func() {
			fctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
			orders, err := fetch(fctx)
			select {
			case results <- fetchResult{seq: seq, orders: orders, err: err}:
			case <-ctx.Done():
			}
		}()
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	var (
		applied     bool
		appliedSeq  uint64
		prevPending map[uint]bool
	)

	launch()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			launch()
		case res := <-results:
			if res.err != nil {
				// Keep showing the previous snapshot; the next tick retries.
				log.Printf("refresh: fetch failed: %v", res.err)
				continue
			}
			if res.seq < appliedSeq {
				// A slower, older fetch resolved after a newer one; last
				// issued wins.
				continue
			}

			pending := pendingIDs(res.orders)
			arrived := applied && hasNewPending(prevPending, pending)
			prevPending = pending
			applied = true
			appliedSeq = res.seq

			// Deliver the snapshot before raising the alert, so an alert
			// handler that consults shared state sees the snapshot that
			// triggered it, not the previous one.
			if cfg.OnSnapshot != nil {
				cfg.OnSnapshot(res.orders)
			}
			if arrived && cfg.OnNewPending != nil {
				cfg.OnNewPending()
			}
		}
	}
}

func pendingIDs(orders []models.OrderView) map[uint]bool {
	ids := make(map[uint]bool)
	for _, o := range orders {
		if !o.Processed {
			ids[o.ID] = true
		}
	}
	return ids
}

// hasNewPending reports whether next contains a pending order id that was
// not pending before. Orders flipping back from processed to pending count
// as new; a shrinking pending set never does.
func hasNewPending(prev, next map[uint]bool) bool {
	for id := range next {
		if !prev[id] {
			return true
		}
	}
	return false
}
