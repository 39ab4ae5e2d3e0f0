// Package aggregate computes booth revenue reports from an order snapshot:
// total revenue, revenue partitioned by table zone, and per-staff credited
// revenue from item-level attribution. Everything here is a pure function of
// its inputs and is recomputed from scratch on every snapshot.
package aggregate

import (
	"sort"
	"strconv"
	"strings"

	"festival-orders/models"
)

const (
	ZoneA     = "zoneA"
	ZoneB     = "zoneB"
	ZoneOther = "other"
)

// ZoneConfig partitions numeric table numbers into coarse area buckets.
// Tables 1..AMax map to zoneA and AMax+1..BMax to zoneB; BMax <= 0 leaves
// zoneB open-ended. Any other numeric table falls into the explicit "other"
// bucket, never dropped.
type ZoneConfig struct {
	AMax int
	BMax int
}

// DefaultZones matches the booth layout used at the festival: café seating
// 1–50, smoking area 51–100.
var DefaultZones = ZoneConfig{AMax: 50, BMax: 100}

// Classify buckets a raw table string. ok is false when the table is not
// numeric; such orders are excluded from zone totals entirely.
func (z ZoneConfig) Classify(table string) (zone string, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(table))
	if err != nil {
		return "", false
	}
	switch {
	case n >= 1 && n <= z.AMax:
		return ZoneA, true
	case n > z.AMax && (z.BMax <= 0 || n <= z.BMax):
		return ZoneB, true
	default:
		return ZoneOther, true
	}
}

// Options controls aggregation behavior. OnlyProcessed restricts the total
// revenue figure to processed orders; zone and staff figures always consider
// processed orders only, as unprocessed money is not yet earned.
type Options struct {
	OnlyProcessed bool
	Zones         ZoneConfig
}

// Result is a revenue report over one snapshot.
type Result struct {
	TotalRevenue int64
	ZoneRevenue  map[string]int64
	StaffRevenue map[string]float64
}

// Aggregate computes a revenue report for the given snapshot. The result is
// invariant under permutation of the input and carries no state between
// calls, so it is safe to run on every refresh.
//
// Per-staff attribution splits an order's total evenly across its items and
// credits the split to each item's ServedBy. Items nobody has claimed still
// count in the denominator, so partially served orders dilute staff credit
// rather than inflating it: the sum of all staff credit never exceeds the
// processed revenue it was carved from.
func Aggregate(orders []models.OrderView, opts Options) Result {
	if opts.Zones == (ZoneConfig{}) {
		opts.Zones = DefaultZones
	}

	res := Result{
		ZoneRevenue:  make(map[string]int64),
		StaffRevenue: make(map[string]float64),
	}

	for _, o := range orders {
		if !opts.OnlyProcessed || o.Processed {
			res.TotalRevenue += o.Total
		}

		// Zone and staff figures only count processed orders that actually
		// carry items; a malformed items payload degrades to an empty list
		// and drops the order from both maps (but never from the total).
		if !o.Processed || len(o.Items) == 0 {
			continue
		}

		if zone, ok := opts.Zones.Classify(o.Table); ok {
			res.ZoneRevenue[zone] += o.Total
		}

		unit := float64(o.Total) / float64(len(o.Items))
		for _, it := range o.Items {
			staff := strings.TrimSpace(it.ServedBy)
			if staff == "" {
				continue
			}
			res.StaffRevenue[staff] += unit
		}
	}

	return res
}

// StaffShare is one row of the staff leaderboard.
type StaffShare struct {
	Name   string
	Amount float64
}

// TopStaff orders staff credit for display: descending amount, ties broken
// by name so the ranking is stable across refreshes.
func TopStaff(r Result) []StaffShare {
	shares := make([]StaffShare, 0, len(r.StaffRevenue))
	for name, amount := range r.StaffRevenue {
		shares = append(shares, StaffShare{Name: name, Amount: amount})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}
