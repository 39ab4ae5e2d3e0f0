// Package staleness flags pending orders that have been waiting too long.
// It only produces display cues; nothing here escalates or cancels anything.
package staleness

import (
	"fmt"
	"strings"
	"time"

	"festival-orders/models"
)

type Severity string

const (
	Normal   Severity = "normal"
	Warning  Severity = "warning"
	Critical Severity = "critical"
)

// Thresholds are the band boundaries: elapsed < Warning is normal,
// Warning <= elapsed < Critical is warning, anything beyond is critical.
type Thresholds struct {
	Warning  time.Duration
	Critical time.Duration
}

var DefaultThresholds = Thresholds{
	Warning:  10 * time.Minute,
	Critical: 15 * time.Minute,
}

// Severity classifies elapsed seconds into a band.
func (t Thresholds) Severity(elapsedSeconds int64) Severity {
	switch {
	case elapsedSeconds >= int64(t.Critical/time.Second):
		return Critical
	case elapsedSeconds >= int64(t.Warning/time.Second):
		return Warning
	default:
		return Normal
	}
}

// ParseUTC parses an order timestamp. The backend writes ISO-8601 without an
// explicit zone; those must be read as UTC, not local time, so a missing
// zone designator gets a "Z" appended before parsing.
func ParseUTC(ts string) (time.Time, error) {
	ts = strings.TrimSpace(ts)
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, ts+"Z")
}

// ComputeElapsed returns whole seconds of waiting per pending order.
// Processed orders get no entry at all. A timestamp that cannot be parsed,
// or one in the future, counts as zero seconds rather than failing.
func ComputeElapsed(orders []models.OrderView, now time.Time) map[uint]int64 {
	elapsed := make(map[uint]int64)
	for _, o := range orders {
		if o.Processed {
			continue
		}
		created, err := ParseUTC(o.Timestamp)
		if err != nil {
			elapsed[o.ID] = 0
			continue
		}
		secs := int64(now.Sub(created) / time.Second)
		if secs < 0 {
			secs = 0
		}
		elapsed[o.ID] = secs
	}
	return elapsed
}

// FormatElapsed renders seconds as mm:ss for the dashboard timer column.
func FormatElapsed(seconds int64) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
