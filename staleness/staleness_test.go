package staleness

import (
	"testing"
	"time"

	"festival-orders/models"
)

func TestParseUTC_CoercesZonelessToUTC(t *testing.T) {
	// A zoneless timestamp must be read as UTC, never local time.
	got, err := ParseUTC("2025-05-26T10:00:00")
	if err != nil {
		t.Fatalf("ParseUTC: %v", err)
	}
	want := time.Date(2025, 5, 26, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseUTC = %v, want %v", got, want)
	}
}

func TestParseUTC_KeepsExplicitZone(t *testing.T) {
	got, err := ParseUTC("2025-05-26T10:00:00+09:00")
	if err != nil {
		t.Fatalf("ParseUTC: %v", err)
	}
	want := time.Date(2025, 5, 26, 1, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseUTC = %v, want %v", got, want)
	}
}

func TestParseUTC_FractionalSeconds(t *testing.T) {
	// The backend writes isoformat-style fractional seconds on older rows.
	if _, err := ParseUTC("2025-05-26T10:00:00.123456"); err != nil {
		t.Errorf("ParseUTC with fraction: %v", err)
	}
}

func TestComputeElapsed(t *testing.T) {
	now := time.Date(2025, 5, 26, 10, 10, 0, 0, time.UTC)
	orders := []models.OrderView{
		{ID: 1, Timestamp: "2025-05-26T10:00:00", Processed: false},
		{ID: 2, Timestamp: "2025-05-26T09:00:00", Processed: true},
		{ID: 3, Timestamp: "garbage", Processed: false},
		{ID: 4, Timestamp: "2025-05-26T10:30:00", Processed: false}, // future
	}
	elapsed := ComputeElapsed(orders, now)

	if got := elapsed[1]; got != 600 {
		t.Errorf("elapsed[1] = %d, want 600", got)
	}
	if _, ok := elapsed[2]; ok {
		t.Error("processed order must not appear in elapsed map")
	}
	if got := elapsed[3]; got != 0 {
		t.Errorf("unparseable timestamp: elapsed = %d, want 0", got)
	}
	if got := elapsed[4]; got != 0 {
		t.Errorf("future timestamp: elapsed = %d, want 0", got)
	}
}

func TestComputeElapsed_SameInstantIsZero(t *testing.T) {
	now := time.Date(2025, 5, 26, 10, 0, 0, 0, time.UTC)
	elapsed := ComputeElapsed([]models.OrderView{
		{ID: 1, Timestamp: "2025-05-26T10:00:00", Processed: false},
	}, now)
	if elapsed[1] != 0 {
		t.Errorf("elapsed = %d, want 0 (no local-offset skew)", elapsed[1])
	}
}

func TestSeverityBands(t *testing.T) {
	tests := []struct {
		elapsed int64
		want    Severity
	}{
		{0, Normal},
		{599, Normal},
		{600, Warning},
		{899, Warning},
		{900, Critical},
		{4000, Critical},
	}
	for _, tt := range tests {
		if got := DefaultThresholds.Severity(tt.elapsed); got != tt.want {
			t.Errorf("Severity(%d) = %s, want %s", tt.elapsed, got, tt.want)
		}
	}
}

func TestSeverity_CustomThresholds(t *testing.T) {
	th := Thresholds{Warning: 30 * time.Second, Critical: time.Minute}
	if got := th.Severity(45); got != Warning {
		t.Errorf("Severity(45) = %s, want warning", got)
	}
	if got := th.Severity(60); got != Critical {
		t.Errorf("Severity(60) = %s, want critical", got)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{903, "15:03"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.secs); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
