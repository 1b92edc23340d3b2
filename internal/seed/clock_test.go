package seed

import (
	"testing"
	"time"
)

func TestClockDateTimeOffset(t *testing.T) {
	base := time.Date(2025, 6, 15, 13, 45, 30, 123, time.UTC)
	c := NewClockAt(base)

	tests := []struct {
		days int
		want time.Time
	}{
		{0, base},
		{1, time.Date(2025, 6, 16, 13, 45, 30, 123, time.UTC)},
		{-7, time.Date(2025, 6, 8, 13, 45, 30, 123, time.UTC)},
		{20, time.Date(2025, 7, 5, 13, 45, 30, 123, time.UTC)}, // crosses month boundary
	}

	for _, tt := range tests {
		if got := c.DateTimeOffset(tt.days); !got.Equal(tt.want) {
			t.Errorf("DateTimeOffset(%d) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestClockDateOnlyOffset(t *testing.T) {
	c := NewClockAt(time.Date(2025, 12, 30, 23, 59, 0, 0, time.UTC))

	tests := []struct {
		days int
		want string
	}{
		{0, "2025-12-30"},
		{2, "2026-01-01"}, // crosses year boundary
		{-30, "2025-11-30"},
	}

	for _, tt := range tests {
		if got := c.DateOnlyOffset(tt.days); got != tt.want {
			t.Errorf("DateOnlyOffset(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestClockTimeToday(t *testing.T) {
	c := NewClockAt(time.Date(2025, 6, 15, 13, 45, 30, 999, time.UTC))

	got := c.TimeToday(9, 30)
	want := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TimeToday(9, 30) = %v, want %v", got, want)
	}

	if got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("TimeToday should zero seconds and sub-seconds, got %v", got)
	}
}

func TestClockConsistency(t *testing.T) {
	// All derivations must come from the same captured instant
	c := NewClock()
	first := c.Today()
	time.Sleep(5 * time.Millisecond)
	if !c.Today().Equal(first) {
		t.Error("Today() changed between calls")
	}
	if got := c.DateTimeOffset(0); !got.Equal(first) {
		t.Errorf("DateTimeOffset(0) = %v, want captured instant %v", got, first)
	}
}
