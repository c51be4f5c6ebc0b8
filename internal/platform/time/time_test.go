package time

import (
	"testing"
	"time"
)

func TestPtr(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatalf("Ptr(zero) should be nil")
	}
	v := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	p := Ptr(v)
	if p == nil || !p.Equal(v) {
		t.Fatalf("Ptr value mismatch")
	}
}

func TestMonthsBefore(t *testing.T) {
	cases := []struct {
		in     time.Time
		months int
		want   time.Time
	}{
		{time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 6, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), 2, time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)},
		// AddDate normalization: March 31 minus one month rolls past February
		{time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		if got := MonthsBefore(c.in, c.months); !got.Equal(c.want) {
			t.Fatalf("MonthsBefore(%v, %d) = %v, want %v", c.in, c.months, got, c.want)
		}
	}
}
