// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// MonthsBefore returns t shifted back by n calendar months
// Calendar arithmetic, not a fixed duration: 2024-03-31 minus 1 month
// normalizes per time.AddDate rules
func MonthsBefore(t time.Time, n int) time.Time {
	return t.AddDate(0, -n, 0)
}
