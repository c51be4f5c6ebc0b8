// Package domain defines the core types and interfaces for the winback service
package domain

import (
	"time"

	"winback/internal/core/segment"
)

// RunInput configures one segmentation run
type RunInput struct {
	// ReferenceDate anchors the recency window
	ReferenceDate time.Time `validate:"required"`

	// WindowMonths is the recency window in calendar months
	WindowMonths int `validate:"gte=1"`

	// Workers controls the aggregation shard count; <=1 runs serially
	Workers int
}

// Report is the run envelope around the re-engagement rows
type Report struct {
	RunID         string              `json:"run_id"`
	GeneratedAt   time.Time           `json:"generated_at"`
	ReferenceDate time.Time           `json:"reference_date"`
	Cutoff        time.Time           `json:"cutoff"`
	WindowMonths  int                 `json:"window_months"`
	Rows          []segment.ReportRow `json:"rows"`
}
