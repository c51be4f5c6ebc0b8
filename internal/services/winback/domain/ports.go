package domain

import (
	"context"

	recdom "winback/internal/services/records/domain"
)

// RunnerPort is the external port for the segmentation job
type RunnerPort interface {
	Run(ctx context.Context, in RunInput) (Report, error)
}

// Ports are dependencies injected into the winback module
type Ports struct {
	Records recdom.ReaderPort // required
}
