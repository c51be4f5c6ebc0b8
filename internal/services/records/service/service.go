// Package service provides the records service implementation
package service

import (
	"context"
	"time"

	"winback/internal/platform/logger"
	"winback/internal/services/records/domain"
	"winback/internal/services/records/repo"
)

// Config for the records service
type Config struct {
	// QueryTimeout bounds each snapshot read; <=0 means no bound
	QueryTimeout time.Duration
}

// Service implements domain.ReaderPort against the Postgres repo
type Service struct {
	Storage repo.Storage
	Cfg     Config
}

// New constructs a new records service with a required storage
func New(storage repo.Storage, cfg Config) *Service {
	return &Service{Storage: storage, Cfg: cfg}
}

// Customers implements domain.ReaderPort
func (s *Service) Customers(ctx context.Context) (map[string]domain.Customer, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	out, err := s.Storage.Customers(ctx)
	if err != nil {
		return nil, err
	}
	logger.C(ctx).Debug().Int("rows", len(out)).Msg("fetched customer snapshot")
	return out, nil
}

// Orders implements domain.ReaderPort
func (s *Service) Orders(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	out, err := s.Storage.Orders(ctx)
	if err != nil {
		return nil, err
	}
	logger.C(ctx).Debug().Int("rows", len(out)).Msg("fetched order snapshot")
	return out, nil
}

// LineItems implements domain.ReaderPort
func (s *Service) LineItems(ctx context.Context) ([]domain.LineItem, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	out, err := s.Storage.LineItems(ctx)
	if err != nil {
		return nil, err
	}
	logger.C(ctx).Debug().Int("rows", len(out)).Msg("fetched line item snapshot")
	return out, nil
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Cfg.QueryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.Cfg.QueryTimeout)
}
