// Package service implements the winback service
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"winback/internal/core/segment"
	perr "winback/internal/platform/errors"
	"winback/internal/platform/logger"
	recdom "winback/internal/services/records/domain"
	"winback/internal/services/winback/domain"
)

// Config for the winback service
type Config struct {
	WindowMonths int
	Workers      int
}

// Service implements domain.RunnerPort
type Service struct {
	Records  recdom.ReaderPort
	Cfg      Config
	validate *validator.Validate
	now      func() time.Time
}

// New constructs a new winback service
func New(records recdom.ReaderPort, cfg Config) *Service {
	if cfg.WindowMonths == 0 {
		cfg.WindowMonths = segment.DefaultWindowMonths
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Service{
		Records:  records,
		Cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// Run implements domain.RunnerPort: pull the record snapshot, run the pure
// segmentation, and wrap the result in a report envelope. All-or-nothing;
// an empty snapshot yields an empty report, never an error.
func (s *Service) Run(ctx context.Context, in domain.RunInput) (domain.Report, error) {
	if in.WindowMonths == 0 {
		in.WindowMonths = s.Cfg.WindowMonths
	}
	if in.Workers <= 0 {
		in.Workers = s.Cfg.Workers
	}
	if err := s.validate.Struct(in); err != nil {
		return domain.Report{}, perr.Wrap(err, perr.ErrorCodeConfig, "invalid run input")
	}

	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID)
	log := logger.C(ctx)
	started := s.now()

	customers, err := s.Records.Customers(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	orders, err := s.Records.Orders(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	lines, err := s.Records.LineItems(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	params := segment.Params{
		ReferenceDate: in.ReferenceDate.UTC(),
		WindowMonths:  in.WindowMonths,
		Workers:       in.Workers,
	}
	rows, err := segment.Run(mapCustomers(customers), mapOrders(orders), mapLineItems(lines), params)
	if err != nil {
		log.Error().Err(err).Msg("segmentation failed")
		return domain.Report{}, err
	}

	if len(rows) == 0 {
		log.Info().Msg("no high-value lapsed customers for this window")
	}

	report := domain.Report{
		RunID:         runID,
		GeneratedAt:   s.now().UTC(),
		ReferenceDate: params.ReferenceDate,
		Cutoff:        params.Cutoff(),
		WindowMonths:  params.WindowMonths,
		Rows:          rows,
	}

	log.Info().
		Int("customers", len(customers)).
		Int("orders", len(orders)).
		Int("line_items", len(lines)).
		Int("report_rows", len(rows)).
		Dur("elapsed", s.now().Sub(started)).
		Msg("segmentation run complete")

	return report, nil
}

// mapping between the records snapshot rows and the core's input types

func mapCustomers(in map[string]recdom.Customer) map[string]segment.Customer {
	out := make(map[string]segment.Customer, len(in))
	for id, c := range in {
		out[id] = segment.Customer{ID: c.ID, Name: c.Name, Email: c.Email}
	}
	return out
}

func mapOrders(in []recdom.Order) []segment.Order {
	out := make([]segment.Order, len(in))
	for i, o := range in {
		out[i] = segment.Order{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			Status:     segment.OrderStatus(o.Status),
			CreatedAt:  o.CreatedAt,
		}
	}
	return out
}

func mapLineItems(in []recdom.LineItem) []segment.LineItem {
	out := make([]segment.LineItem, len(in))
	for i, li := range in {
		out[i] = segment.LineItem{
			ID:        li.ID,
			OrderID:   li.OrderID,
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		}
	}
	return out
}
