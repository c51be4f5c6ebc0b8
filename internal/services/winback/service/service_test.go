package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	perr "winback/internal/platform/errors"
	recdom "winback/internal/services/records/domain"
	"winback/internal/services/winback/domain"
)

// fakeReader is an in-memory records port
type fakeReader struct {
	customers map[string]recdom.Customer
	orders    []recdom.Order
	lines     []recdom.LineItem
	err       error
}

func (f *fakeReader) Customers(context.Context) (map[string]recdom.Customer, error) {
	return f.customers, f.err
}
func (f *fakeReader) Orders(context.Context) ([]recdom.Order, error)       { return f.orders, f.err }
func (f *fakeReader) LineItems(context.Context) ([]recdom.LineItem, error) { return f.lines, f.err }

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func fixtureReader(t *testing.T, lastOrder time.Time) *fakeReader {
	t.Helper()
	return &fakeReader{
		customers: map[string]recdom.Customer{
			"c1": {ID: "c1", Name: "Grace Hopper", Email: "grace@example.com"},
		},
		orders: []recdom.Order{
			{ID: "o1", CustomerID: "c1", Status: "completed", CreatedAt: lastOrder},
		},
		lines: []recdom.LineItem{
			{ID: "l1", OrderID: "o1", ProductID: "p1", Quantity: 2, UnitPrice: mustDec(t, "120.50")},
		},
	}
}

func TestRun_ProducesReportEnvelope(t *testing.T) {
	ref := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	svc := New(fixtureReader(t, ref.AddDate(-1, 0, 0)), Config{})

	report, err := svc.Run(context.Background(), domain.RunInput{ReferenceDate: ref})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if report.RunID == "" {
		t.Fatalf("missing run id")
	}
	if report.WindowMonths != 6 {
		t.Fatalf("default window = %d, want 6", report.WindowMonths)
	}
	if want := ref.AddDate(0, -6, 0); !report.Cutoff.Equal(want) {
		t.Fatalf("cutoff = %v, want %v", report.Cutoff, want)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(report.Rows))
	}
	row := report.Rows[0]
	if row.Email != "grace@example.com" || !row.TotalSpend.Equal(mustDec(t, "241.00")) {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestRun_WindowOverrideBeatsServiceDefault(t *testing.T) {
	ref := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	// last order 2 months stale: lapsed for a 1-month window, not for 6
	svc := New(fixtureReader(t, ref.AddDate(0, -2, 0)), Config{})

	report, err := svc.Run(context.Background(), domain.RunInput{ReferenceDate: ref, WindowMonths: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("1-month window should report the customer, got %d rows", len(report.Rows))
	}

	report, err = svc.Run(context.Background(), domain.RunInput{ReferenceDate: ref})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Rows) != 0 {
		t.Fatalf("6-month window should not report the customer, got %d rows", len(report.Rows))
	}
}

func TestRun_InvalidInput(t *testing.T) {
	svc := New(fixtureReader(t, time.Now()), Config{})

	_, err := svc.Run(context.Background(), domain.RunInput{})
	if !perr.IsCode(err, perr.ErrorCodeConfig) {
		t.Fatalf("missing reference date must be a config error, got %v", err)
	}

	_, err = svc.Run(context.Background(), domain.RunInput{
		ReferenceDate: time.Now(),
		WindowMonths:  -1,
	})
	if !perr.IsCode(err, perr.ErrorCodeConfig) {
		t.Fatalf("negative window must be a config error, got %v", err)
	}
}

func TestRun_IntegrityFailurePropagates(t *testing.T) {
	ref := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	r := fixtureReader(t, ref.AddDate(-1, 0, 0))
	r.lines = append(r.lines, recdom.LineItem{
		ID: "l-orphan", OrderID: "no-such-order", Quantity: 1, UnitPrice: mustDec(t, "5"),
	})
	svc := New(r, Config{})

	_, err := svc.Run(context.Background(), domain.RunInput{ReferenceDate: ref})
	if !perr.IsCode(err, perr.ErrorCodeIntegrity) {
		t.Fatalf("expected integrity error, got %v", err)
	}
}

func TestRun_EmptySnapshot(t *testing.T) {
	svc := New(&fakeReader{customers: map[string]recdom.Customer{}}, Config{})

	report, err := svc.Run(context.Background(), domain.RunInput{
		ReferenceDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("empty snapshot must not error: %v", err)
	}
	if report.Rows == nil || len(report.Rows) != 0 {
		t.Fatalf("want empty non-nil rows, got %#v", report.Rows)
	}
}
