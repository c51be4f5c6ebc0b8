// Package repo provides the records repository implementation.
package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"winback/internal/modkit/repokit"
	perr "winback/internal/platform/errors"
	"winback/internal/platform/store"
	"winback/internal/services/records/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the records repository
type Storage interface {
	Customers(ctx context.Context) (map[string]domain.Customer, error)
	Orders(ctx context.Context) ([]domain.Order, error)
	LineItems(ctx context.Context) ([]domain.LineItem, error)
}

// Customers implements Storage
func (s *pg) Customers(ctx context.Context) (map[string]domain.Customer, error) {
	rows, err := store.Many(ctx, s.q, scanCustomer, `
		SELECT id::text, name, email, created_at
		FROM customers
		ORDER BY id`)
	if err != nil {
		return nil, classify(err, "fetch customers")
	}
	out := make(map[string]domain.Customer, len(rows))
	for _, c := range rows {
		out[c.ID] = c
	}
	return out, nil
}

// Orders implements Storage
func (s *pg) Orders(ctx context.Context) ([]domain.Order, error) {
	rows, err := store.Many(ctx, s.q, scanOrder, `
		SELECT id::text, customer_id::text, status::text, created_at
		FROM orders
		ORDER BY id`)
	if err != nil {
		return nil, classify(err, "fetch orders")
	}
	return rows, nil
}

// LineItems implements Storage
// unit_price is selected as text and parsed into a decimal so money never
// passes through binary floats
func (s *pg) LineItems(ctx context.Context) ([]domain.LineItem, error) {
	rows, err := store.Many(ctx, s.q, scanLineItem, `
		SELECT id::text, order_id::text, product_id::text, quantity, price_at_purchase::text
		FROM order_items
		ORDER BY id`)
	if err != nil {
		return nil, classify(err, "fetch order items")
	}
	return rows, nil
}

// classify wraps driver errors with a mapped code. Errors the scanners already
// classified (bad price text) pass through so their code is not masked
func classify(err error, msg string) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.FromPostgres(err, msg)
}

func scanCustomer(r store.Row) (domain.Customer, error) {
	var c domain.Customer
	err := r.Scan(&c.ID, &c.Name, &c.Email, &c.RegisteredAt)
	return c, err
}

func scanOrder(r store.Row) (domain.Order, error) {
	var o domain.Order
	err := r.Scan(&o.ID, &o.CustomerID, &o.Status, &o.CreatedAt)
	return o, err
}

func scanLineItem(r store.Row) (domain.LineItem, error) {
	var (
		li    domain.LineItem
		price string
	)
	if err := r.Scan(&li.ID, &li.OrderID, &li.ProductID, &li.Quantity, &price); err != nil {
		return li, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return li, perr.Wrapf(err, perr.ErrorCodeIntegrity, "line item %s has unparseable price %q", li.ID, price)
	}
	li.UnitPrice = d
	return li, nil
}
