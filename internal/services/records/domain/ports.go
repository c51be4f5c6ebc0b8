package domain

import "context"

// ReaderPort is the read-only snapshot contract with the record store.
// Each call returns the complete, fully materialized record set; the store is
// treated as immutable for the duration of a run. Pre-joining is deliberately
// left to the consumer so orphaned line items stay observable.
type ReaderPort interface {
	// Customers returns the identity snapshot keyed by customer id
	Customers(ctx context.Context) (map[string]Customer, error)

	// Orders returns all order headers ordered by id
	Orders(ctx context.Context) ([]Order, error)

	// LineItems returns all order lines ordered by id
	LineItems(ctx context.Context) ([]LineItem, error)
}
