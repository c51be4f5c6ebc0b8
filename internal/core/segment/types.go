// Package segment implements the high-value lapsed customer segmentation:
// per-customer lifetime-spend aggregation over completed orders, top-decile
// ranking, recency-based lapsed filtering, and report assembly.
//
// Everything here is a pure function over fully materialized in-memory
// records; no I/O, no logging, no shared state. Callers own fetching and
// rendering.
package segment

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is an order's lifecycle state as recorded by the source store
type OrderStatus string

// Known order statuses. Only Completed contributes to spend
const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusRefunded  OrderStatus = "refunded"
)

// Customer is the identity view the assembler joins against
type Customer struct {
	ID    string
	Name  string
	Email string
}

// Order is the order header view the aggregator needs
type Order struct {
	ID         string
	CustomerID string
	Status     OrderStatus
	CreatedAt  time.Time
}

// LineItem is one order line with the price actually paid per unit at purchase time
type LineItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Summary is the per-customer aggregation over completed orders.
// Built fresh on every run and discarded afterwards; never persisted.
// A summary only exists for customers with at least one completed line item,
// so TotalSpend is always positive and LastCompletedAt is always set.
type Summary struct {
	CustomerID      string
	TotalSpend      decimal.Decimal
	LastCompletedAt time.Time
}

// ReportRow is one qualifying customer in the re-engagement list
type ReportRow struct {
	CustomerID      string          `json:"customer_id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	TotalSpend      decimal.Decimal `json:"total_spend"`
	LastCompletedAt time.Time       `json:"last_completed_at"`
}
