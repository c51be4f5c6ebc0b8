// Package domain defines the types and interfaces for the records service
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is one row of the customer identity snapshot
type Customer struct {
	ID           string
	Name         string
	Email        string
	RegisteredAt time.Time
}

// Order is one order header row
type Order struct {
	ID         string
	CustomerID string
	Status     string // order_status_enum
	CreatedAt  time.Time
}

// LineItem is one order line row; UnitPrice is the price actually paid per
// unit at purchase time, not the product's current price
type LineItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}
