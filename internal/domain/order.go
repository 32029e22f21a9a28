package domain

import (
	"time"
)

// OrderStatus is the lifecycle state of an order. Orders are created pending
// and never transitioned by this API; the set is open-ended for downstream
// systems.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order.
	OrderStatusPending OrderStatus = "pending"
)

// Order is a placed order. TotalAmount is computed from then-current product
// prices at creation time; line items are not snapshotted.
type Order struct {
	ID          int64       `json:"id"`
	UserID      string      `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderLine is one (product, quantity) pair of an order request.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// CreateOrderInput carries the fields of an order placement request.
type CreateOrderInput struct {
	UserID string
	Items  []OrderLine
}

// Validate checks the invariants of an order placement request.
func (in CreateOrderInput) Validate() error {
	if in.UserID == "" {
		return ErrValidation("user id must not be empty")
	}
	for _, line := range in.Items {
		if line.Quantity <= 0 {
			return ErrValidation("line quantity must be positive")
		}
	}
	return nil
}
