package domain

import (
	"time"
)

// CartItem is one product in a user's cart. At most one row exists per
// (user, product) pair; repeated adds merge quantities into the existing row.
// The product reference is validated by the cart service, not by a foreign
// key in the store.
type CartItem struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// AddToCartInput carries the fields of a cart add/merge request.
type AddToCartInput struct {
	UserID    string
	ProductID int64
	Quantity  int
}

// Validate checks the invariants of a cart add request.
func (in AddToCartInput) Validate() error {
	if in.UserID == "" {
		return ErrValidation("user id must not be empty")
	}
	if in.Quantity <= 0 {
		return ErrValidation("quantity must be positive")
	}
	return nil
}
