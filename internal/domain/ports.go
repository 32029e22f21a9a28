package domain

import "context"

// ProductRepository stores and reads catalog products.
type ProductRepository interface {
	// Create persists a new product and fills its ID and CreatedAt.
	Create(ctx context.Context, p *Product) error

	// GetByID returns a product or ErrProductNotFound.
	GetByID(ctx context.Context, id int64) (Product, error)

	// List returns products in the window [skip, skip+limit), ordered by
	// insertion (ascending id).
	List(ctx context.Context, skip, limit int) ([]Product, error)

	// Count returns the number of listed products.
	Count(ctx context.Context) (int, error)
}

// CartRepository stores per-user cart rows.
type CartRepository interface {
	// GetByUserAndProduct returns the row for (user, product) or
	// ErrCartItemNotFound.
	GetByUserAndProduct(ctx context.Context, userID string, productID int64) (CartItem, error)

	// Create persists a new cart row and fills its ID and CreatedAt.
	Create(ctx context.Context, item *CartItem) error

	// UpdateQuantity sets the quantity of an existing row and returns it.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (CartItem, error)

	// ListByUser returns all cart rows of a user.
	ListByUser(ctx context.Context, userID string) ([]CartItem, error)

	// DeleteByUser removes every cart row of a user.
	DeleteByUser(ctx context.Context, userID string) error
}

// OrderRepository stores placed orders.
type OrderRepository interface {
	// Create persists a new order and fills its ID and CreatedAt.
	Create(ctx context.Context, o *Order) error

	// ListByUser returns all orders of a user, oldest first.
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}
