// Package orders places orders and lists order history.
package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/commercekit/shop-api/internal/domain"
)

// Service handles order placement and history reads.
type Service struct {
	orders   domain.OrderRepository
	carts    domain.CartRepository
	products domain.ProductRepository
	logger   zerolog.Logger
}

// NewService creates an orders service.
func NewService(orders domain.OrderRepository, carts domain.CartRepository, products domain.ProductRepository, logger zerolog.Logger) *Service {
	return &Service{
		orders:   orders,
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

// Create places an order for the given lines. The total is computed from
// then-current product prices; a line whose product no longer exists is
// skipped without error and simply contributes nothing. After the order is
// persisted the user's whole cart is cleared, regardless of which products
// the order contained.
//
// Order insert and cart clear are two separate writes, not one transaction:
// a clear failure after a successful insert leaves the cart populated.
func (s *Service) Create(ctx context.Context, in domain.CreateOrderInput) (domain.Order, error) {
	if err := in.Validate(); err != nil {
		return domain.Order{}, err
	}

	var total float64
	for _, line := range in.Items {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				s.logger.Warn().
					Str("user_id", in.UserID).
					Int64("product_id", line.ProductID).
					Msg("order line references missing product, skipped")
				continue
			}
			return domain.Order{}, fmt.Errorf("price lookup: %w", err)
		}
		total += product.Price * float64(line.Quantity)
	}

	order := domain.Order{
		UserID:      in.UserID,
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	if err := s.carts.DeleteByUser(ctx, in.UserID); err != nil {
		// The order already exists; surfacing the failed clear would undo
		// nothing. The cart stays populated until the next checkout.
		s.logger.Error().
			Err(err).
			Str("user_id", in.UserID).
			Int64("order_id", order.ID).
			Msg("cart clear failed after order creation")
	}

	s.logger.Info().
		Str("user_id", in.UserID).
		Int64("order_id", order.ID).
		Float64("total_amount", order.TotalAmount).
		Msg("order placed")

	return order, nil
}

// ListByUser returns a user's orders, oldest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	result, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return result, nil
}
