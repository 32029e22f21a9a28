// Package cart manages per-user shopping carts.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/commercekit/shop-api/internal/domain"
)

// Service handles cart reads and add/merge writes.
type Service struct {
	carts    domain.CartRepository
	products domain.ProductRepository
	logger   zerolog.Logger
}

// NewService creates a cart service.
func NewService(carts domain.CartRepository, products domain.ProductRepository, logger zerolog.Logger) *Service {
	return &Service{
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

// Add puts a product into a user's cart. If the (user, product) row already
// exists the quantities are merged into it, so the pair never occupies more
// than one row. Returns domain.ErrProductNotFound for an unknown product.
//
// The merge is read-then-write without store-level atomicity: two concurrent
// adds for the same pair can both read the old quantity and lose one update.
func (s *Service) Add(ctx context.Context, in domain.AddToCartInput) (domain.CartItem, error) {
	if err := in.Validate(); err != nil {
		return domain.CartItem{}, err
	}

	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.CartItem{}, domain.ErrProductNotFound
		}
		return domain.CartItem{}, fmt.Errorf("check product: %w", err)
	}

	existing, err := s.carts.GetByUserAndProduct(ctx, in.UserID, in.ProductID)
	switch {
	case err == nil:
		merged, err := s.carts.UpdateQuantity(ctx, existing.ID, existing.Quantity+in.Quantity)
		if err != nil {
			return domain.CartItem{}, fmt.Errorf("merge cart item: %w", err)
		}
		s.logger.Info().
			Str("user_id", in.UserID).
			Int64("product_id", in.ProductID).
			Int("quantity", merged.Quantity).
			Msg("cart item quantity merged")
		return merged, nil

	case errors.Is(err, domain.ErrCartItemNotFound):
		item := domain.CartItem{
			UserID:    in.UserID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		}
		if err := s.carts.Create(ctx, &item); err != nil {
			return domain.CartItem{}, fmt.Errorf("create cart item: %w", err)
		}
		s.logger.Info().
			Str("user_id", in.UserID).
			Int64("product_id", in.ProductID).
			Int("quantity", item.Quantity).
			Msg("cart item added")
		return item, nil

	default:
		return domain.CartItem{}, fmt.Errorf("lookup cart item: %w", err)
	}
}

// List returns every cart row of a user.
func (s *Service) List(ctx context.Context, userID string) ([]domain.CartItem, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}
