package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/commercekit/shop-api/internal/domain"
)

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository creates the PostgreSQL implementation of
// domain.CartRepository.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{db: store.DB()}
}

func (r *cartRepository) GetByUserAndProduct(ctx context.Context, userID string, productID int64) (domain.CartItem, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var item domain.CartItem
	err := r.db.QueryRowContext(opCtx, `
		SELECT id, user_id, product_id, quantity, created_at
		FROM cart_items
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartItem{}, domain.ErrCartItemNotFound
		}
		return domain.CartItem{}, fmt.Errorf("select cart item: %w", err)
	}

	return item, nil
}

func (r *cartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := r.db.QueryRowContext(opCtx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`,
		item.UserID, item.ProductID, item.Quantity,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}

	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (domain.CartItem, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var item domain.CartItem
	err := r.db.QueryRowContext(opCtx, `
		UPDATE cart_items
		SET quantity = $2
		WHERE id = $1
		RETURNING id, user_id, product_id, quantity, created_at
	`, id, quantity).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CartItem{}, domain.ErrCartItemNotFound
		}
		return domain.CartItem{}, fmt.Errorf("update cart item: %w", err)
	}

	return item, nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(opCtx, `
		SELECT id, user_id, product_id, quantity, created_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}

	return items, nil
}

func (r *cartRepository) DeleteByUser(ctx context.Context, userID string) error {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(opCtx, `
		DELETE FROM cart_items WHERE user_id = $1
	`, userID); err != nil {
		return fmt.Errorf("delete cart items: %w", err)
	}

	return nil
}
