package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/commercekit/shop-api/internal/domain"
)

type cartRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.CartItem
}

// NewCartRepository returns an in-memory domain.CartRepository.
func NewCartRepository() domain.CartRepository {
	return &cartRepository{
		nextID: 1,
		items:  make(map[int64]domain.CartItem),
	}
}

func (r *cartRepository) GetByUserAndProduct(_ context.Context, userID string, productID int64) (domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return domain.CartItem{}, domain.ErrCartItemNotFound
}

func (r *cartRepository) Create(_ context.Context, item *domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	r.items[item.ID] = *item
	return nil
}

func (r *cartRepository) UpdateQuantity(_ context.Context, id int64, quantity int) (domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return domain.CartItem{}, domain.ErrCartItemNotFound
	}
	item.Quantity = quantity
	r.items[id] = item
	return item, nil
}

func (r *cartRepository) ListByUser(_ context.Context, userID string) ([]domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *cartRepository) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}
