package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/commercekit/shop-api/internal/domain"
)

type orderRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Order
}

// NewOrderRepository returns an in-memory domain.OrderRepository.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepository{
		nextID: 1,
		items:  make(map[int64]domain.Order),
	}
}

func (r *orderRepository) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	r.items[o.ID] = *o
	return nil
}

func (r *orderRepository) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, o := range r.items {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
