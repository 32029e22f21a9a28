// Package memory provides in-memory repository implementations for local
// development and tests without PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/commercekit/shop-api/internal/domain"
)

type productRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Product
}

// NewProductRepository returns an in-memory domain.ProductRepository.
func NewProductRepository() domain.ProductRepository {
	return &productRepository{
		nextID: 1,
		items:  make(map[int64]domain.Product),
	}
}

func (r *productRepository) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	// Store a copy so later caller mutations don't leak in.
	r.items[p.ID] = *p
	return nil
}

func (r *productRepository) GetByID(_ context.Context, id int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *productRepository) List(_ context.Context, skip, limit int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Product, 0, len(r.items))
	for _, p := range r.items {
		all = append(all, p)
	}
	// Ascending id matches the insertion order the SQL implementation returns.
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if skip >= len(all) {
		return []domain.Product{}, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *productRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
