// Package catalog serves paginated product listings through a read-through
// Redis page cache and creates products with coarse cache invalidation.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/pkg/cache"
)

// productsResource is the cache resource kind for product pages.
const productsResource = "products"

// PageCache is the slice of the cache manager the catalog depends on.
// *cache.Manager satisfies it; tests substitute failing or in-memory fakes.
type PageCache interface {
	Get(ctx context.Context, key cache.Key) (*cache.Entry, error)
	Set(ctx context.Context, key cache.Key, entry *cache.Entry) error
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}

// Service is the read-through cache coordinator for the product catalog.
//
// The cache is strictly advisory: a failed cache read is logged and treated
// as a miss, a failed write or invalidation is logged and dropped. The store
// remains the only dependency whose failure reaches the caller.
type Service struct {
	products domain.ProductRepository
	cache    PageCache
	logger   zerolog.Logger
}

// NewService creates a catalog service.
func NewService(products domain.ProductRepository, pageCache PageCache, logger zerolog.Logger) *Service {
	return &Service{
		products: products,
		cache:    pageCache,
		logger:   logger,
	}
}

// ListProducts returns the product window [skip, skip+limit) in insertion
// order, serving from cache when a fresh snapshot exists and populating the
// cache after a store read otherwise.
//
// Limit is not capped; an unbounded page is a known resource-exhaustion
// exposure accepted for now.
func (s *Service) ListProducts(ctx context.Context, skip, limit int) ([]domain.Product, error) {
	if skip < 0 {
		return nil, domain.ErrValidation("skip must not be negative")
	}
	if limit <= 0 {
		return nil, domain.ErrValidation("limit must be positive")
	}

	key := cache.Key{Resource: productsResource, Skip: skip, Limit: limit}

	if products, ok := s.readCachedPage(ctx, key); ok {
		s.logger.Debug().
			Str("cache_key", key.String()).
			Bool("cache_hit", true).
			Msg("products served from cache")
		return products, nil
	}

	products, err := s.products.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	s.writeCachedPage(ctx, key, products)

	s.logger.Debug().
		Str("cache_key", key.String()).
		Bool("cache_hit", false).
		Int("count", len(products)).
		Msg("products served from store")

	return products, nil
}

// CreateProduct lists a new product and evicts every cached product page
// before returning, so no later read can observe a page that predates the
// create. The eviction is best-effort: on failure the create still succeeds
// and staleness stays bounded by the entry TTL.
func (s *Service) CreateProduct(ctx context.Context, in domain.NewProductInput) (domain.Product, error) {
	if err := in.Validate(); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
	}
	if err := s.products.Create(ctx, &p); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.InvalidateProductCache(ctx)

	s.logger.Info().
		Int64("product_id", p.ID).
		Str("name", p.Name).
		Msg("product created")

	return p, nil
}

// InvalidateProductCache evicts every cached product page, regardless of
// which windows the triggering write actually affected. Failures are logged
// and swallowed.
func (s *Service) InvalidateProductCache(ctx context.Context) {
	deleted, err := s.cache.DeleteByPrefix(ctx, cache.ResourcePrefix(productsResource))
	if err != nil {
		s.logger.Warn().
			Err(err).
			Msg("product cache invalidation failed, stale pages possible until TTL")
		return
	}
	s.logger.Debug().Int("evicted", deleted).Msg("product cache invalidated")
}

// readCachedPage attempts a cache lookup. It returns ok=false on miss and on
// every cache or decode failure; only the miss is silent.
func (s *Service) readCachedPage(ctx context.Context, key cache.Key) ([]domain.Product, bool) {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn().
				Err(err).
				Str("cache_key", key.String()).
				Msg("cache read failed, falling back to store")
		}
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(entry.Data, &products); err != nil {
		s.logger.Warn().
			Err(err).
			Str("cache_key", key.String()).
			Msg("cached page undecodable, falling back to store")
		return nil, false
	}

	return products, true
}

// writeCachedPage stores a freshly read page. Failures are logged and
// swallowed; the caller already holds the data it will return.
func (s *Service) writeCachedPage(ctx context.Context, key cache.Key, products []domain.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("cache_key", key.String()).
			Msg("page serialization failed, skipping cache write")
		return
	}

	if err := s.cache.Set(ctx, key, cache.NewEntry(data)); err != nil {
		s.logger.Warn().
			Err(err).
			Str("cache_key", key.String()).
			Msg("cache write failed, page served uncached")
	}
}
