// Package storage provides store-independent startup helpers shared by the
// postgres and memory implementations.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/commercekit/shop-api/internal/domain"
)

func strptr(s string) *string { return &s }

// sampleProducts are inserted exactly once, into an empty catalog, so a fresh
// deployment has something to list.
var sampleProducts = []domain.Product{
	{Name: "Laptop Gaming", Description: "High-performance gaming laptop", Price: 1299.99, Stock: 10, ImageURL: strptr("/static/images/laptop-gaming.jpg")},
	{Name: "Smartphone", Description: "Latest model smartphone", Price: 799.99, Stock: 25, ImageURL: strptr("/static/images/smartphone.jpg")},
	{Name: "Headphones", Description: "Noise-cancelling wireless headphones", Price: 299.99, Stock: 50, ImageURL: strptr("/static/images/headphones.jpg")},
	{Name: "Smart Watch", Description: "Fitness tracking smart watch", Price: 399.99, Stock: 30, ImageURL: strptr("/static/images/smartwatch.jpg")},
	{Name: "Tablet", Description: "10-inch tablet for productivity", Price: 549.99, Stock: 20, ImageURL: strptr("/static/images/tablet.jpg")},
}

// SeedProducts inserts the sample catalog when the products table is empty.
// It is idempotent across restarts: a non-empty catalog is left untouched.
func SeedProducts(ctx context.Context, repo domain.ProductRepository, logger zerolog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		logger.Debug().Int("products", count).Msg("catalog already populated, skipping seed")
		return nil
	}

	for i := range sampleProducts {
		p := sampleProducts[i]
		if err := repo.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}

	logger.Info().Int("products", len(sampleProducts)).Msg("sample products seeded")
	return nil
}
