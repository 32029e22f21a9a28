package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/storage/memory"
)

func setupService(t *testing.T) (*Service, domain.ProductRepository, domain.CartRepository) {
	t.Helper()
	products := memory.NewProductRepository()
	carts := memory.NewCartRepository()
	return NewService(carts, products, zerolog.Nop()), products, carts
}

func createProduct(t *testing.T, repo domain.ProductRepository) domain.Product {
	t.Helper()
	p := domain.Product{Name: "Headphones", Price: 299.99, Stock: 50}
	if err := repo.Create(context.Background(), &p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestAdd_NewItem(t *testing.T) {
	svc, products, _ := setupService(t)
	p := createProduct(t, products)

	item, err := svc.Add(context.Background(), domain.AddToCartInput{
		UserID: "user-1", ProductID: p.ID, Quantity: 2,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if item.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", item.Quantity)
	}
	if item.ID == 0 {
		t.Error("cart item has no id")
	}
}

func TestAdd_MergesQuantities(t *testing.T) {
	svc, products, carts := setupService(t)
	p := createProduct(t, products)
	ctx := context.Background()

	if _, err := svc.Add(ctx, domain.AddToCartInput{UserID: "user-1", ProductID: p.ID, Quantity: 2}); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	merged, err := svc.Add(ctx, domain.AddToCartInput{UserID: "user-1", ProductID: p.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second Add failed: %v", err)
	}

	if merged.Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", merged.Quantity)
	}

	// Exactly one row for the (user, product) pair.
	items, err := carts.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart rows = %d, want 1", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("stored quantity = %d, want 5", items[0].Quantity)
	}
}

func TestAdd_SeparateUsersSeparateRows(t *testing.T) {
	svc, products, _ := setupService(t)
	p := createProduct(t, products)
	ctx := context.Background()

	if _, err := svc.Add(ctx, domain.AddToCartInput{UserID: "user-1", ProductID: p.ID, Quantity: 1}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.Add(ctx, domain.AddToCartInput{UserID: "user-2", ProductID: p.ID, Quantity: 1}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	for _, user := range []string{"user-1", "user-2"} {
		items, err := svc.List(ctx, user)
		if err != nil {
			t.Fatalf("List(%s) failed: %v", user, err)
		}
		if len(items) != 1 {
			t.Errorf("cart rows for %s = %d, want 1", user, len(items))
		}
	}
}

func TestAdd_UnknownProduct(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Add(context.Background(), domain.AddToCartInput{
		UserID: "user-1", ProductID: 999, Quantity: 1,
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAdd_Validation(t *testing.T) {
	svc, products, _ := setupService(t)
	p := createProduct(t, products)
	ctx := context.Background()

	cases := []domain.AddToCartInput{
		{UserID: "", ProductID: p.ID, Quantity: 1},
		{UserID: "user-1", ProductID: p.ID, Quantity: 0},
		{UserID: "user-1", ProductID: p.ID, Quantity: -2},
	}
	for _, in := range cases {
		if _, err := svc.Add(ctx, in); !domain.IsValidation(err) {
			t.Errorf("input %+v: expected validation error, got %v", in, err)
		}
	}
}

func TestList_EmptyCart(t *testing.T) {
	svc, _, _ := setupService(t)

	items, err := svc.List(context.Background(), "user-without-cart")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items = %d, want 0", len(items))
	}
}
