package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/commercekit/shop-api/internal/cart"
	"github.com/commercekit/shop-api/internal/catalog"
	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/health"
	"github.com/commercekit/shop-api/internal/orders"
	"github.com/commercekit/shop-api/internal/storage"
	"github.com/commercekit/shop-api/internal/storage/memory"
	"github.com/commercekit/shop-api/pkg/cache"
)

// memCache is an in-memory catalog.PageCache for handler tests.
type memCache struct {
	mu      sync.Mutex
	entries map[string]*cache.Entry
}

func (m *memCache) Get(_ context.Context, key cache.Key) (*cache.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key.String()]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return entry, nil
}

func (m *memCache) Set(_ context.Context, key cache.Key, entry *cache.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key.String()] = entry
	return nil
}

func (m *memCache) DeleteByPrefix(_ context.Context, prefix string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deleted := 0
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
			deleted++
		}
	}
	return deleted, nil
}

func newTestServer(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := memory.NewProductRepository()
	carts := memory.NewCartRepository()
	orderRepo := memory.NewOrderRepository()
	pageCache := &memCache{entries: make(map[string]*cache.Entry)}
	logger := zerolog.Nop()

	if seed {
		if err := storage.SeedProducts(context.Background(), products, logger); err != nil {
			t.Fatalf("seed products: %v", err)
		}
	}

	okPing := health.PingFunc(func(context.Context) error { return nil })

	h := &Handlers{
		Catalog: catalog.NewService(products, pageCache, logger),
		Cart:    cart.NewService(carts, products, logger),
		Orders:  orders.NewService(orderRepo, carts, products, logger),
		Health:  health.NewChecker("1.0.0", okPing, okPing),
		Logger:  logger,
	}

	return NewRouter(h, RouterConfig{Debug: false})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t, false)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	report := decode[health.Report](t, rec)
	if report.Status != "ok" {
		t.Errorf("status = %q, want ok", report.Status)
	}
	if report.Database != health.StatusSkipped {
		t.Errorf("database = %s, want skipped", report.Database)
	}
}

func TestReadyEndpoint(t *testing.T) {
	router := newTestServer(t, false)

	rec := doJSON(t, router, http.MethodGet, "/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	report := decode[health.Report](t, rec)
	if report.Database != health.StatusHealthy || report.Redis != health.StatusHealthy {
		t.Errorf("dependency status = %s/%s, want healthy/healthy", report.Database, report.Redis)
	}
}

func TestListProducts_SeededCatalog(t *testing.T) {
	router := newTestServer(t, true)

	rec := doJSON(t, router, http.MethodGet, "/products?skip=0&limit=10", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	products := decode[[]domain.Product](t, rec)
	if len(products) != 5 {
		t.Fatalf("products = %d, want the 5 seeded rows", len(products))
	}
	if products[0].Price != 1299.99 {
		t.Errorf("first product price = %v, want 1299.99", products[0].Price)
	}
	for i := 1; i < len(products); i++ {
		if products[i].ID <= products[i-1].ID {
			t.Errorf("products not in creation order at index %d", i)
		}
	}
}

func TestListProducts_DefaultsApplied(t *testing.T) {
	router := newTestServer(t, true)

	rec := doJSON(t, router, http.MethodGet, "/products", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	products := decode[[]domain.Product](t, rec)
	if len(products) != 5 {
		t.Errorf("products = %d, want 5", len(products))
	}
}

func TestListProducts_BadQuery(t *testing.T) {
	router := newTestServer(t, true)

	for _, path := range []string{
		"/products?skip=abc",
		"/products?limit=abc",
		"/products?skip=-1",
		"/products?limit=0",
	} {
		rec := doJSON(t, router, http.MethodGet, path, nil)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: status = %d, want 422", path, rec.Code)
		}
	}
}

func TestCreateProduct_AppearsInNextListing(t *testing.T) {
	router := newTestServer(t, true)

	// Warm the cache first so the create has stale pages to evict.
	if rec := doJSON(t, router, http.MethodGet, "/products?skip=0&limit=10", nil); rec.Code != http.StatusOK {
		t.Fatalf("warm-up list failed: %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/products", gin.H{
		"name":        "Monitor",
		"description": "27-inch monitor",
		"price":       349.99,
		"stock":       15,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	created := decode[domain.Product](t, rec)
	if created.ID == 0 {
		t.Error("created product has no id")
	}

	rec = doJSON(t, router, http.MethodGet, "/products?skip=0&limit=10", nil)
	products := decode[[]domain.Product](t, rec)
	if len(products) != 6 {
		t.Fatalf("products after create = %d, want 6", len(products))
	}
	if products[5].Name != "Monitor" {
		t.Errorf("last product = %q, want Monitor", products[5].Name)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	router := newTestServer(t, false)

	cases := []gin.H{
		{"description": "no name", "price": 10.0, "stock": 1},
		{"name": "Negative", "price": -5.0, "stock": 1},
		{"name": "Negative stock", "price": 5.0, "stock": -1},
	}
	for _, body := range cases {
		rec := doJSON(t, router, http.MethodPost, "/products", body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("body %v: status = %d, want 422", body, rec.Code)
		}
	}
}

func TestCreateProduct_MalformedJSON(t *testing.T) {
	router := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	router := newTestServer(t, false)

	rec := doJSON(t, router, http.MethodPost, "/cart", gin.H{
		"user_id":    "user-1",
		"product_id": 999,
		"quantity":   1,
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAddToCart_MergeFlow(t *testing.T) {
	router := newTestServer(t, true)

	body := gin.H{"user_id": "user-1", "product_id": 1, "quantity": 2}
	if rec := doJSON(t, router, http.MethodPost, "/cart", body); rec.Code != http.StatusOK {
		t.Fatalf("first add status = %d: %s", rec.Code, rec.Body.String())
	}

	body["quantity"] = 3
	rec := doJSON(t, router, http.MethodPost, "/cart", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("second add status = %d", rec.Code)
	}
	merged := decode[domain.CartItem](t, rec)
	if merged.Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", merged.Quantity)
	}

	rec = doJSON(t, router, http.MethodGet, "/cart/user-1", nil)
	items := decode[[]domain.CartItem](t, rec)
	if len(items) != 1 {
		t.Errorf("cart rows = %d, want 1", len(items))
	}
}

func TestCreateOrder_FullCheckoutFlow(t *testing.T) {
	router := newTestServer(t, true)

	if rec := doJSON(t, router, http.MethodPost, "/cart", gin.H{
		"user_id": "user-1", "product_id": 1, "quantity": 1,
	}); rec.Code != http.StatusOK {
		t.Fatalf("cart add failed: %d", rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, "/orders", gin.H{
		"user_id": "user-1",
		"items": []gin.H{
			{"product_id": 1, "quantity": 1},
			{"product_id": 999, "quantity": 3}, // missing, must not error
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("order status = %d: %s", rec.Code, rec.Body.String())
	}
	order := decode[domain.Order](t, rec)
	if order.TotalAmount != 1299.99 {
		t.Errorf("total = %v, want 1299.99 (missing product excluded)", order.TotalAmount)
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}

	// Cart cleared by checkout.
	rec = doJSON(t, router, http.MethodGet, "/cart/user-1", nil)
	items := decode[[]domain.CartItem](t, rec)
	if len(items) != 0 {
		t.Errorf("cart rows after checkout = %d, want 0", len(items))
	}

	// Order visible in history.
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/orders/%s", "user-1"), nil)
	history := decode[[]domain.Order](t, rec)
	if len(history) != 1 {
		t.Errorf("orders = %d, want 1", len(history))
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestServer(t, false)

	// Generate at least one recorded request so the counter has a series.
	doJSON(t, router, http.MethodGet, "/health", nil)

	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "shop_requests_total") {
		t.Error("metrics exposition missing shop_requests_total")
	}
}
