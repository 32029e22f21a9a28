// Package api exposes the shop services over HTTP with gin.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/commercekit/shop-api/internal/cart"
	"github.com/commercekit/shop-api/internal/catalog"
	"github.com/commercekit/shop-api/internal/domain"
	"github.com/commercekit/shop-api/internal/health"
	"github.com/commercekit/shop-api/internal/orders"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// Handlers bundles every service the HTTP layer depends on. All handles are
// injected at startup; there are no package-level singletons.
type Handlers struct {
	Catalog *catalog.Service
	Cart    *cart.Service
	Orders  *orders.Service
	Health  *health.Checker
	Logger  zerolog.Logger
}

// --- Request bodies ---

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	ImageURL    *string `json:"image_url"`
}

type addToCartRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	ProductID int64  `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type orderLineRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

type createOrderRequest struct {
	UserID string             `json:"user_id" binding:"required"`
	Items  []orderLineRequest `json:"items"`
}

// --- Probes ---

// HealthCheck answers the liveness probe.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.Health.Liveness())
}

// ReadinessCheck answers the readiness probe with real dependency pings.
func (h *Handlers) ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.Health.Readiness(c.Request.Context()))
}

// --- Products ---

// ListProducts serves GET /products?skip=&limit=.
func (h *Handlers) ListProducts(c *gin.Context) {
	skip, err := queryInt(c, "skip", defaultSkip)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "skip must be an integer"})
		return
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "limit must be an integer"})
		return
	}

	products, err := h.Catalog.ListProducts(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct serves POST /products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	product, err := h.Catalog.CreateProduct(c.Request.Context(), domain.NewProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// --- Cart ---

// AddToCart serves POST /cart.
func (h *Handlers) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	item, err := h.Cart.Add(c.Request.Context(), domain.AddToCartInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetCart serves GET /cart/:userID.
func (h *Handlers) GetCart(c *gin.Context) {
	items, err := h.Cart.List(c.Request.Context(), c.Param("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// --- Orders ---

// CreateOrder serves POST /orders.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, domain.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.Orders.Create(c.Request.Context(), domain.CreateOrderInput{
		UserID: req.UserID,
		Items:  lines,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrders serves GET /orders/:userID.
func (h *Handlers) GetOrders(c *gin.Context) {
	result, err := h.Orders.ListByUser(c.Request.Context(), c.Param("userID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// respondError maps service errors to HTTP statuses: validation failures to
// 422, missing references to 404, everything else (store failures included)
// to 500 without leaking internals.
func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
	default:
		h.Logger.Error().
			Err(err).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
