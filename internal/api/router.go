package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the HTTP-layer settings the router needs.
type RouterConfig struct {
	// Debug keeps gin in debug mode and enables verbose logging.
	Debug bool

	// StaticDir is mounted at /static when non-empty (product images).
	StaticDir string
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(h *Handlers, cfg RouterConfig) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())
	router.Use(RequestLogger(h.Logger))
	router.Use(MetricsMiddleware())

	router.GET("/health", h.HealthCheck)
	router.GET("/ready", h.ReadinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/products", h.ListProducts)
	router.POST("/products", h.CreateProduct)

	router.POST("/cart", h.AddToCart)
	router.GET("/cart/:userID", h.GetCart)

	router.POST("/orders", h.CreateOrder)
	router.GET("/orders/:userID", h.GetOrders)

	if cfg.StaticDir != "" {
		router.Static("/static", cfg.StaticDir)
	}

	return router
}
