// Command shop-api runs the e-commerce HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/commercekit/shop-api/internal/api"
	"github.com/commercekit/shop-api/internal/cart"
	"github.com/commercekit/shop-api/internal/catalog"
	"github.com/commercekit/shop-api/internal/health"
	"github.com/commercekit/shop-api/internal/orders"
	"github.com/commercekit/shop-api/internal/storage"
	"github.com/commercekit/shop-api/internal/storage/postgres"
	"github.com/commercekit/shop-api/pkg/cache"
	"github.com/commercekit/shop-api/pkg/config"
	"github.com/commercekit/shop-api/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.Setup(logging.DefaultConfig())
		fallback.Fatal().Err(err).Msg("configuration invalid")
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.Debug,
		Output: os.Stderr,
	})
	logger.Info().
		Str("app", cfg.AppName).
		Str("version", cfg.AppVersion).
		Bool("debug", cfg.Debug).
		Msg("starting")

	ctx := context.Background()

	// Redis is advisory: a dead cache degrades every listing to a store
	// read but must not block startup.
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr()).Msg("redis unreachable, serving without cache")
	} else {
		logger.Info().Str("addr", cfg.RedisAddr()).Msg("connected to redis")
	}

	// Postgres is the required dependency: no store, no service.
	store, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}
	version, applied, err := store.MigrationStatus(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("migration status unavailable")
	}
	logger.Info().Int64("schema_version", version).Int("applied", applied).Msg("schema ready")

	products := postgres.NewProductRepository(store)
	carts := postgres.NewCartRepository(store)
	orderRepo := postgres.NewOrderRepository(store)

	if err := storage.SeedProducts(ctx, products, logging.NewLogger("seed")); err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}

	pageCache := cache.NewManager(redisClient)

	handlers := &api.Handlers{
		Catalog: catalog.NewService(products, pageCache, logging.NewLogger("catalog")),
		Cart:    cart.NewService(carts, products, logging.NewLogger("cart")),
		Orders:  orders.NewService(orderRepo, carts, products, logging.NewLogger("orders")),
		Health: health.NewChecker(cfg.AppVersion, store, health.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})),
		Logger: logging.NewLogger("api"),
	}

	router := api.NewRouter(handlers, api.RouterConfig{
		Debug:     cfg.Debug,
		StaticDir: cfg.StaticDir,
	})

	server := &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	logger.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("stopped")
}
