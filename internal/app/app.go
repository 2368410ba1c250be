package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockticker/config"
	"github.com/guttosm/stockticker/internal/api"
	"github.com/guttosm/stockticker/internal/cache"
	"github.com/guttosm/stockticker/internal/logger"
	"github.com/guttosm/stockticker/internal/middleware"
	"github.com/guttosm/stockticker/internal/service"
	"github.com/guttosm/stockticker/internal/storage"
	"github.com/shopspring/decimal"
)

// migrator is an indirection for unit testing; defaults to storage.Migrate.
var migrator = storage.Migrate

func init() {
	// values are rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL and applies pending migrations.
//   - Connects to Redis when REDIS_ENABLED is set and wraps the service with the value cache.
//   - Creates the HTTP handler and router with the configured timeout, rate limit and CORS origins.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	if err := migrator(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate postgres: %w", err)
	}

	repo := storage.NewTransactionsRepository(db)
	svc := service.NewStockService(repo)

	health := api.NewHealthHandler(db.Ping)
	closers := []func() error{db.Close}

	if cfg.Redis.Enabled {
		client, err := redisOpener(cfg)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		svc = service.NewCachedStockService(svc, cache.NewRedisValueCache(client, cfg.Redis.TTL))
		health.WithCachePing(func() error { return client.Ping(context.Background()).Err() })
		closers = append(closers, client.Close)
		logger.L().Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("stock value cache enabled")
	}

	middleware.ConfigureRateLimit(cfg.Server.RateLimitPerMinute)

	router := api.NewRouter(api.NewHandler(svc), cfg.Server.RequestTimeout, middleware.CORS(cfg.Server.AllowedOrigins))
	health.Register(router)

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	return router, cleanup, nil
}
