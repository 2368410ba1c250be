package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockticker/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DefaultRequestTimeout bounds every request when no timeout is configured.
const DefaultRequestTimeout = 10 * time.Second

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Adds request timeout handling (DefaultRequestTimeout when timeout <= 0).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the stock ticker routes (/api/StockTicker).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - timeout (time.Duration): Deadline applied to each request context.
//   - extra (...gin.HandlerFunc): Additional global middlewares (e.g. CORS), run after the rate limiter.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, timeout time.Duration, extra ...gin.HandlerFunc) *gin.Engine {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)
	router.Use(extra...)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Stock ticker ─────────────────────────────
	st := router.Group("/api/StockTicker")
	{
		st.POST("/AddTransaction", handler.AddTransaction)
		st.GET("/GetStockValue", handler.GetStockValue)
		st.GET("/GetAllStockValues", handler.GetAllStockValues)
		st.GET("/GetStockValues", handler.GetStockValues)
	}

	return router
}
