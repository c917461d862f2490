package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seasonpulse/internal/middleware"
)

// requestTimeout caps how long a single request may spend waiting on the
// upstream data provider. Comparisons fan out several fetches, so this is
// deliberately generous.
const requestTimeout = 15 * time.Second

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Allows cross-origin reads, since the API feeds browser dashboards.
//   - Adds request timeout handling.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the seasonality and info routes.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// ─── CORS ──────────────────────────────────────
	router.Use(cors.Default())

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Routes ───────────────────────────────────
	router.GET("/", handler.Home)

	seasonality := router.Group("/seasonality")
	{
		seasonality.GET("/monthly", handler.GetMonthly)
		seasonality.GET("/quarterly", handler.GetQuarterly)
		seasonality.GET("/weekly", handler.GetWeekly)
		seasonality.GET("/compare", handler.GetCompare)
	}

	router.GET("/info/:ticker", handler.GetInfo)

	return router
}
