package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"seasonpulse/config"
	"seasonpulse/internal/api"
	"seasonpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream market data client from configuration.
//   - Creates the seasonality service (business logic).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release client resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Build the market data client
	// indirection for unit testing
	client, err := providerCtor(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize market data client: %w", err)
	}

	// Initialize service layer (business logic)
	svc := service.NewSeasonalityService(client)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(client.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.Close()
	}

	return router, cleanup, nil
}
