package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Every field has a working default, so the service runs with no environment
// at all; in practice only the port ever needs overriding. The Yahoo base URL
// exists mainly as a seam for tests that stand in for the real provider.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	YAHOO_BASE_URL=https://query1.finance.yahoo.com
//	YAHOO_TIMEOUT_SECONDS=10
type Config struct {
	Server ServerConfig // HTTP server configuration
	Yahoo  YahooConfig  // Upstream market data provider settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// YahooConfig defines how to reach the upstream market data provider.
//
// Fields:
//   - BaseURL: scheme and host of the chart API.
//   - TimeoutSeconds: per-request HTTP timeout in seconds.
type YahooConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables end up missing or invalid, validateConfig()
//     terminates the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("YAHOO_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("YAHOO_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Yahoo: YahooConfig{
			BaseURL:        viper.GetString("YAHOO_BASE_URL"),
			TimeoutSeconds: viper.GetInt("YAHOO_TIMEOUT_SECONDS"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Yahoo.BaseURL == "" {
		missing = append(missing, "YAHOO_BASE_URL")
	}
	if AppConfig.Yahoo.TimeoutSeconds <= 0 {
		missing = append(missing, "YAHOO_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}
