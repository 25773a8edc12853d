package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateConfig validates the loaded configuration values.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateDashboardConfig(&config.Dashboard); err != nil {
		return fmt.Errorf("dashboard config validation failed: %w", err)
	}

	if err := validateMarketConfig(&config.Market); err != nil {
		return fmt.Errorf("market config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}
	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}
	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}
	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ShutdownTimeout: %v", config.ShutdownTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateDashboardConfig(config *DashboardConfig) error {
	if config.DefaultPageSize < 1 {
		return fmt.Errorf("default page size must be at least 1, got %d", config.DefaultPageSize)
	}

	if config.MaxPageSize < config.DefaultPageSize {
		return fmt.Errorf("max page size %d must not be below default page size %d",
			config.MaxPageSize, config.DefaultPageSize)
	}

	if config.FetchLimit < config.MaxPageSize {
		return fmt.Errorf("fetch limit %d must not be below max page size %d",
			config.FetchLimit, config.MaxPageSize)
	}

	return nil
}

func validateMarketConfig(config *MarketConfig) error {
	parsed, err := url.Parse(config.ProviderURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("provider URL must be an absolute http(s) URL, got %q", config.ProviderURL)
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", config.RequestTimeout)
	}
	if config.RateLimitInterval <= 0 {
		return fmt.Errorf("rate limit interval must be positive, got %v", config.RateLimitInterval)
	}

	if len(config.Indices()) == 0 {
		return fmt.Errorf("index symbols must not be empty")
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error; got %q", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %q", config.Format)
	}

	return nil
}
