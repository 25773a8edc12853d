package config

import (
	"strings"
	"time"
)

// Config is the process configuration, loaded from environment variables
// with struct-tag defaults.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Dashboard DashboardConfig `json:"dashboard"`
	Market    MarketConfig    `json:"market"`
	Logging   LoggingConfig   `json:"logging"`
	CORS      CORSConfig      `json:"cors"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

// DashboardConfig carries the summary listing knobs. DefaultPageSize matches
// the dashboard grid; FetchLimit caps how many rows one request pulls from
// the store before in-memory filtering.
type DashboardConfig struct {
	DefaultPageSize int `json:"default_page_size" env:"DASHBOARD_DEFAULT_PAGE_SIZE" default:"9"`
	MaxPageSize     int `json:"max_page_size" env:"DASHBOARD_MAX_PAGE_SIZE" default:"50"`
	FetchLimit      int `json:"fetch_limit" env:"DASHBOARD_FETCH_LIMIT" default:"200"`
}

type MarketConfig struct {
	ProviderURL       string        `json:"provider_url" env:"MARKET_PROVIDER_URL" default:"https://quotes.example.com"`
	APIKey            string        `json:"-" env:"MARKET_API_KEY"`
	RequestTimeout    time.Duration `json:"request_timeout" env:"MARKET_REQUEST_TIMEOUT" default:"10s"`
	RateLimitInterval time.Duration `json:"rate_limit_interval" env:"MARKET_RATE_LIMIT_INTERVAL" default:"1s"`
	IndexSymbols      string        `json:"index_symbols" env:"MARKET_INDEX_SYMBOLS" default:"^GSPC,^DJI,^IXIC"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type CORSConfig struct {
	AllowOrigins string `json:"allow_origins" env:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
}

// Origins splits the configured comma-separated origin list.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// Indices splits the configured comma-separated index symbol list.
func (m MarketConfig) Indices() []string {
	parts := strings.Split(m.IndexSymbols, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			symbols = append(symbols, trimmed)
		}
	}
	return symbols
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values, then validating the result.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
