package brief_db

import (
	"context"
	"fmt"
	"os"

	"marketbrief/config"
	"marketbrief/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBPool creates the process-scoped connection pool. The pool is
// created once at startup and released by the caller at shutdown.
func InitDBPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	poolConfig, err := pgxpool.ParseConfig(getDBConnectionString())
	if err != nil {
		logger.Logger.Error("Failed to parse database config", "error", err)
		return nil, err
	}
	poolConfig.MaxConns = int32(cfg.MaxConnections)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectionTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		logger.Logger.Error("Failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(connectCtx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", os.Getenv("DB_NAME"), "max_conns", cfg.MaxConnections)

	return pool, nil
}

func getDBConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOrDefault("DB_HOST", "localhost"),
		envOrDefault("DB_PORT", "5432"),
		envOrDefault("DB_USER", "marketbrief"),
		os.Getenv("DB_PASSWORD"),
		envOrDefault("DB_NAME", "marketbrief"),
		envOrDefault("DB_SSL_MODE", "disable"),
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
