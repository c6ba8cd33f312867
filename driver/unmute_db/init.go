package unmute_db

import (
	"context"
	"fmt"
	"os"

	"unmute/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBConnection creates the shared pgx connection pool from environment
// variables. A .env file is honored when present.
func InitDBConnection(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, getDBConnectionString())
	if err != nil {
		logger.SafeError("Failed to create database pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.SafeError("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.SafeInfo("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

func getDBConnectionString() string {
	// Optional in containerized deployments where env vars are injected.
	_ = godotenv.Load()

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnvOrDefault("DB_HOST", "localhost"),
		getEnvOrDefault("DB_PORT", "5432"),
		getEnvOrDefault("DB_USER", "devuser"),
		getEnvOrDefault("DB_PASSWORD", "devpassword"),
		getEnvOrDefault("DB_NAME", "devdb"),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
