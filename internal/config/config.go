package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config collects every environment setting the server needs. Secrets
// and connection details come from the environment (or a local .env).
type Config struct {
	Port int

	DatabaseURL string

	RedisAddr     string
	RedisPassword string

	AccessTokenSecret  []byte
	RefreshTokenSecret []byte

	// FleetCacheTTL bounds how stale a cached fleet snapshot may get.
	FleetCacheTTL time.Duration

	// Timezone is the fixed zone used for overdue checks, independent
	// of where the server runs.
	Timezone *time.Location

	AllowedOrigins []string
}

func Load() (*Config, error) {
	port, err := strconv.Atoi(getenv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			return nil, fmt.Errorf("DATABASE_URL or DB_HOST environment variable is required")
		}
		userInfo := url.UserPassword(os.Getenv("DB_USERNAME"), os.Getenv("DB_PASSWORD"))
		dbURL = fmt.Sprintf(
			"postgres://%s@%s:%s/%s?sslmode=disable",
			userInfo.String(),
			host,
			getenv("DB_PORT", "5432"),
			url.PathEscape(os.Getenv("DB_DATABASE")),
		)
	}

	accessSecret := os.Getenv("ACCESS_TOKEN_SECRET")
	if accessSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET environment variable is required")
	}
	refreshSecret := os.Getenv("REFRESH_TOKEN_SECRET")
	if refreshSecret == "" {
		return nil, fmt.Errorf("REFRESH_TOKEN_SECRET environment variable is required")
	}

	ttl, err := time.ParseDuration(getenv("FLEET_CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FLEET_CACHE_TTL: %w", err)
	}

	tz, err := time.LoadLocation(getenv("PORTAL_TIMEZONE", "Asia/Kuwait"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORTAL_TIMEZONE: %w", err)
	}

	origins := []string{getenv("CORS_ORIGIN", "http://localhost:3000")}

	return &Config{
		Port:               port,
		DatabaseURL:        dbURL,
		RedisAddr:          getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		FleetCacheTTL:      ttl,
		Timezone:           tz,
		AllowedOrigins:     origins,
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
