package config

import (
	"os"
	"strconv"
	"time"
)

// Settings are read straight from the environment with sane development
// defaults, mirroring the upstream deployment (.env loaded by main).

func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
	}
	return []byte(secret)
}

// AccessTokenLifetime defaults to 60 minutes.
func AccessTokenLifetime() time.Duration {
	return time.Duration(envInt("JWT_ACCESS_MINUTES", 60)) * time.Minute
}

// RefreshTokenLifetime defaults to 1 day.
func RefreshTokenLifetime() time.Duration {
	return time.Duration(envInt("JWT_REFRESH_DAYS", 1)) * 24 * time.Hour
}

// PageSize is the fixed page size for paginated list responses.
func PageSize() int {
	return envInt("PAGE_SIZE", 10)
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return port
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return fallback
	}
	return val
}
