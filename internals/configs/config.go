package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	AccessTokenTTL time.Duration

	// Bootstrap credentials for the first superadmin (see internals/seeds).
	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string
)

// =======================
// ENV LOADER
// =======================

// LoadEnv loads .env when present and caches the settings every package reads
// at startup. Deployed environments (Railway etc.) provide real env vars, so a
// missing .env is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set; token verification will fail")
	}

	AccessTokenTTL = GetEnvDuration("ACCESS_TOKEN_TTL", 24*time.Hour)

	SeedAdminEmail = GetEnv("SEED_ADMIN_EMAIL")
	SeedAdminPassword = GetEnv("SEED_ADMIN_PASSWORD")
	SeedAdminName = GetEnv("SEED_ADMIN_NAME", "Platform Superadmin")
}

// GetEnv returns the env value for key, or the optional default when unset.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt parses an integer env var, falling back when unset or malformed.
func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[WARN] %s=%q is not an integer, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

// GetEnvDuration parses a time.Duration env var ("15m", "24h", ...).
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a duration, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// =======================
// DATABASE DSN
// =======================

// DatabaseDSN builds the Postgres DSN from DB_* env vars. statement_timeout
// keeps a stuck query from holding a pooled connection hostage.
func DatabaseDSN() string {
	sslmode := GetEnv("DB_SSLMODE", "require")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)
}
