package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Token TTL when JWT_TTL_SECONDS is not set.
const defaultTokenTTLSeconds = 6660

// Config holds the process configuration read from the environment.
type Config struct {
	DBDSN     string
	AppPort   string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads .env (when present) and the environment. Missing required
// values are fatal at startup.
func Load(logger *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	cfg := &Config{
		DBDSN:     os.Getenv("DB_DSN"),
		AppPort:   os.Getenv("APP_PORT"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.DBDSN == "" {
		logger.Fatal("DB_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	ttlSeconds := defaultTokenTTLSeconds
	if v := os.Getenv("JWT_TTL_SECONDS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			logger.Fatal("JWT_TTL_SECONDS must be a positive integer", zap.String("value", v))
		}
		ttlSeconds = parsed
	}
	cfg.TokenTTL = time.Duration(ttlSeconds) * time.Second

	return cfg
}
