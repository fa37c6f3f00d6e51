package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Kukyos/GroundStateFinder/internal/molecule"
)

// Config holds runtime settings, all sourced from the environment.
type Config struct {
	Port string

	// Chemistry bridge
	DriverURL     string
	DriverTimeout time.Duration

	// Operator cache
	RedisAddr string
	CacheTTL  time.Duration

	LogLevel        string
	DefaultMolecule string
}

// Load reads configuration from the environment, consulting a .env file if
// one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: envOr("PORT", "8090"),

		DriverURL:     envOr("DRIVER_URL", "http://localhost:8085"),
		DriverTimeout: envDuration("DRIVER_TIMEOUT", 30*time.Second),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		CacheTTL:  envDuration("CACHE_TTL", 1*time.Hour),

		LogLevel:        envOr("LOG_LEVEL", "info"),
		DefaultMolecule: envOr("DEFAULT_MOLECULE", molecule.DefaultID),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
