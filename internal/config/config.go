// Package config collects runtime settings from the environment. A
// .env file in the working directory is honored when present; real
// environment variables win over it.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBPath   string
	LogLevel string

	// JWTSecret signs session tokens; the server refuses to start
	// without one.
	JWTSecret  string
	SessionTTL time.Duration

	GeocoderBaseURL   string
	GeocoderUserAgent string
}

// Load reads configuration, merging an optional .env file under the
// process environment.
func Load() (Config, error) {
	// Missing .env is fine; only a parse failure is worth surfacing,
	// and godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	cfg := Config{
		Port:              getenv("FAMORG_PORT", "3002"),
		DBPath:            getenv("FAMORG_DB_PATH", "famorg.db"),
		LogLevel:          getenv("FAMORG_LOG_LEVEL", "info"),
		JWTSecret:         os.Getenv("FAMORG_JWT_SECRET"),
		SessionTTL:        24 * time.Hour,
		GeocoderBaseURL:   os.Getenv("FAMORG_GEOCODER_URL"),
		GeocoderUserAgent: getenv("FAMORG_GEOCODER_USER_AGENT", "FamilyOrganiser/1.0"),
	}

	if ttl := os.Getenv("FAMORG_SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, errors.New("FAMORG_SESSION_TTL must be a duration like 24h")
		}
		cfg.SessionTTL = d
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("FAMORG_JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
