package config

import (
	"os"
	"time"
)

// Config holds the environment-backed settings for the web frontend.
// Everything stateful lives behind the REST backend at APIBaseURL.
type Config struct {
	APIBaseURL string
	Port       string
	GinMode    string
	SessionTTL time.Duration
}

func Load() Config {
	cfg := Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:5000"),
		Port:       getEnv("PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),
		SessionTTL: 12 * time.Hour,
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.SessionTTL = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
