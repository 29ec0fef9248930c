// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultLanguage             = "en"
	DefaultRegion               = "US"
	DefaultMaxRequestsPerSecond = 50
	DefaultMaxRequestsPerDay    = 100000
	DefaultCacheTTL             = time.Hour
)

// Config holds the recognized configuration options. Values are used
// as-is by the rest of the system; only the API key is checked here.
type Config struct {
	// APIKey is the Google Maps API key. Required.
	APIKey string

	// Language and Region are forwarded to the upstream APIs on every
	// applicable request.
	Language string
	Region   string

	// RateLimit bounds upstream calls issued by the client.
	MaxRequestsPerSecond float64
	MaxRequestsPerDay    int

	// Caching of upstream responses.
	CacheEnabled bool
	CacheTTL     time.Duration
}

// Load reads configuration from the environment, optionally loading a
// .env file first. A missing API key is an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Best-effort load of a .env in the working directory.
		_ = godotenv.Load()
	}

	cfg := &Config{
		APIKey:               os.Getenv("GOOGLE_MAPS_API_KEY"),
		Language:             getEnv("DEFAULT_LANGUAGE", DefaultLanguage),
		Region:               getEnv("DEFAULT_REGION", DefaultRegion),
		MaxRequestsPerSecond: getEnvFloat("MAX_REQUESTS_PER_SECOND", DefaultMaxRequestsPerSecond),
		MaxRequestsPerDay:    getEnvInt("MAX_REQUESTS_PER_DAY", DefaultMaxRequestsPerDay),
		CacheEnabled:         getEnv("ENABLE_CACHING", "true") == "true",
		CacheTTL:             time.Duration(getEnvInt("CACHE_TTL", int(DefaultCacheTTL/time.Second))) * time.Second,
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Google Maps API key is required: set GOOGLE_MAPS_API_KEY")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
