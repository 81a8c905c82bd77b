package config

import (
	"os"
	"strconv"
)

// Config holds application configuration from environment variables.
type Config struct {
	HTTPAddr         string
	MaxBodyBytes     int64
	MaxDepth         int
	DefaultAlgorithm string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	c := Config{
		HTTPAddr:         envOr("CANOND_HTTP_ADDR", ":8080"),
		MaxBodyBytes:     envInt64Or("CANOND_MAX_BODY_BYTES", 2*1024*1024),
		MaxDepth:         envIntOr("CANOND_MAX_DEPTH", 64),
		DefaultAlgorithm: envOr("CANOND_DEFAULT_ALGORITHM", "sha-256"),
	}
	return c
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
