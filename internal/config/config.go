package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the API server
type Config struct {
	Port           string
	GinMode        string
	RateLimitRPS   float64 // per-client requests per second
	RateLimitBurst int
}

// Load reads configuration from environment variables (optionally .env),
// falling back to development defaults
func Load() *Config {
	_ = godotenv.Load() // ignore missing file

	cfg := &Config{
		Port:           ":8080",
		GinMode:        "debug",
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.GinMode = mode
	}

	if rpsStr := os.Getenv("RATE_LIMIT_RPS"); rpsStr != "" {
		if rps, err := strconv.ParseFloat(rpsStr, 64); err == nil && rps > 0 {
			cfg.RateLimitRPS = rps
		}
	}

	if burstStr := os.Getenv("RATE_LIMIT_BURST"); burstStr != "" {
		if burst, err := strconv.Atoi(burstStr); err == nil && burst > 0 {
			cfg.RateLimitBurst = burst
		}
	}

	return cfg
}
