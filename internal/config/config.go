// README: Config loader with env defaults for HTTP, DB, Redis, and AI keys.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; empty disables provider-call accounting.
		DSN string
	}
	Redis struct {
		// Addr is optional; empty disables the discovery cache.
		Addr string
	}
	Cache struct {
		TTL time.Duration
	}
	AI struct {
		// Either key may be absent; a missing key disables the providers
		// that depend on it rather than failing startup.
		GeminiKey string
		OpenAIKey string
	}
	Maps struct {
		// APIKey is optional; empty disables photo/geocode enrichment.
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPGEN_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("TRIPGEN_DB_DSN")
	cfg.Redis.Addr = os.Getenv("TRIPGEN_REDIS_ADDR")
	cfg.Cache.TTL = envOrDefaultDuration("TRIPGEN_CACHE_TTL", 24*time.Hour)
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	return cfg, nil
}

// HasAIKey reports whether at least one provider credential is present.
func (c Config) HasAIKey() bool {
	return c.AI.GeminiKey != "" || c.AI.OpenAIKey != ""
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}
