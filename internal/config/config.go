package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr           string
	SeedFile       string
	PrefsDBPath    string
	RequestTimeout time.Duration
	AllowedOrigins []string
	ServerLog      *log.Logger
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	cfg := Config{
		Addr:           envOrDefault("HTTP_ADDR", ":8080"),
		SeedFile:       strings.TrimSpace(os.Getenv("STARTUP_SEED_FILE")),
		PrefsDBPath:    envOrDefault("MAP_PREFS_DB", "data/map-prefs.db"),
		RequestTimeout: timeout,
		AllowedOrigins: parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		ServerLog:      log.New(os.Stdout, "[paris-startup-map] ", log.LstdFlags|log.Lshortfile),
	}

	cfg.ServerLog.Printf("loaded config: addr=%q seedFile=%q prefsDB=%q", cfg.Addr, cfg.SeedFile, cfg.PrefsDBPath)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
