package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the runtime configuration of the dashboard service.
type Config struct {
	Port          string
	ReferenceFile string

	// Seed pins every response to one random stream when HasSeed is set.
	Seed    uint64
	HasSeed bool

	SessionTTL     time.Duration
	SessionCleanup time.Duration

	AllowedOrigins []string
	CORSDebug      bool

	LogLevel  string
	LogFormat string

	TracingEnabled     bool
	TracingSampleRatio float64

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
}

// Load reads the configuration from the environment. Call LoadEnv first to
// pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Port:               getEnvWithDefault("PORT", "8080"),
		ReferenceFile:      os.Getenv("DASHBOARD_REFERENCE_FILE"),
		SessionTTL:         getEnvAsDuration("DASHBOARD_SESSION_TTL", sessionCacheDuration),
		SessionCleanup:     getEnvAsDuration("DASHBOARD_SESSION_CLEANUP", sessionCleanupInterval),
		AllowedOrigins:     getEnvAsList("DASHBOARD_ALLOWED_ORIGINS", defaultOrigins),
		CORSDebug:          getEnvAsBool("DASHBOARD_CORS_DEBUG", false),
		LogLevel:           getEnvWithDefault("DASHBOARD_LOG_LEVEL", "info"),
		LogFormat:          getEnvWithDefault("DASHBOARD_LOG_FORMAT", "json"),
		TracingEnabled:     getEnvAsBool("DASHBOARD_TRACING_ENABLED", false),
		TracingSampleRatio: 1.0,
		ReadTimeout:        time.Duration(getEnvAsInt("DASHBOARD_READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout:       time.Duration(getEnvAsInt("DASHBOARD_WRITE_TIMEOUT_SECONDS", 15)) * time.Second,
		IdleTimeout:        time.Duration(getEnvAsInt("DASHBOARD_IDLE_TIMEOUT_SECONDS", 60)) * time.Second,
		ShutdownTimeout:    30 * time.Second,
	}

	if raw := os.Getenv("DASHBOARD_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("DASHBOARD_SEED: %w", err)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}
	if raw := os.Getenv("DASHBOARD_TRACING_SAMPLE_RATIO"); raw != "" {
		ratio, err := strconv.ParseFloat(raw, 64)
		if err != nil || ratio < 0 || ratio > 1 {
			return Config{}, fmt.Errorf("DASHBOARD_TRACING_SAMPLE_RATIO must be within [0, 1], got %q", raw)
		}
		cfg.TracingSampleRatio = ratio
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("DASHBOARD_SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
