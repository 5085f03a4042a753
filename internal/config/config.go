package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Audit webhook: optional outbound delivery of activity log entries.
	AuditWebhookURL        string        `env:"AUDIT_WEBHOOK_URL"`
	AuditWebhookSecret     string        `env:"AUDIT_WEBHOOK_SECRET"`
	AuditWebhookTimeout    time.Duration `env:"AUDIT_WEBHOOK_TIMEOUT" envDefault:"5s"`
	AuditWebhookMaxRetries int           `env:"AUDIT_WEBHOOK_MAX_RETRIES" envDefault:"3"`
	AuditWebhookBaseDelay  time.Duration `env:"AUDIT_WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Broadcast Config
	DefaultAlertRadiusKm float64 `env:"DEFAULT_ALERT_RADIUS_KM" envDefault:"5"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig loads configuration from environment variables and an optional
// .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		AuditWebhookURL:        os.Getenv("AUDIT_WEBHOOK_URL"),
		AuditWebhookSecret:     os.Getenv("AUDIT_WEBHOOK_SECRET"),
		AuditWebhookTimeout:    getEnvAsDuration("AUDIT_WEBHOOK_TIMEOUT", 5*time.Second),
		AuditWebhookMaxRetries: getEnvAsInt("AUDIT_WEBHOOK_MAX_RETRIES", 3),
		AuditWebhookBaseDelay:  getEnvAsDuration("AUDIT_WEBHOOK_BASE_DELAY", time.Second),
		DefaultAlertRadiusKm:   getEnvAsFloat("DEFAULT_ALERT_RADIUS_KM", 5),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns an environment variable as float64 or a default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
