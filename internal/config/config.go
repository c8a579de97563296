package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Analyzer modes selectable via ANALYZER_MODE.
const (
	AnalyzerModeRules  = "rules"
	AnalyzerModeCanned = "canned"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                 string
	HTTPAddr               string
	AnalyzerMode           string
	CacheEnabled           bool
	RedisAddr              string
	RedisPassword          string
	RedisDB                int
	CacheTTLSeconds        int
	HistorySize            int
	BatchConcurrency       int
	ShutdownTimeoutSeconds int
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		HTTPAddr:               getEnv("HTTP_ADDR", ":8080"),
		AnalyzerMode:           getEnv("ANALYZER_MODE", AnalyzerModeRules),
		CacheEnabled:           getEnvAsBool("CACHE_ENABLED", false),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          getEnv("REDIS_PASSWORD", ""),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		CacheTTLSeconds:        getEnvAsInt("CACHE_TTL_SECONDS", 300),
		HistorySize:            getEnvAsInt("HISTORY_SIZE", 50),
		BatchConcurrency:       getEnvAsInt("BATCH_CONCURRENCY", 8),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
