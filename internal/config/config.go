package config

import (
	"net/url"
	"os"
	"strconv"

	zerr "github.com/KirkDiggler/zodiac-skill-engine/internal/errors"
)

// Config holds all configuration for the engine host
type Config struct {
	Engine EngineConfig
	Redis  RedisConfig
	Log    LogConfig

	// OTelEnabled turns on OTLP trace export
	OTelEnabled bool
}

// EngineConfig holds the rules knobs
type EngineConfig struct {
	BoardLength      int
	MaxEffectsPerUse int
	ZodiacTablesPath string // empty uses the embedded tables
	RandomSeed       uint64 // 0 seeds from the clock
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // empty keeps cooldowns and the journal in memory
}

// Enabled reports whether a Redis URL was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string
	Development bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Engine: EngineConfig{
			BoardLength:      getEnvAsIntOrDefault("BOARD_LENGTH", 40),
			MaxEffectsPerUse: getEnvAsIntOrDefault("MAX_EFFECTS_PER_USE", 64),
			ZodiacTablesPath: os.Getenv("ZODIAC_TABLES_PATH"),
			RandomSeed:       getEnvAsUintOrDefault("RANDOM_SEED", 0),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Log: LogConfig{
			Level:       getEnvOrDefault("LOG_LEVEL", "info"),
			Development: getEnvAsBoolOrDefault("LOG_DEVELOPMENT", false),
		},
		OTelEnabled: getEnvAsBoolOrDefault("OTEL_ENABLED", false),
	}

	if cfg.Engine.BoardLength < 1 {
		return nil, zerr.Validationf("BOARD_LENGTH must be positive, got %d", cfg.Engine.BoardLength)
	}
	if cfg.Engine.MaxEffectsPerUse < 1 {
		return nil, zerr.Validationf("MAX_EFFECTS_PER_USE must be positive, got %d", cfg.Engine.MaxEffectsPerUse)
	}
	if cfg.Redis.Enabled() {
		if _, err := url.Parse(cfg.Redis.URL); err != nil {
			return nil, zerr.WrapWithCode(err, zerr.CodeValidation, "REDIS_URL is not a valid url")
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsUintOrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
