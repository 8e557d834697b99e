package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the simulator
type Config struct {
	Redis     RedisConfig
	Log       LogConfig
	Targeting TargetingConfig
}

// RedisConfig holds battle storage configuration
type RedisConfig struct {
	URL       string // Optional: in-memory storage when empty
	BattleTTL time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level   string
	Console bool
}

// TargetingConfig holds range resolution configuration
type TargetingConfig struct {
	// RandomSampling enables random enemy ranges
	RandomSampling bool
	// Seed fixes the random sequence; 0 seeds from the clock
	Seed int64
	// BatchLimit bounds concurrent resolutions in a batch
	BatchLimit int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	ttl, err := getEnvAsDurationOrDefault("BATTLE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Redis: RedisConfig{
			URL:       os.Getenv("REDIS_URL"),
			BattleTTL: ttl,
		},
		Log: LogConfig{
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
			Console: getEnvAsBoolOrDefault("LOG_CONSOLE", true),
		},
		Targeting: TargetingConfig{
			RandomSampling: getEnvAsBoolOrDefault("TARGETING_RANDOM_SAMPLING", false),
			Seed:           int64(getEnvAsIntOrDefault("TARGETING_SEED", 0)),
			BatchLimit:     getEnvAsIntOrDefault("BATCH_LIMIT", 4),
		},
	}

	if cfg.Targeting.BatchLimit < 1 {
		return nil, fmt.Errorf("BATCH_LIMIT must be positive, got %d", cfg.Targeting.BatchLimit)
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

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
