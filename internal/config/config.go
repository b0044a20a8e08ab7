package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string
	PackDir      string
	PackName     string // empty selects the built-in pack

	PlayerSpecies string
	PlayerLevel   int

	Seed    uint64
	HasSeed bool

	LogFile  string
	LogLevel slog.Level
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		PackDir:       getenv("PACK_DIR", ".packs"),
		PackName:      os.Getenv("PACK_NAME"),
		PlayerSpecies: getenv("PLAYER_SPECIES", "Charmander"),
		PlayerLevel:   5,
		LogFile:       os.Getenv("LOG_FILE"),
		LogLevel:      slog.LevelInfo,
	}

	if v := os.Getenv("PLAYER_LEVEL"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil || level < 1 {
			return nil, fmt.Errorf("PLAYER_LEVEL must be a positive integer, got %q", v)
		}
		cfg.PlayerLevel = level
	}

	if v := os.Getenv("BATTLE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("BATTLE_SEED must be an unsigned integer: %w", err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

// RequireGeminiKey fails when no API key is configured.
func (c *Config) RequireGeminiKey() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
