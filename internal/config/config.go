package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Tracker TrackerConfig
	Game    GameConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token     string
	AppID     string
	GuildID   string // Optional: for guild-specific commands
	PublicKey string // Optional: enables the HTTP interactions endpoint
	Port      string // Port for the interactions endpoint
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// TrackerConfig holds tracker.gg API configuration
type TrackerConfig struct {
	BaseURL string
}

// GameConfig holds game session configuration
type GameConfig struct {
	SessionTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:     os.Getenv("DISCORD_TOKEN"),
			AppID:     os.Getenv("DISCORD_APP_ID"),
			GuildID:   os.Getenv("DISCORD_GUILD_ID"),
			PublicKey: os.Getenv("DISCORD_PUBLIC_KEY"),
			Port:      getEnvOrDefault("PORT", "3000"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Tracker: TrackerConfig{
			BaseURL: getEnvOrDefault("TRACKER_API_URL", "https://api.tracker.gg/api/v2/r6siege/standard"),
		},
		Game: GameConfig{
			SessionTTL: getEnvAsDurationOrDefault("GAME_SESSION_TTL", 15*time.Minute),
		},
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
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

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
