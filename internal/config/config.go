package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the bot process.
// Everything comes from environment variables; a .env file in the working
// directory is loaded first if present, but real environment always wins.
// Secrets (BOT_TOKEN, DATABASE_URL) have no defaults and must be set.
type Config struct {
	// Telegram bot token.
	BotToken string `env:"BOT_TOKEN"`

	// AdminIDsStr is a comma-separated list of Telegram user IDs.
	AdminIDsStr string `env:"ADMIN_IDS"`

	// AdminIDs is the parsed form of AdminIDsStr, filled in by Load.
	AdminIDs []int64

	// Database configuration (PostgreSQL)
	Database DatabaseConfig

	// PollTimeout is the Telegram long-poll timeout.
	PollTimeout time.Duration `env:"POLL_TIMEOUT" env-default:"10s"`

	// ReminderInterval is how often the reminder dispatcher checks for due rows.
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL" env-default:"30s"`
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	URL            string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" env-default:"migrations"`
	MaxConnections int32  `env:"PGMAX_CONNECTIONS" env-default:"25"`
}

// Load reads configuration from the environment, after loading a .env file
// if one exists in the working directory.
func Load() (*Config, error) {
	// Best effort: a missing .env is the normal case in containers.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.parseComplexFields(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseComplexFields handles fields that need post-processing after loading.
func (c *Config) parseComplexFields() error {
	ids, err := parseAdminIDs(c.AdminIDsStr)
	if err != nil {
		return err
	}
	c.AdminIDs = ids
	return nil
}

func (c *Config) validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is not set")
	}
	if len(c.AdminIDs) == 0 {
		return fmt.Errorf("ADMIN_IDS is not set")
	}
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	return nil
}

// IsAdmin reports whether the given Telegram user ID is in the admin list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// parseAdminIDs parses a comma-separated list of Telegram user IDs.
// Empty entries are skipped; a malformed entry is an error.
func parseAdminIDs(value string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
