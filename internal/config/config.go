package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/fadedpez/basicstrategy/pkg/strategy"
)

// Storage backends for the answer history
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Environment
	Environment string // "development" or "production"
	LogLevel    string

	// Answer history storage
	StorageType string
	DataDir     string
	DatabaseURL string

	// Optional Elasticsearch mirror of the answer history
	ElasticsearchURL      string
	ElasticsearchUsername string
	ElasticsearchPassword string
	ElasticsearchIndex    string

	// HTTP API
	HTTPAddr string

	// Shoe
	NumDecks    int
	ShuffleSeed uint64
	HasSeed     bool

	// Discord configuration
	Token   string
	AppID   string
	GuildID string

	// Values from the rules file
	RulesFile     string
	Rules         strategy.Ruleset
	Retention     time.Duration
	PruneInterval time.Duration
}

// Load reads the configuration from environment variables and the rules file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &Config{
		Environment:           getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:              getEnvWithDefault("LOG_LEVEL", "info"),
		StorageType:           getEnvWithDefault("STORAGE_TYPE", StorageMemory),
		DataDir:               getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		ElasticsearchURL:      os.Getenv("ELASTICSEARCH_URL"),
		ElasticsearchUsername: os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticsearchPassword: os.Getenv("ELASTICSEARCH_PASSWORD"),
		ElasticsearchIndex:    getEnvWithDefault("ELASTICSEARCH_INDEX", "basicstrategy"),
		HTTPAddr:              getEnvWithDefault("HTTP_ADDR", ":8080"),
		Token:                 os.Getenv("DISCORD_TOKEN"),
		AppID:                 os.Getenv("DISCORD_APP_ID"),
		GuildID:               os.Getenv("DISCORD_GUILD_ID"),
		RulesFile:             getEnvWithDefault("RULES_FILE", "rules.hcl"),
	}

	cfg.NumDecks, err = strconv.Atoi(getEnvWithDefault("NUM_DECKS", "6"))
	if err != nil {
		return nil, fmt.Errorf("NUM_DECKS must be a number: %w", err)
	}

	if seed := os.Getenv("SHUFFLE_SEED"); seed != "" {
		cfg.ShuffleSeed, err = strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SHUFFLE_SEED must be an unsigned integer: %w", err)
		}
		cfg.HasSeed = true
	}

	rules, err := LoadRules(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyRules(rules); err != nil {
		return nil, err
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.StorageType == StorageSQLite {
		// Create data directory if it doesn't exist
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// validate checks if the configuration is usable
func (c *Config) validate() error {
	switch c.StorageType {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_TYPE %q", c.StorageType)
	}
	if c.NumDecks < 1 || c.NumDecks > 8 {
		return fmt.Errorf("NUM_DECKS must be between 1 and 8, got %d", c.NumDecks)
	}
	if c.Retention <= 0 {
		return fmt.Errorf("history retention must be positive")
	}
	if c.PruneInterval <= 0 {
		return fmt.Errorf("history prune interval must be positive")
	}
	return nil
}

// ValidateDiscord checks that the bot credentials are present
func (c *Config) ValidateDiscord() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}

// SQLitePath is where the sqlite answer history lives
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "basicstrategy.db")
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
