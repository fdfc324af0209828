package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Vocabulary sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Vocabulary      VocabularyConfig
	BackgroundImage string
	Database        DatabaseConfig
	Bot             BotConfig
}

// VocabularyConfig selects where the word list comes from
type VocabularyConfig struct {
	Source string
	File   string
	Sheet  string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// BotConfig holds Telegram front end settings
type BotConfig struct {
	Token        string
	AllowedUsers []int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Vocabulary: VocabularyConfig{
			Source: getEnv("VOCAB_SOURCE", SourceFile),
			File:   getEnv("VOCAB_FILE", "languages.xlsx"),
			Sheet:  os.Getenv("VOCAB_SHEET"),
		},
		BackgroundImage: getEnv("BACKGROUND_IMAGE", "at.jpg"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "ltranslate"),
			User:     getEnv("DB_USER", "ltranslate"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Bot: BotConfig{
			Token: os.Getenv("BOT_TOKEN"),
		},
	}

	allowed, err := parseUserIDs(os.Getenv("BOT_ALLOWED_USERS"))
	if err != nil {
		return nil, fmt.Errorf("BOT_ALLOWED_USERS: %w", err)
	}
	cfg.Bot.AllowedUsers = allowed

	// Validate required fields
	switch cfg.Vocabulary.Source {
	case SourceFile:
		if cfg.Vocabulary.File == "" {
			return nil, fmt.Errorf("VOCAB_FILE is required")
		}
	case SourcePostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for VOCAB_SOURCE=%s", SourcePostgres)
		}
	default:
		return nil, fmt.Errorf("VOCAB_SOURCE must be %q or %q, got %q", SourceFile, SourcePostgres, cfg.Vocabulary.Source)
	}

	return cfg, nil
}

// LoadBot reads configuration and additionally requires the bot token
func LoadBot() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg.Bot.Token == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseUserIDs(value string) ([]int64, error) {
	var ids []int64
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q: %w", field, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
