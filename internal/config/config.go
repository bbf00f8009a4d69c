package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/hangman/internal/words"
)

// Config holds all configuration for the hangman CLI.
type Config struct {
	WordsFile      string      `yaml:"words_file"`      // empty: embedded corpus
	DBPath         string      `yaml:"db_path"`         // empty: results kept in memory only
	HighScoresFile string      `yaml:"highscores_file"` // "name score" lines
	LogLevel       string      `yaml:"log_level"`
	DailySalt      string      `yaml:"daily_salt"`
	PlayerName     string      `yaml:"player_name"`
	Tiers          TiersConfig `yaml:"tiers"`
}

// TiersConfig overrides the word-length interval of each tier.
type TiersConfig struct {
	Easy   words.Bounds `yaml:"easy"`
	Medium words.Bounds `yaml:"medium"`
	Hard   words.Bounds `yaml:"hard"`
}

// Default returns the built-in configuration.
func Default() *Config {
	p := words.DefaultPolicy()
	return &Config{
		HighScoresFile: "highscores.txt",
		LogLevel:       "info",
		DailySalt:      "hangman-daily",
		Tiers: TiersConfig{
			Easy:   p[words.Easy],
			Medium: p[words.Medium],
			Hard:   p[words.Hard],
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (or $HANGMAN_CONFIG when path is empty), then environment variables.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv("HANGMAN_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.WordsFile = getEnv("WORDS_FILE", c.WordsFile)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.HighScoresFile = getEnv("HIGHSCORES_FILE", c.HighScoresFile)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.DailySalt = getEnv("DAILY_SALT", c.DailySalt)
	c.PlayerName = getEnv("PLAYER_NAME", c.PlayerName)
}

// Policy returns the tier bounds as a words.Policy.
func (c *Config) Policy() words.Policy {
	return words.Policy{
		words.Easy:   c.Tiers.Easy,
		words.Medium: c.Tiers.Medium,
		words.Hard:   c.Tiers.Hard,
	}
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if strings.TrimSpace(c.HighScoresFile) == "" {
		return errors.New("highscores file path is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
