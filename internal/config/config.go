package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/hangman-go/internal/model"
)

// DefaultEnvFile is read for HANGMAN_* variables when present
const DefaultEnvFile = ".env"

// Config holds hangman configuration. Values are layered: defaults, then the
// YAML file, then .env, then the environment, then command line flags.
type Config struct {
	// Dictionary is a word list path; empty uses the built-in list
	Dictionary string `yaml:"dictionary"`
	MaxGuesses int    `yaml:"max_guesses"`
	// Seed makes every random choice reproducible; 0 uses crypto randomness
	Seed     uint64 `yaml:"seed"`
	Strategy string `yaml:"strategy"`
	Output   string `yaml:"output"`

	Log     LogConfig     `yaml:"log"`
	Console ConsoleConfig `yaml:"console"`
	Bench   BenchConfig   `yaml:"bench"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// ConsoleConfig controls interactive players
type ConsoleConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = keep asking
}

// BenchConfig controls the benchmark runner
type BenchConfig struct {
	Parallelism int `yaml:"parallelism"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		MaxGuesses: model.DefaultMaxGuesses,
		Strategy:   model.DefaultBotStrategy,
		Output:     "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Bench: BenchConfig{
			Parallelism: 4,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the env files and the environment. With no env files
// given, DefaultEnvFile is used if it exists.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles sets variables from .env files without overriding ones
// already in the environment
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		files = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from HANGMAN_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("HANGMAN_DICTIONARY"); v != "" {
		c.Dictionary = v
	}
	if v := os.Getenv("HANGMAN_MAX_GUESSES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HANGMAN_MAX_GUESSES: %w", err)
		}
		c.MaxGuesses = n
	}
	if v := os.Getenv("HANGMAN_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid HANGMAN_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := os.Getenv("HANGMAN_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv("HANGMAN_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("HANGMAN_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("HANGMAN_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	return nil
}

// Validate checks that every field holds a usable value
func (c *Config) Validate() error {
	var errs []error
	if c.MaxGuesses < 1 {
		errs = append(errs, fmt.Errorf("max_guesses must be at least 1, got %d", c.MaxGuesses))
	}
	if !model.IsValidBotStrategy(c.Strategy) {
		errs = append(errs, fmt.Errorf("unknown strategy %q", c.Strategy))
	}
	if c.Output != "text" && c.Output != "json" {
		errs = append(errs, fmt.Errorf("output must be text or json, got %q", c.Output))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Log.Format))
	}
	if c.Console.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("console.max_attempts must not be negative"))
	}
	if c.Bench.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("bench.parallelism must be at least 1, got %d", c.Bench.Parallelism))
	}
	return errors.Join(errs...)
}

// SlogLevel parses the configured log level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return level, nil
}
