// internal/config/config.go
//
// Process configuration, read from the environment after an optional .env
// file has been loaded.
//
// Environment variables:
//   WORDMIX_WORDS_FILE=/path/to/pairs.txt   (empty: embedded list)
//   WORDMIX_LEVEL=easy|medium|hard          (default easy)
//   WORDMIX_MIN_WORD_SIZE=3
//   WORDMIX_MIN_PAIR_SIZE=6
//   WORDMIX_MAX_PAIR_SIZE=24
//   WORDMIX_DAILY=true                      (same pairs for everyone today)
//   WORDMIX_DAILY_SALT=secret
//   LOG_LEVEL=info
//   LOG_FILE=/path/to/wordmix.log           (empty: logs are discarded while
//                                            the terminal UI runs)

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordmix/internal/level"
	"github.com/robalobadob/wordmix/internal/words"
)

// Config holds all settings of the game process.
type Config struct {
	WordsFile   string      `env:"WORDMIX_WORDS_FILE"`
	Level       level.Level `env:"WORDMIX_LEVEL"         envDefault:"easy"`
	MinWordSize int         `env:"WORDMIX_MIN_WORD_SIZE" envDefault:"3"`
	MinPairSize int         `env:"WORDMIX_MIN_PAIR_SIZE" envDefault:"6"`
	MaxPairSize int         `env:"WORDMIX_MAX_PAIR_SIZE" envDefault:"24"`
	Daily       bool        `env:"WORDMIX_DAILY"`
	DailySalt   string      `env:"WORDMIX_DAILY_SALT"    envDefault:"wordmix"`
	LogLevel    string      `env:"LOG_LEVEL"             envDefault:"info"`
	LogFile     string      `env:"LOG_FILE"`
}

// Load reads .env files (if present) and parses the environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return Parse()
}

// Parse reads the configuration from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Limits returns the word validation bounds.
func (c Config) Limits() words.Limits {
	return words.Limits{
		MinWordSize: c.MinWordSize,
		MinPairSize: c.MinPairSize,
		MaxPairSize: c.MaxPairSize,
	}
}

func (c Config) validate() error {
	if c.MinWordSize < 1 {
		return fmt.Errorf("WORDMIX_MIN_WORD_SIZE must be positive, got %d", c.MinWordSize)
	}
	if c.MinPairSize > c.MaxPairSize {
		return fmt.Errorf("WORDMIX_MIN_PAIR_SIZE %d exceeds WORDMIX_MAX_PAIR_SIZE %d", c.MinPairSize, c.MaxPairSize)
	}
	return nil
}
