// Package config loads the hwlab configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the defaults the CLI falls back to when a flag is not given.
type Config struct {
	LogLevel      string  `env:"HWLAB_LOG_LEVEL"       envDefault:"info"`
	Format        string  `env:"HWLAB_FORMAT"          envDefault:"text"`
	DefaultLoad   float64 `env:"HWLAB_DEFAULT_LOAD"    envDefault:"1.0"`
	StorageKind   string  `env:"HWLAB_STORAGE_KIND"    envDefault:"SSD"`
	ProbePath     string  `env:"HWLAB_PROBE_PATH"      envDefault:"/"`
	MemoryFreqMHz int     `env:"HWLAB_MEMORY_FREQ_MHZ" envDefault:"3200"`
}

var (
	validFormats   = []string{"text", "yaml", "goseth"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Load reads the given dotenv files, if they exist, and then parses the
// environment. Variables already set in the environment win over the files.
func Load(dotenvFiles ...string) (Config, error) {
	for _, f := range dotenvFiles {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the values that the CLI cannot recover from.
func (c Config) Validate() error {
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}

	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}

	if !(c.DefaultLoad >= 0 && c.DefaultLoad <= 1) {
		return fmt.Errorf("config: default load %v must be between 0 and 1",
			c.DefaultLoad)
	}

	if c.MemoryFreqMHz <= 0 {
		return fmt.Errorf("config: memory frequency %d must be positive",
			c.MemoryFreqMHz)
	}

	return nil
}
