// Package config reads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/zeusync/scripthost/internal/core/content"
	"github.com/zeusync/scripthost/internal/core/observability/log"
)

type Config struct {
	LogLevel string `env:"SCRIPTHOST_LOG_LEVEL" envDefault:"info"`

	// ContentFiles is a comma separated list of YAML content documents.
	ContentFiles []string `env:"SCRIPTHOST_CONTENT_FILES" envSeparator:","`
	ContentDB    string   `env:"SCRIPTHOST_CONTENT_DB"`

	RegionWarnings bool          `env:"SCRIPTHOST_REGION_WARNINGS" envDefault:"true"`
	LoadTimeout    time.Duration `env:"SCRIPTHOST_LOAD_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment and checks the values that have a closed set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	if cfg.LoadTimeout <= 0 {
		return Config{}, fmt.Errorf("load timeout must be positive, got %s", cfg.LoadTimeout)
	}
	return cfg, nil
}

func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}

func (c Config) Content() content.Source {
	return content.Source{Files: c.ContentFiles, Store: c.ContentDB}
}
