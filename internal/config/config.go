// Package config loads the optional TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ryo246912/coderabbit-github-parser/internal/logging"
)

const (
	appName          = "coderabbit-github-parser"
	DefaultFormat    = "table"
	DefaultReviewDir = "review-comments"
)

// Template holds defaults for install:template
type Template struct {
	Scope    string `toml:"scope"`
	Filename string `toml:"filename"`
	Target   string `toml:"target"`
}

// Config holds the cgp configuration.
// Command-line flags take precedence over every field.
type Config struct {
	Repo      string   `toml:"repo"`
	LogLevel  string   `toml:"log_level"`
	Format    string   `toml:"format"`
	ReviewDir string   `toml:"review_dir"`
	Template  Template `toml:"template"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		LogLevel:  logging.DefaultLevel,
		Format:    DefaultFormat,
		ReviewDir: DefaultReviewDir,
	}
}

// Load reads configuration from path.
// If the file doesn't exist, returns the default config.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Keys present but left empty fall back to defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = logging.DefaultLevel
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.ReviewDir == "" {
		cfg.ReviewDir = DefaultReviewDir
	}
	return cfg, nil
}

// DefaultPath returns the default config file path
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appName, "config.toml")
}
