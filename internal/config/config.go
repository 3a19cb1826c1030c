package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the pennystocks client.
type Config struct {
	Service Service `yaml:"service"`
	Display Display `yaml:"display"`
	Logging Logging `yaml:"logging"`
}

// Service locates the ranking service.
type Service struct {
	BaseURL string        `yaml:"base_url"`
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"` // 0 = wait indefinitely
}

// Display controls presentation.
type Display struct {
	Locale   string   `yaml:"locale"`
	Rotation []string `yaml:"rotation"`  // best-pick artwork, one per day in turn
	MaxWidth int      `yaml:"max_width"` // 0 = terminal width
}

// Logging configures the application logger. An empty File sends the TUI's
// log to a dated file in the temp dir.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Service: Service{
			BaseURL: "https://plankton-app-ht33g.ondigitalocean.app",
			Path:    "/penny-stocks",
		},
		Display: Display{
			Locale: "en-US",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load starts from Default, overlays the YAML file at path when path is
// non-empty, applies environment variable overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PENNYSTOCKS_BASE_URL"); v != "" {
		cfg.Service.BaseURL = v
	}
	if v := os.Getenv("PENNYSTOCKS_PATH"); v != "" {
		cfg.Service.Path = v
	}
	if v := os.Getenv("PENNYSTOCKS_LOCALE"); v != "" {
		cfg.Display.Locale = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}

// Validate reports configuration values the client cannot run with.
func (c *Config) Validate() error {
	if c.Service.BaseURL == "" {
		return errors.New("service.base_url is required")
	}
	u, err := url.Parse(c.Service.BaseURL)
	if err != nil {
		return fmt.Errorf("service.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("service.base_url: unsupported scheme %q", u.Scheme)
	}
	if c.Service.Timeout < 0 {
		return fmt.Errorf("service.timeout must not be negative, got %s", c.Service.Timeout)
	}
	if c.Display.MaxWidth < 0 {
		return fmt.Errorf("display.max_width must not be negative, got %d", c.Display.MaxWidth)
	}
	return nil
}
