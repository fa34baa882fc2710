// Package config provides the mallctl configuration schema. Configuration
// comes from mallctl.yaml, environment variables (MALLCTL_ prefix), and
// CLI flags, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level configuration.
type Config struct {
	// API configures the backend connection.
	API APIConfig `yaml:"api" mapstructure:"api"`

	// State configures durable client-state storage.
	State StateConfig `yaml:"state" mapstructure:"state"`

	// Log configures logging output.
	Log LogConfig `yaml:"log" mapstructure:"log"`

	// Metrics configures the Prometheus registry.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// BaseURL is the backend origin (e.g., "https://mall.example.com").
	// Defaults to "http://localhost:3000" for local development.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// ImageBaseURL prefixes relative image paths when rendering. Defaults
	// to BaseURL.
	ImageBaseURL string `yaml:"image_base_url" mapstructure:"image_base_url" validate:"omitempty,url"`

	// Timeout is the global request timeout (e.g., "10s").
	// Defaults to "10s".
	Timeout string `yaml:"timeout" mapstructure:"timeout" validate:"omitempty,duration"`

	// LoginPath is the path of the login surface, used by the auth-failure
	// redirect. Defaults to "/login".
	LoginPath string `yaml:"login_path" mapstructure:"login_path"`

	// CompensateMissingRoutes controls whether write endpoints synthesize
	// success for routes the backend is known to be missing.
	// Defaults to true; disable once the backend ships those routes.
	CompensateMissingRoutes bool `yaml:"compensate_missing_routes" mapstructure:"compensate_missing_routes"`
}

// StateConfig configures durable client-state storage.
type StateConfig struct {
	// Dir is the directory holding persisted state.
	// Defaults to "~/.mallctl".
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Backend selects the storage backend: "file" (one JSON file per key)
	// or "sqlite" (a single database file). Defaults to "file".
	Backend string `yaml:"backend" mapstructure:"backend" validate:"omitempty,oneof=file sqlite"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level sets the minimum log level.
	// Valid values: "debug", "info", "warn", "error". Defaults to "info".
	Level string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

// MetricsConfig configures metrics collection.
type MetricsConfig struct {
	// Enabled turns the Prometheus registry on.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// SetDefaults applies default values for optional fields.
func (c *Config) SetDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:3000"
	}
	if c.API.ImageBaseURL == "" {
		c.API.ImageBaseURL = c.API.BaseURL
	}
	if c.API.Timeout == "" {
		c.API.Timeout = "10s"
	}
	if c.API.LoginPath == "" {
		c.API.LoginPath = "/login"
	}
	// viper.IsSet distinguishes "not set" (zero value) from "explicitly false".
	if !viper.IsSet("api.compensate_missing_routes") {
		c.API.CompensateMissingRoutes = true
	}

	if c.State.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.State.Dir = filepath.Join(home, ".mallctl")
		} else {
			c.State.Dir = ".mallctl"
		}
	}
	if c.State.Backend == "" {
		c.State.Backend = "file"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// RequestTimeout parses the API timeout, falling back to 10s on garbage.
// Validation catches garbage earlier; this keeps callers total.
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
