package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{API: APIConfig{BaseURL: "https://mall.example.com"}}
	cfg.SetDefaults()
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v, want valid", err)
	}
}

func TestConfig_Validate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			"missing base URL",
			func(c *Config) { c.API.BaseURL = "" },
			"required",
		},
		{
			"malformed base URL",
			func(c *Config) { c.API.BaseURL = "not a url" },
			"valid URL",
		},
		{
			"garbage timeout",
			func(c *Config) { c.API.Timeout = "whenever" },
			"duration",
		},
		{
			"negative timeout",
			func(c *Config) { c.API.Timeout = "-3s" },
			"duration",
		},
		{
			"unknown state backend",
			func(c *Config) { c.State.Backend = "redis" },
			"one of",
		},
		{
			"unknown log level",
			func(c *Config) { c.Log.Level = "loud" },
			"one of",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want failure")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}
