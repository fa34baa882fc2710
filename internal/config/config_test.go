package config

import (
	"testing"
	"time"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config
	cfg.SetDefaults()

	if cfg.API.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %q, want local development fallback", cfg.API.BaseURL)
	}
	if cfg.API.ImageBaseURL != "http://localhost:3000" {
		t.Errorf("ImageBaseURL = %q, want base URL fallback", cfg.API.ImageBaseURL)
	}
	if cfg.API.Timeout != "10s" {
		t.Errorf("Timeout = %q, want 10s", cfg.API.Timeout)
	}
	if cfg.API.LoginPath != "/login" {
		t.Errorf("LoginPath = %q, want /login", cfg.API.LoginPath)
	}
	if !cfg.API.CompensateMissingRoutes {
		t.Error("CompensateMissingRoutes should default to true")
	}
	if cfg.State.Backend != "file" {
		t.Errorf("State.Backend = %q, want file", cfg.State.Backend)
	}
	if cfg.State.Dir == "" {
		t.Error("State.Dir default is empty")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestConfig_SetDefaults_PreservesExistingValues(t *testing.T) {
	t.Parallel()

	cfg := Config{
		API: APIConfig{
			BaseURL:      "https://mall.example.com",
			ImageBaseURL: "https://img.example.com",
			Timeout:      "30s",
			LoginPath:    "/signin",
		},
		State: StateConfig{Dir: "/var/lib/mallctl", Backend: "sqlite"},
		Log:   LogConfig{Level: "debug"},
	}

	cfg.SetDefaults()

	if cfg.API.ImageBaseURL != "https://img.example.com" {
		t.Errorf("ImageBaseURL = %q, want preserved", cfg.API.ImageBaseURL)
	}
	if cfg.API.Timeout != "30s" {
		t.Errorf("Timeout = %q, want preserved", cfg.API.Timeout)
	}
	if cfg.State.Backend != "sqlite" {
		t.Errorf("State.Backend = %q, want preserved", cfg.State.Backend)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want preserved", cfg.Log.Level)
	}
}

func TestConfig_RequestTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout string
		want    time.Duration
	}{
		{"valid", "30s", 30 * time.Second},
		{"garbage falls back", "soon", 10 * time.Second},
		{"empty falls back", "", 10 * time.Second},
		{"negative falls back", "-5s", 10 * time.Second},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Config{API: APIConfig{Timeout: tt.timeout}}
			if got := cfg.RequestTimeout(); got != tt.want {
				t.Errorf("RequestTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
