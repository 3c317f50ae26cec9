// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv unsets every variable the loader reads and restores them when
// the test ends.
func isolateEnv(t *testing.T) {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for k := range envMappings {
		keys = append(keys, strings.ToUpper(k))
	}
	for _, key := range keys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		}
		os.Unsetenv(key)
	}
}

// writeConfigFile writes content to a temp config.yaml and points CONFIG_PATH at it.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Security.WebhookAuthEnabled() {
		t.Error("webhook auth should be disabled by default")
	}
	if cfg.Security.RateLimitReqs != 30 || cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d per %v, want 30 per 1m", cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if !cfg.Debug.BroadcastEnabled {
		t.Error("debug broadcast should be enabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if len(cfg.Exhibits) != 0 {
		t.Errorf("Exhibits = %v, want none", cfg.Exhibits)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name mapping
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PORT", "server.port"},
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"HTTP_TIMEOUT", "server.timeout"},
		{"STARK_SHARED_SECRET", "security.webhook_secret"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"RATE_LIMIT_WINDOW", "security.rate_limit_window"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DEBUG_BROADCAST_ENABLED", "debug.broadcast_enabled"},
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},
		{"LOG_CALLER", "logging.caller"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	isolateEnv(t)

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		path := writeConfigFile(t, "server:\n  port: 4000\n")
		if result := findConfigFile(); result != path {
			t.Errorf("findConfigFile() = %q, want %q", result, path)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		result := findConfigFile()
		for _, p := range DefaultConfigPaths {
			if result == p {
				return
			}
		}
		if result != "" {
			t.Errorf("findConfigFile() = %q, want empty or a default path", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	t.Setenv("PORT", "8080")
	t.Setenv("HTTP_TIMEOUT", "45s")
	t.Setenv("STARK_SHARED_SECRET", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://kiosk.example.com")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("DEBUG_BROADCAST_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 45*time.Second {
		t.Errorf("Server.Timeout = %v, want 45s", cfg.Server.Timeout)
	}
	if cfg.Security.WebhookSecret != "s3cret" || !cfg.Security.WebhookAuthEnabled() {
		t.Errorf("WebhookSecret = %q, want s3cret", cfg.Security.WebhookSecret)
	}
	want := []string{"https://app.example.com", "https://kiosk.example.com"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("RateLimitDisabled should be true")
	}
	if cfg.Debug.BroadcastEnabled {
		t.Error("Debug.BroadcastEnabled should be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if got := len(cfg.ExhibitCatalog()); got != len(DefaultExhibits()) {
		t.Errorf("ExhibitCatalog() has %d entries, want built-in %d", got, len(DefaultExhibits()))
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	isolateEnv(t)
	writeConfigFile(t, `
server:
  port: 8888
  host: "127.0.0.1"

security:
  cors_origins:
    - "https://museum.example.org"

logging:
  level: "warn"

exhibits:
  - id: ex_lobby
    title: Lobby
    read_point: Main Lobby
  - id: ex_hall
    title: Great Hall
    read_point: Great Hall
`)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://museum.example.org" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}

	catalog := cfg.ExhibitCatalog()
	if len(catalog) != 2 {
		t.Fatalf("ExhibitCatalog() = %v, want 2 configured exhibits", catalog)
	}
	if catalog[0].ID != "ex_lobby" || catalog[0].ReadPoint != "Main Lobby" {
		t.Errorf("catalog[0] = %+v", catalog[0])
	}

	// Defaults are still applied for unset values
	if cfg.Security.RateLimitReqs != 30 {
		t.Errorf("RateLimitReqs = %d, want 30 (default)", cfg.Security.RateLimitReqs)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolateEnv(t)
	writeConfigFile(t, "server:\n  port: 8888\nlogging:\n  level: warn\n")
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

// TestLoadWithKoanfValidation tests that invalid configuration is rejected
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		file    string
		wantErr string
	}{
		{
			name:    "port out of range",
			env:     map[string]string{"PORT": "70000"},
			wantErr: "HTTP_PORT",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"LOG_LEVEL": "loud"},
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "rate limit too high",
			env:     map[string]string{"RATE_LIMIT_REQUESTS": "1000000"},
			wantErr: "RATE_LIMIT_REQUESTS",
		},
		{
			name:    "duplicate read point",
			file:    "exhibits:\n  - {id: a, title: A, read_point: Hall}\n  - {id: b, title: B, read_point: Hall}\n",
			wantErr: "duplicate exhibit read point",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			if tt.file != "" {
				writeConfigFile(t, tt.file)
			} else {
				t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
