// RFID Relay - Exhibit Presence Notification Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rfidrelay

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/rfidrelay/internal/exhibit"
)

// Config holds all application configuration.
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server   ServerConfig    `koanf:"server"`
	Security SecurityConfig  `koanf:"security"`
	Debug    DebugConfig     `koanf:"debug"`
	Logging  LoggingConfig   `koanf:"logging"`
	Exhibits []ExhibitConfig `koanf:"exhibits"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds webhook authentication, CORS and rate limit settings
type SecurityConfig struct {
	// WebhookSecret enables bearer token checking on the webhook when non-empty.
	WebhookSecret     string        `koanf:"webhook_secret"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// WebhookAuthEnabled reports whether the webhook requires a bearer token.
func (s SecurityConfig) WebhookAuthEnabled() bool {
	return s.WebhookSecret != ""
}

// DebugConfig controls operator tooling.
type DebugConfig struct {
	BroadcastEnabled bool `koanf:"broadcast_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// ExhibitConfig is one catalog entry from the config file.
type ExhibitConfig struct {
	ID        string `koanf:"id"`
	Title     string `koanf:"title"`
	ReadPoint string `koanf:"read_point"`
}

// ExhibitCatalog returns the configured exhibits, or the built-in catalog
// when none are configured.
func (c *Config) ExhibitCatalog() []exhibit.Exhibit {
	if len(c.Exhibits) == 0 {
		return DefaultExhibits()
	}
	out := make([]exhibit.Exhibit, len(c.Exhibits))
	for i, e := range c.Exhibits {
		out[i] = exhibit.Exhibit{ID: e.ID, Title: e.Title, ReadPoint: e.ReadPoint}
	}
	return out
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
