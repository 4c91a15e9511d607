// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns a fully valid config for mutation in tests
func validConfig() *Config {
	cfg := defaultConfig()
	cfg.SpaceTrack.Username = "observer@example.com"
	cfg.SpaceTrack.Password = "orbital-secret"
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	// Defaults alone must validate: credentials are optional at startup
	if err := defaultConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults returned error: %v", err)
	}
}

func TestValidateSpaceTrack(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config passes",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.SpaceTrack.BaseURL = "" },
			wantErr: "SPACE_TRACK_BASE_URL is required",
		},
		{
			name:    "base URL with wrong scheme",
			mutate:  func(c *Config) { c.SpaceTrack.BaseURL = "ftp://www.space-track.org" },
			wantErr: "SPACE_TRACK_BASE_URL",
		},
		{
			name:    "base URL with path",
			mutate:  func(c *Config) { c.SpaceTrack.BaseURL = "https://www.space-track.org/basicspacedata" },
			wantErr: "SPACE_TRACK_BASE_URL",
		},
		{
			name:    "username without password",
			mutate:  func(c *Config) { c.SpaceTrack.Password = "" },
			wantErr: "SPACE_TRACK_PASSWORD is required",
		},
		{
			name:    "password without username",
			mutate:  func(c *Config) { c.SpaceTrack.Username = "" },
			wantErr: "SPACE_TRACK_USERNAME is required",
		},
		{
			name:    "both credentials empty is allowed",
			mutate:  func(c *Config) { c.SpaceTrack.Username = ""; c.SpaceTrack.Password = "" },
			wantErr: "",
		},
		{
			name:    "timeout too short",
			mutate:  func(c *Config) { c.SpaceTrack.Timeout = 100 * time.Millisecond },
			wantErr: "SPACE_TRACK_TIMEOUT",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.SpaceTrack.MaxRetries = -1 },
			wantErr: "SPACE_TRACK_MAX_RETRIES",
		},
		{
			name:    "zero retries is allowed",
			mutate:  func(c *Config) { c.SpaceTrack.MaxRetries = 0 },
			wantErr: "",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.SpaceTrack.RateLimit = 0 },
			wantErr: "SPACE_TRACK_RATE_LIMIT",
		},
		{
			name:    "zero burst",
			mutate:  func(c *Config) { c.SpaceTrack.RateLimitBurst = 0 },
			wantErr: "SPACE_TRACK_RATE_LIMIT_BURST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "PORT must be between 1 and 65535",
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "PORT must be between 1 and 65535",
		},
		{
			name:    "timeout too short",
			mutate:  func(c *Config) { c.Server.Timeout = 10 * time.Millisecond },
			wantErr: "HTTP_TIMEOUT must be at least 1s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateAPI(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "fetch limit zero",
			mutate:  func(c *Config) { c.API.FetchLimit = 0 },
			wantErr: "FETCH_LIMIT",
		},
		{
			name:    "fetch limit above max",
			mutate:  func(c *Config) { c.API.FetchLimit = 20000 },
			wantErr: "FETCH_LIMIT",
		},
		{
			name:    "max fetch limit zero",
			mutate:  func(c *Config) { c.API.MaxFetchLimit = 0 },
			wantErr: "MAX_FETCH_LIMIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateCacheAndRefresh(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "short cache TTL rejected when enabled",
			mutate:  func(c *Config) { c.Cache.TTL = 100 * time.Millisecond },
			wantErr: "CACHE_TTL must be at least 1s",
		},
		{
			name:    "short cache TTL ignored when disabled",
			mutate:  func(c *Config) { c.Cache.Enabled = false; c.Cache.TTL = 0 },
			wantErr: "",
		},
		{
			name:    "short refresh interval rejected when enabled",
			mutate:  func(c *Config) { c.Refresh.Enabled = true; c.Refresh.Interval = 10 * time.Second },
			wantErr: "REFRESH_INTERVAL must be at least 1m",
		},
		{
			name:    "short refresh interval ignored when disabled",
			mutate:  func(c *Config) { c.Refresh.Interval = 0 },
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateSecurity(t *testing.T) {
	t.Run("wildcard origin accepted", func(t *testing.T) {
		cfg := validConfig()
		cfg.Security.CORSOrigins = []string{"*"}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("explicit origins validated", func(t *testing.T) {
		cfg := validConfig()
		cfg.Security.CORSOrigins = []string{"not a url"}
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "CORS_ORIGINS") {
			t.Errorf("Validate() error = %v, want CORS_ORIGINS error", err)
		}
	})

	t.Run("rate limits skipped when disabled", func(t *testing.T) {
		cfg := validConfig()
		cfg.Security.RateLimitDisabled = true
		cfg.Security.RateLimitReqs = 0
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("zero requests rejected when enabled", func(t *testing.T) {
		cfg := validConfig()
		cfg.Security.RateLimitReqs = 0
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "RATE_LIMIT_REQUESTS") {
			t.Errorf("Validate() error = %v, want RATE_LIMIT_REQUESTS error", err)
		}
	})
}

func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"valid info json", "info", "json", false},
		{"valid debug console", "debug", "console", false},
		{"empty format allowed", "warn", "", false},
		{"unknown level", "verbose", "json", true},
		{"unknown format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 5000}
	if got := s.Addr(); got != "127.0.0.1:5000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:5000", got)
	}
}
