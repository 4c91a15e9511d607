// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment variables
// and an optional config file.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//
//  1. Upstream:
//     - SpaceTrack: Space-Track.org catalog provider (credentials, base URL,
//       timeouts, throttling)
//
//  2. Serving:
//     - Server: HTTP server configuration (port, host, timeout)
//     - API: Catalog fetch limits
//     - Security: CORS origins and inbound rate limiting
//
//  3. Data Freshness:
//     - Cache: TTL cache for enriched catalog snapshots
//     - Refresh: Optional background catalog refresh
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example - Load configuration from environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.SpaceTrack.BaseURL, cfg.Server.Port, etc. are now populated
//
// Validation:
// Load() validates the configuration and returns an error if values are
// malformed (invalid URL, out-of-range port, unknown log level). Space-Track
// credentials are intentionally NOT required at startup: the service boots
// without them and fails at the first upstream login instead, which keeps
// health checks and cached responses available.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from
// multiple goroutines.
type Config struct {
	SpaceTrack SpaceTrackConfig `koanf:"spacetrack"`
	Server     ServerConfig     `koanf:"server"`
	API        APIConfig        `koanf:"api"`
	Cache      CacheConfig      `koanf:"cache"`
	Refresh    RefreshConfig    `koanf:"refresh"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// SpaceTrackConfig holds Space-Track.org connection settings.
// Space-Track is the authoritative catalog source operated by the US Space
// Force; access requires a free account (https://www.space-track.org).
//
// Environment Variables:
//   - SPACE_TRACK_USERNAME: Account email used as the login identity
//   - SPACE_TRACK_PASSWORD: Account password
//   - SPACE_TRACK_BASE_URL: Provider base URL (default: https://www.space-track.org)
//   - SPACE_TRACK_TIMEOUT: Per-request timeout (default: 30s)
//   - SPACE_TRACK_MAX_RETRIES: Retry budget for HTTP 429 responses (default: 3)
//   - SPACE_TRACK_RETRY_BASE_DELAY: Base delay for 429 backoff (default: 500ms)
//   - SPACE_TRACK_RATE_LIMIT: Outbound requests per second (default: 0.5)
//
// The retry budget applies ONLY to provider throttling (HTTP 429). Login
// failures and other fetch failures are never retried; callers decide how to
// react. Space-Track enforces roughly 30 requests per minute per account, so
// the default limiter stays well inside that allowance.
type SpaceTrackConfig struct {
	BaseURL        string        `koanf:"base_url"`
	Username       string        `koanf:"username"`
	Password       string        `koanf:"password"`
	Timeout        time.Duration `koanf:"timeout"`
	MaxRetries     int           `koanf:"max_retries"`      // HTTP 429 retries only
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"` // Base delay for 429 backoff
	RateLimit      float64       `koanf:"rate_limit"`       // Outbound requests per second
	RateLimitBurst int           `koanf:"rate_limit_burst"` // Limiter burst size
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HOST / HTTP_HOST: Bind address (default: 0.0.0.0)
//   - PORT / HTTP_PORT: Listen port (default: 5000)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns the host:port listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds catalog query limits.
//
// Environment Variables:
//   - FETCH_LIMIT: Default number of catalog records per fetch (default: 10000)
//   - MAX_FETCH_LIMIT: Upper bound for the ?limit query parameter (default: 10000)
type APIConfig struct {
	FetchLimit    int `koanf:"fetch_limit"`
	MaxFetchLimit int `koanf:"max_fetch_limit"`
}

// CacheConfig holds TTL cache settings for enriched catalog snapshots.
// Caching shields the provider's rate limits from bursty dashboard traffic.
// Disabling it makes every request perform a full upstream fetch.
//
// Environment Variables:
//   - CACHE_ENABLED: Master toggle (default: true)
//   - CACHE_TTL: Snapshot lifetime (default: 2m)
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
}

// RefreshConfig holds background refresh settings. When enabled, a supervised
// worker re-fetches and re-enriches the catalog on a fixed interval, keeping
// the cache warm and pushing update notifications to websocket clients.
//
// Environment Variables:
//   - REFRESH_ENABLED: Master toggle (default: false)
//   - REFRESH_INTERVAL: Time between refresh runs (default: 10m)
type RefreshConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
}

// SecurityConfig holds CORS and inbound rate limiting settings.
// The API surface is public and read-only; there is no inbound authentication.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests per window per client IP (default: 100)
//   - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
//   - DISABLE_RATE_LIMIT: Disable inbound rate limiting (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line in log output (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from environment variables and an optional config
// file. Configuration is loaded in the following order (later sources override
// earlier ones):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}
