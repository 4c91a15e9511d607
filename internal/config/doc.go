// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package config provides centralized configuration management for Kessler.

This package handles loading, validation, and parsing of configuration for all
application components. Configuration is loaded in layers with Koanf v2: struct
defaults first, then an optional YAML config file, then environment variables.
Later layers override earlier ones.

# Configuration Structure

The package organizes configuration into logical groups:

  - SpaceTrackConfig: Space-Track.org provider settings (credentials, base URL,
    timeouts, 429 retry budget, outbound rate limiting)
  - ServerConfig: HTTP server settings (host, port, timeout)
  - APIConfig: Catalog fetch limits
  - CacheConfig: TTL cache for enriched catalog snapshots
  - RefreshConfig: Optional background catalog refresh
  - SecurityConfig: CORS origins and inbound rate limiting
  - LoggingConfig: Log level, format, caller reporting

# Environment Variables

Space-Track Provider (SpaceTrackConfig):
  - SPACE_TRACK_USERNAME: Account email (login identity)
  - SPACE_TRACK_PASSWORD: Account password
  - SPACE_TRACK_BASE_URL: Provider base URL (default: https://www.space-track.org)
  - SPACE_TRACK_TIMEOUT: Per-request timeout (default: 30s)
  - SPACE_TRACK_MAX_RETRIES: HTTP 429 retry budget (default: 3)
  - SPACE_TRACK_RATE_LIMIT: Outbound requests per second (default: 0.5)

HTTP Server (ServerConfig):
  - HOST: Bind address (default: 0.0.0.0)
  - PORT: Listen port (default: 5000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)

Catalog API (APIConfig):
  - FETCH_LIMIT: Default records per catalog fetch (default: 10000)
  - MAX_FETCH_LIMIT: Upper bound for ?limit (default: 10000)

Caching (CacheConfig):
  - CACHE_ENABLED: Enable snapshot cache (default: true)
  - CACHE_TTL: Snapshot lifetime (default: 2m)

Background Refresh (RefreshConfig):
  - REFRESH_ENABLED: Enable periodic refresh (default: false)
  - REFRESH_INTERVAL: Time between runs (default: 10m)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable inbound limiting (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage Example

	import "github.com/tomtom215/kessler/internal/config"

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Printf("Starting server on %s\n", cfg.Server.Addr())
	fmt.Printf("Catalog provider: %s\n", cfg.SpaceTrack.BaseURL)

# Validation

Load() validates numeric ranges (PORT 1-65535, FETCH_LIMIT within
MAX_FETCH_LIMIT), durations (CACHE_TTL >= 1s, REFRESH_INTERVAL >= 1m), URL
formats (SPACE_TRACK_BASE_URL, non-wildcard CORS origins), and enumerations
(LOG_LEVEL, LOG_FORMAT). Space-Track credentials are NOT required at startup;
a half-configured pair (username without password or the reverse) is rejected.

# Config File

An optional YAML file can hold any of the settings above under their nested
keys. The file is discovered at config.yaml, config.yml, or
/etc/kessler/config.yaml, or at the path named by CONFIG_PATH:

	spacetrack:
	  base_url: https://www.space-track.org
	  timeout: 30s
	server:
	  port: 5000
	cache:
	  enabled: true
	  ttl: 2m

# Thread Safety

The Config struct is immutable after Load() returns, making it safe for
concurrent access from multiple goroutines without synchronization.
*/
package config
