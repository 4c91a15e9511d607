// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateSpaceTrack(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateRefresh(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateSpaceTrack validates the Space-Track provider configuration.
// Credentials are deliberately not required here: a deployment without them
// still boots and serves /health, and the missing credentials surface as an
// authentication failure on the first catalog fetch.
func (c *Config) validateSpaceTrack() error {
	if err := c.validateSpaceTrackBaseURL(); err != nil {
		return err
	}
	if err := c.validateSpaceTrackCredentials(); err != nil {
		return err
	}
	return c.validateSpaceTrackLimits()
}

// validateSpaceTrackBaseURL validates the provider base URL
func (c *Config) validateSpaceTrackBaseURL() error {
	if c.SpaceTrack.BaseURL == "" {
		return fmt.Errorf("SPACE_TRACK_BASE_URL is required")
	}
	if err := validateHTTPURL(c.SpaceTrack.BaseURL, "SPACE_TRACK_BASE_URL"); err != nil {
		return fmt.Errorf("SPACE_TRACK_BASE_URL is invalid: %w", err)
	}
	return nil
}

// validateSpaceTrackCredentials rejects half-configured credentials.
// Either both username and password are set, or neither is.
func (c *Config) validateSpaceTrackCredentials() error {
	if c.SpaceTrack.Username != "" && c.SpaceTrack.Password == "" {
		return fmt.Errorf("SPACE_TRACK_PASSWORD is required when SPACE_TRACK_USERNAME is set")
	}
	if c.SpaceTrack.Password != "" && c.SpaceTrack.Username == "" {
		return fmt.Errorf("SPACE_TRACK_USERNAME is required when SPACE_TRACK_PASSWORD is set")
	}
	return nil
}

// Space-Track client limit constants
const (
	spaceTrackMaxRetryBudget = 10
	spaceTrackMinTimeout     = time.Second
	spaceTrackMaxTimeout     = 5 * time.Minute
	spaceTrackMaxRateLimit   = 10.0 // req/s; provider allows far less sustained
)

// validateSpaceTrackLimits validates timeout and throttling settings
func (c *Config) validateSpaceTrackLimits() error {
	if c.SpaceTrack.Timeout < spaceTrackMinTimeout || c.SpaceTrack.Timeout > spaceTrackMaxTimeout {
		return fmt.Errorf("SPACE_TRACK_TIMEOUT must be between %v and %v", spaceTrackMinTimeout, spaceTrackMaxTimeout)
	}
	if c.SpaceTrack.MaxRetries < 0 || c.SpaceTrack.MaxRetries > spaceTrackMaxRetryBudget {
		return fmt.Errorf("SPACE_TRACK_MAX_RETRIES must be between 0 and %d", spaceTrackMaxRetryBudget)
	}
	if c.SpaceTrack.RetryBaseDelay <= 0 {
		return fmt.Errorf("SPACE_TRACK_RETRY_BASE_DELAY must be positive")
	}
	if c.SpaceTrack.RateLimit <= 0 || c.SpaceTrack.RateLimit > spaceTrackMaxRateLimit {
		return fmt.Errorf("SPACE_TRACK_RATE_LIMIT must be between 0 and %v requests per second", spaceTrackMaxRateLimit)
	}
	if c.SpaceTrack.RateLimitBurst < 1 {
		return fmt.Errorf("SPACE_TRACK_RATE_LIMIT_BURST must be at least 1")
	}
	return nil
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("HTTP_TIMEOUT must be at least 1s")
	}
	return nil
}

// validateAPI validates catalog fetch limits
func (c *Config) validateAPI() error {
	if c.API.MaxFetchLimit < 1 {
		return fmt.Errorf("MAX_FETCH_LIMIT must be at least 1")
	}
	if c.API.FetchLimit < 1 || c.API.FetchLimit > c.API.MaxFetchLimit {
		return fmt.Errorf("FETCH_LIMIT must be between 1 and MAX_FETCH_LIMIT (%d)", c.API.MaxFetchLimit)
	}
	return nil
}

// validateCache validates cache configuration (only if enabled)
func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.TTL < time.Second {
		return fmt.Errorf("CACHE_TTL must be at least 1s")
	}
	return nil
}

// validateRefresh validates background refresh configuration (only if enabled)
func (c *Config) validateRefresh() error {
	if !c.Refresh.Enabled {
		return nil
	}
	if c.Refresh.Interval < time.Minute {
		return fmt.Errorf("REFRESH_INTERVAL must be at least 1m")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS validates configured CORS origins. The wildcard origin is
// acceptable here: the API is public and read-only, and the original frontend
// is served from arbitrary hosts.
func (c *Config) validateCORS() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if err := validateHTTPURL(origin, "CORS_ORIGINS"); err != nil {
			return fmt.Errorf("CORS_ORIGINS entry %q is invalid: %w", origin, err)
		}
	}
	return nil
}

// validateRateLimits validates inbound rate limiting bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

// validLogLevels defines the accepted LOG_LEVEL values
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the accepted LOG_FORMAT values
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateHTTPURL validates that a URL is properly formatted for HTTP/HTTPS services.
// Validates: scheme (http/https), host present, no paths or query params.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	// Allow trailing slash but no other paths
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
