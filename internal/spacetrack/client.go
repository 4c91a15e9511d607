// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package spacetrack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/kessler/internal/config"
	"github.com/tomtom215/kessler/internal/logging"
	"github.com/tomtom215/kessler/internal/metrics"
	"github.com/tomtom215/kessler/internal/models"
)

// Sentinel errors for the two upstream failure classes. Both map to the
// same HTTP 500 response body; the distinction lives in logs and metrics.
var (
	// ErrAuthFailure indicates the login exchange with the catalog
	// provider was rejected or never completed.
	ErrAuthFailure = errors.New("authentication with catalog provider failed")

	// ErrFetchFailure indicates the catalog query failed: transport
	// error, non-200 status, or an undecodable body.
	ErrFetchFailure = errors.New("catalog fetch failed")
)

// loginPath is the provider's form-based session login endpoint.
const loginPath = "/ajaxauth/login"

// gpQueryFormat is the general-perturbations query: records with an epoch
// inside the last 30 days and mean motion above 11 rev/day (the LEO
// population the visualization renders), ordered by NORAD catalog id,
// capped at the requested limit.
const gpQueryFormat = "%s/basicspacedata/query/class/gp/EPOCH/%%3Enow-30/MEAN_MOTION/%%3E11/orderby/NORAD_CAT_ID/limit/%d/format/json"

// maxErrorBodySize limits how much of a response body is read for error
// reporting, preventing unbounded allocation on large error responses
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns the body content or a placeholder message if reading fails.
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// CatalogClient defines the operations the rest of the application needs
// from the catalog provider. Implemented by Client for production use,
// by CircuitBreakerClient as a resilience wrapper, and by test doubles.
//
// Thread Safety: implementations must be safe for concurrent use.
type CatalogClient interface {
	// Authenticate establishes a provider session. Most callers never
	// invoke this directly: FetchRecords logs in lazily on first use.
	Authenticate(ctx context.Context) error

	// FetchRecords retrieves up to limit raw tracking records.
	FetchRecords(ctx context.Context, limit int) ([]models.RawTrackingRecord, error)
}

// Client is an authenticated Space-Track API session.
//
// The provider uses cookie-based sessions: a form login yields a session
// cookie that subsequent queries carry via the client's cookie jar. One
// Client is created per process and logs in lazily on the first fetch;
// the login is serialized by a mutex so concurrent first requests produce
// at most one login exchange.
//
// Resilience:
//   - Proactive client-side rate limiting before every exchange
//     (Space-Track suspends accounts that exceed its published limits)
//   - HTTP 429 handled with bounded exponential backoff honoring
//     Retry-After
//   - Everything else fails fast: no retry on auth or non-429 failures
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client

	authMu        sync.Mutex
	authenticated bool

	limiter        *rate.Limiter
	maxRetries     int           // 429-only retry budget
	retryBaseDelay time.Duration // base delay for exponential backoff
}

// NewClient creates a Space-Track client from configuration. The session
// cookie jar and HTTP timeout are fixed at construction; credentials are
// not checked until the first login attempt.
func NewClient(cfg config.SpaceTrackConfig) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		client: &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
	}, nil
}

// Authenticate performs the provider login exchange: a form POST with
// identity/password fields. HTTP 200 marks the session authenticated;
// anything else leaves it unauthenticated and returns ErrAuthFailure.
// There is no retry: a rejected login fails the request that needed it.
func (c *Client) Authenticate(ctx context.Context) error {
	c.authMu.Lock()
	defer c.authMu.Unlock()
	return c.authenticateLocked(ctx)
}

// ensureAuthenticated logs in lazily before the first query. The mutex
// guarantees at most one concurrent login; callers that arrive during a
// login wait for its outcome instead of racing their own.
func (c *Client) ensureAuthenticated(ctx context.Context) error {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	if c.authenticated {
		return nil
	}
	return c.authenticateLocked(ctx)
}

// authenticateLocked runs the login exchange. Caller must hold authMu.
func (c *Client) authenticateLocked(ctx context.Context) error {
	start := time.Now()
	err := c.login(ctx)
	metrics.RecordUpstreamRequest("login", time.Since(start), err)
	metrics.RecordAuthAttempt(err == nil)

	if err != nil {
		logging.Warn().Err(err).Str("base_url", c.baseURL).Msg("catalog provider login failed")
		return err
	}

	c.authenticated = true
	logging.Info().Str("base_url", c.baseURL).Msg("authenticated with catalog provider")
	return nil
}

func (c *Client) login(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s", ErrAuthFailure, err.Error())
	}

	form := url.Values{}
	form.Set("identity", c.username)
	form.Set("password", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create login request: %s", ErrAuthFailure, err.Error())
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrAuthFailure, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return fmt.Errorf("%w: login returned status %d: %s", ErrAuthFailure, resp.StatusCode, string(body))
	}

	return nil
}

// FetchRecords retrieves up to limit general-perturbations records.
//
// The session is established lazily on first use; an auth failure
// surfaces immediately as ErrAuthFailure without touching the query
// endpoint. Query failures (transport, non-200, undecodable body)
// surface as ErrFetchFailure. The returned records are the provider's
// payload untouched; enrichment and validation happen downstream.
func (c *Client) FetchRecords(ctx context.Context, limit int) ([]models.RawTrackingRecord, error) {
	if err := c.ensureAuthenticated(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	records, err := c.fetch(ctx, limit)
	metrics.RecordUpstreamRequest("fetch", time.Since(start), err)

	if err != nil {
		logging.Warn().Err(err).Int("limit", limit).Msg("catalog fetch failed")
		return nil, err
	}

	logging.Debug().Int("records", len(records)).Int("limit", limit).Msg("catalog fetch completed")
	return records, nil
}

func (c *Client) fetch(ctx context.Context, limit int) ([]models.RawTrackingRecord, error) {
	reqURL := fmt.Sprintf(gpQueryFormat, c.baseURL, limit)

	resp, err := c.doRequestWithRateLimit(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailure, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			c.invalidateSession()
		}
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("%w: query returned status %d: %s", ErrFetchFailure, resp.StatusCode, string(body))
	}

	var records []models.RawTrackingRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog response: %s", ErrFetchFailure, err.Error())
	}

	return records, nil
}

// invalidateSession drops the authenticated flag after the provider
// rejected the session cookie, forcing a fresh login on the next fetch.
func (c *Client) invalidateSession() {
	c.authMu.Lock()
	c.authenticated = false
	c.authMu.Unlock()

	logging.Warn().Msg("catalog provider session rejected, will re-login on next request")
}

// doRequestWithRateLimit performs a GET with proactive client-side rate
// limiting and bounded exponential backoff on HTTP 429 (1x, 2x, 4x, ...
// of the base delay, capped at maxRetries attempts). A Retry-After
// header, when present, overrides the computed delay. All waits abort on
// context cancellation.
func (c *Client) doRequestWithRateLimit(ctx context.Context, reqURL string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Rate limited by the provider - close body and retry with backoff
		_ = resp.Body.Close()
		metrics.UpstreamThrottleRetries.Inc()

		if attempt == c.maxRetries {
			lastErr = fmt.Errorf("rate limit exceeded after %d retries (HTTP 429)", c.maxRetries)
			break
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))

		// Retry-After (RFC 6585) overrides the computed backoff
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
				delay = seconds
			}
		}

		logging.Debug().Dur("delay", delay).Int("attempt", attempt+1).Msg("provider throttled request, backing off")

		select {
		case <-time.After(delay):
			// Continue to next attempt
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, lastErr
}
