// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package spacetrack

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/kessler/internal/logging"
	"github.com/tomtom215/kessler/internal/metrics"
	"github.com/tomtom215/kessler/internal/models"
)

// CircuitBreakerClient wraps a CatalogClient with the circuit breaker
// pattern, preventing request pileup when Space-Track is unavailable or
// degraded. Login and fetch share one breaker: both exercise the same
// provider, and a provider that cannot authenticate cannot serve queries.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. This is intentional for
// production resilience:
// - The timing determines when to recover from failures, not data integrity
// - Tests should use appropriate waits or stub the underlying client, not the breaker
// - For unit tests, consider testing the wrapped client directly
type CircuitBreakerClient struct {
	client CatalogClient
	cb     *gobreaker.CircuitBreaker[[]models.RawTrackingRecord]
	name   string
}

// NewCircuitBreakerClient wraps a catalog client with a circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(client CatalogClient) *CircuitBreakerClient {
	cbName := "spacetrack-api"

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.RawTrackingRecord](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,               // Allow 3 concurrent requests in half-open state
		Interval:    time.Minute,     // Reset counts after 1 minute in closed state
		Timeout:     2 * time.Minute, // Wait 2 minutes before transitioning from open to half-open

		// ReadyToTrip determines when to open the circuit
		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		// OnStateChange is called whenever the circuit breaker changes state
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			// Reset consecutive failures when transitioning to closed
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// execute wraps a provider exchange with circuit breaker protection and
// updates the breaker metrics from the outcome.
func (cbc *CircuitBreakerClient) execute(fn func() ([]models.RawTrackingRecord, error)) ([]models.RawTrackingRecord, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if isBreakerRejection(err) {
			// Circuit is open or too many concurrent requests in half-open state
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()

			counts := cbc.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	return result, nil
}

// isBreakerRejection reports whether the error came from the breaker
// itself rather than the wrapped exchange.
func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Authenticate establishes a provider session with circuit breaker
// protection. Breaker rejections surface as ErrAuthFailure so callers
// see the usual taxonomy.
func (cbc *CircuitBreakerClient) Authenticate(ctx context.Context) error {
	_, err := cbc.execute(func() ([]models.RawTrackingRecord, error) {
		return nil, cbc.client.Authenticate(ctx)
	})
	if err != nil && isBreakerRejection(err) {
		return fmt.Errorf("%w: %s", ErrAuthFailure, err.Error())
	}
	return err
}

// FetchRecords retrieves raw tracking records with circuit breaker
// protection. An open breaker rejects immediately with ErrFetchFailure,
// without touching the provider.
func (cbc *CircuitBreakerClient) FetchRecords(ctx context.Context, limit int) ([]models.RawTrackingRecord, error) {
	records, err := cbc.execute(func() ([]models.RawTrackingRecord, error) {
		return cbc.client.FetchRecords(ctx, limit)
	})
	if err != nil && isBreakerRejection(err) {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailure, err.Error())
	}
	return records, err
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Compile-time interface checks
var (
	_ CatalogClient = (*Client)(nil)
	_ CatalogClient = (*CircuitBreakerClient)(nil)
)
