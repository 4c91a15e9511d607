// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring performance, errors, and system health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Space-Track upstream requests and authentication outcomes
  - Catalog enrichment outcomes (enriched vs dropped records)
  - Circuit breaker state transitions
  - Cache hit/miss rates
  - Background refresh runs
  - WebSocket connection counts

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Space-Track Upstream Metrics:
  - spacetrack_requests_total: Provider requests (counter)
    Labels: operation (login, fetch), status (success, failure)
  - spacetrack_request_duration_seconds: Provider request latency (histogram)
    Labels: operation
  - spacetrack_auth_attempts_total: Login attempts (counter)
    Labels: outcome (success, failure)
  - spacetrack_throttle_retries_total: HTTP 429 retry count (counter)

Enrichment Metrics:
  - records_enriched_total: Records processed (counter)
    Labels: outcome (enriched, dropped)
  - enrichment_duration_seconds: Batch enrichment duration (histogram)
  - enrichment_batch_size: Raw records per batch (histogram)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

Cache Metrics:
  - cache_hits_total / cache_misses_total / cache_evictions_total (counters)
    Labels: cache_type
  - cache_entries: Current entry count (gauge)
    Labels: cache_type

Refresh Metrics:
  - refresh_runs_total: Background refresh runs (counter)
    Labels: status (success, failure)
  - refresh_duration_seconds: Refresh run duration (histogram)
  - refresh_last_success_timestamp: Unix timestamp of last success (gauge)

WebSocket Metrics:
  - websocket_connections: Active connections (gauge)
  - websocket_messages_sent_total / websocket_messages_received_total (counters)
  - websocket_errors_total: Errors (counter)
    Labels: error_type

# Usage Example

Recording metrics in application code:

	start := time.Now()
	records, err := client.FetchRecords(ctx, limit)
	metrics.RecordUpstreamRequest("fetch", time.Since(start), err)

Metrics are registered with the default Prometheus registry via promauto at
package initialization; no explicit registration step is required.

# Grafana Integration

Example queries for dashboards:

	# Request rate by endpoint
	rate(api_requests_total[5m])

	# P95 upstream fetch latency
	histogram_quantile(0.95, rate(spacetrack_request_duration_seconds_bucket{operation="fetch"}[5m]))

	# Record drop ratio
	rate(records_enriched_total{outcome="dropped"}[15m])
	  / ignoring(outcome) rate(records_enriched_total{outcome="enriched"}[15m])

	# Cache hit rate
	rate(cache_hits_total[5m]) / (rate(cache_hits_total[5m]) + rate(cache_misses_total[5m]))
*/
package metrics
