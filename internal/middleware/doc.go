// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, request ID
tracking, and Prometheus metrics integration. These components work alongside
the chi router's built-in middleware (RealIP, Recoverer) and the third-party
CORS and rate-limit middleware to create a complete stack for HTTP request
processing.

Key Components:

  - Compression: Gzip compression for responses
  - Request ID: UUID-based request tracking for distributed tracing
  - Prometheus Metrics: HTTP request/response instrumentation

Middleware Stack:

The typical middleware stack for an endpoint is:

	r.Use(chimiddleware.RealIP)              // Layer 1: Client IP resolution
	r.Use(cors.Handler(corsOptions))         // Layer 2: CORS headers
	r.Use(httprate.LimitByIP(100, time.Minute)) // Layer 3: Rate limiting
	r.Get("/api/debris",
	    middleware.RequestID(                // Layer 4: Request tracking
	        middleware.PrometheusMetrics(    // Layer 5: Metrics
	            middleware.Compression(      // Layer 6: Gzip
	                handler,                 // Layer 7: Business logic
	            ),
	        ),
	    ),
	)

Usage Example - Compression:

	import "github.com/tomtom215/kessler/internal/middleware"

	// Wrap handler with gzip compression
	http.HandleFunc("/api/debris",
	    middleware.Compression(handler),
	)

	// Accept-Encoding: gzip header is required

Usage Example - Request ID:

	// Request ID middleware
	http.HandleFunc("/api/debris",
	    middleware.RequestID(handler),
	)

	// Access request ID in handler
	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    log.Printf("[%s] Processing request", requestID)
	}

Performance Characteristics:

  - Compression: 70-90% size reduction for JSON (text/json mime types)
  - Compression overhead: ~1-2ms for typical responses
  - Metrics overhead: <0.1ms per request
  - Request ID overhead: <0.01ms (UUID generation)

Compression Details:

The compression middleware:
  - Supports gzip encoding (Accept-Encoding: gzip)
  - Skips WebSocket upgrade requests
  - Automatically sets Content-Encoding header
  - Pools gzip writers to reduce allocations

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled per-request gzip writers
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
  - internal/logging: Request/correlation ID context helpers
*/
package middleware
