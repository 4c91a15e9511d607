// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package api provides the HTTP layer for Kessler.

This package implements the small public surface the debris visualization
frontend consumes: a health check, the debris catalog endpoint, and a
websocket connection for live update notifications, plus the operational
endpoints (Prometheus metrics, Swagger UI).

Key Components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: Request handlers for all endpoints
  - ChiMiddleware: CORS and per-route rate limiting factories
  - Response formatting: Fixed JSON shapes from internal/models
  - Error handling: {"error": "..."} payloads with appropriate status codes

Endpoints:

 1. GET /health:
    Liveness payload with a wall-clock timestamp. The frontend polls it
    to drive the "backend active" indicator.

 2. GET /api/debris:
    The catalog endpoint. Serves the cached enriched snapshot when one
    is fresh, otherwise fetches from Space-Track, runs the enrichment
    pipeline, stores the result, and responds. Accepts an optional
    ?limit=N parameter bounded by configuration. Any upstream failure,
    login or fetch alike, produces HTTP 500 with a fixed error body.

 3. GET /api/ws:
    Websocket upgrade. Connected clients receive catalog_update
    broadcasts from the background refresher.

 4. GET /metrics, GET /swagger/*:
    Prometheus exposition and interactive API documentation.

Usage Example:

	import (
	    "github.com/tomtom215/kessler/internal/api"
	    "github.com/tomtom215/kessler/internal/enrich"
	    "github.com/tomtom215/kessler/internal/spacetrack"
	)

	client, _ := spacetrack.NewClient(cfg.SpaceTrack)
	handler := api.NewHandler(cfg, client, enrich.NewPipeline(), snapshots, wsHub)
	router := api.NewRouter(handler, cfg)

	http.ListenAndServe(cfg.Server.Addr(), router.Setup())

Performance Characteristics:

  - Cache hits serve without touching the upstream provider
  - Cache misses are bounded by the provider's response time (tens of
    seconds for a full 10k-record pull)
  - Compression: gzip middleware for the large catalog payloads

Thread Safety:

All handlers are safe for concurrent request handling. Shared resources
(catalog client, cache, websocket hub) are protected by their own
synchronization primitives.

See Also:

  - internal/spacetrack: Upstream catalog client
  - internal/enrich: Derived-field computation pipeline
  - internal/models: Response data structures
  - internal/middleware: HTTP middleware components
*/
package api
