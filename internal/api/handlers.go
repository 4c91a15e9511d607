// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tomtom215/kessler/internal/cache"
	"github.com/tomtom215/kessler/internal/config"
	"github.com/tomtom215/kessler/internal/enrich"
	"github.com/tomtom215/kessler/internal/logging"
	"github.com/tomtom215/kessler/internal/spacetrack"
	ws "github.com/tomtom215/kessler/internal/websocket"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, websocket plumbing (this file)
//   - handlers_health.go: Health endpoint
//   - handlers_debris.go: Debris catalog endpoint
//   - handlers_websocket.go: Websocket upgrade endpoint
//   - helpers.go: Shared helper functions
type Handler struct {
	config   *config.Config
	client   spacetrack.CatalogClient
	pipeline *enrich.Pipeline
	cache    *cache.Cache
	wsHub    *ws.Hub
}

// NewHandler creates a new API handler with all required dependencies.
//
// Dependencies:
//   - cfg: Application configuration
//   - client: Catalog client for upstream fetches (plain or circuit-wrapped)
//   - pipeline: Enrichment pipeline applied to raw tracking records
//   - snapshots: TTL cache holding enriched catalog snapshots (nil disables caching)
//   - wsHub: Websocket hub for real-time broadcasts (nil disables /api/ws)
//
// Example:
//
//	handler := api.NewHandler(cfg, client, enrich.NewPipeline(), snapshots, wsHub)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.Setup())
func NewHandler(cfg *config.Config, client spacetrack.CatalogClient, pipeline *enrich.Pipeline, snapshots *cache.Cache, wsHub *ws.Hub) *Handler {
	return &Handler{
		config:   cfg,
		client:   client,
		pipeline: pipeline,
		cache:    snapshots,
		wsHub:    wsHub,
	}
}

// GetCacheStats returns snapshot cache performance statistics
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}

// getUpgrader creates a websocket upgrader with proper origin checking and
// a handshake timeout for protection against slow client attacks.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates websocket connection origins
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")

	// If no origin header, REJECT - legitimate browser WebSockets ALWAYS include Origin
	// Only non-browser clients (curl, scripts, mobile apps) omit Origin header
	// Allowing empty Origin bypasses CORS entirely - security vulnerability
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}

	// If config is nil, allow by default (fail open for tests/development)
	if h.config == nil {
		return true
	}

	// Check against allowed origins from config
	for _, allowedOrigin := range h.config.Security.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}

	// Origin not in allowed list - sanitize origin to prevent log injection
	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
