// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

// Package main is the entry point for the Kessler relay server.
//
// Kessler is a self-hosted tracking relay that serves the Space-Track.org
// debris catalog to browser dashboards. It authenticates against
// Space-Track, fetches general perturbations records for decayed-payload
// debris, enriches each record with derived orbital characteristics and a
// collision risk classification, and serves the result over a small REST
// API with websocket update notifications.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Space-Track client: Cookie-session catalog client wrapped in a circuit breaker
//  3. Enrichment pipeline: Derived altitude, velocity, orbit class, and risk level
//  4. Snapshot cache: TTL cache for enriched catalogs (optional)
//  5. WebSocket Hub: Real-time catalog_update notifications to connected clients
//  6. Catalog refresher: Periodic background re-fetch (optional)
//  7. HTTP Server: REST API with Swagger documentation
//
// Components run under a Suture v4 supervisor tree:
//
//	RootSupervisor ("kessler")
//	├── MessagingSupervisor ("messaging-layer")
//	│   ├── WebSocket Hub (real-time updates)
//	│   └── Catalog Refresher (optional, REFRESH_ENABLED=true)
//	└── APISupervisor ("api-layer")
//	    └── HTTP Server (REST API + websocket upgrade)
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Core environment variables:
//
//	SPACE_TRACK_USERNAME=you@example.com  # Space-Track.org account email
//	SPACE_TRACK_PASSWORD=<password>       # Space-Track.org account password
//	PORT=5000                             # HTTP listen port
//	CACHE_ENABLED=true                    # TTL cache for enriched snapshots
//	CACHE_TTL=2m
//	REFRESH_ENABLED=false                 # Background catalog refresh
//	REFRESH_INTERVAL=10m
//	FETCH_LIMIT=10000                     # Catalog records per upstream query
//	CORS_ORIGINS=*                        # Comma-separated allowed origins
//	LOG_LEVEL=info                        # trace, debug, info, warn, error
//	LOG_FORMAT=json                       # json or console
//
// Credentials are not required at startup. Without them the server boots
// and /health responds, but catalog requests fail with an upstream error
// until SPACE_TRACK_USERNAME and SPACE_TRACK_PASSWORD are set.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Disconnects websocket clients and stops the refresher
//
// # Example Usage
//
// Development (console logs, no cache):
//
//	export SPACE_TRACK_USERNAME=you@example.com
//	export SPACE_TRACK_PASSWORD=secret
//	export LOG_FORMAT=console
//	export CACHE_ENABLED=false
//	go run ./cmd/server
//
// Production with background refresh:
//
//	export SPACE_TRACK_USERNAME=you@example.com
//	export SPACE_TRACK_PASSWORD=secret
//	export REFRESH_ENABLED=true
//	export REFRESH_INTERVAL=10m
//	./kessler
//
// Docker:
//
//	docker run -d \
//	  -e SPACE_TRACK_USERNAME=you@example.com \
//	  -e SPACE_TRACK_PASSWORD=secret \
//	  -p 5000:5000 \
//	  ghcr.io/tomtom215/kessler
//
// # Port 5000
//
// The default port 5000 matches the port the bundled visualization
// frontend expects; override it with PORT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/kessler/docs" // Import generated swagger docs
	"github.com/tomtom215/kessler/internal/api"
	"github.com/tomtom215/kessler/internal/cache"
	"github.com/tomtom215/kessler/internal/config"
	"github.com/tomtom215/kessler/internal/enrich"
	"github.com/tomtom215/kessler/internal/logging"
	"github.com/tomtom215/kessler/internal/refresh"
	"github.com/tomtom215/kessler/internal/spacetrack"
	"github.com/tomtom215/kessler/internal/supervisor"
	"github.com/tomtom215/kessler/internal/supervisor/services"
	ws "github.com/tomtom215/kessler/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Kessler with supervisor tree")

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("spacetrack_url", cfg.SpaceTrack.BaseURL).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Bool("refresh_enabled", cfg.Refresh.Enabled).
		Msg("Configuration loaded")

	// Credentials are checked at first login, not at boot
	if cfg.SpaceTrack.Username == "" || cfg.SpaceTrack.Password == "" {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  Space-Track credentials are not configured")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  The server will start, but catalog requests will fail")
		logging.Warn().Msg("  until credentials are provided:")
		logging.Warn().Msg("    SPACE_TRACK_USERNAME=you@example.com")
		logging.Warn().Msg("    SPACE_TRACK_PASSWORD=<password>")
		logging.Warn().Msg("  ")
		logging.Warn().Msg("  Accounts are free: https://www.space-track.org")
		logging.Warn().Msg("============================================================")
	}

	// Initialize Space-Track client with circuit breaker for fault tolerance.
	// The breaker stops hammering the provider while it is unavailable;
	// rejected calls surface as fetch failures on the API.
	stClient, err := spacetrack.NewClient(cfg.SpaceTrack)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize Space-Track client")
	}
	client := spacetrack.NewCircuitBreakerClient(stClient)
	logging.Info().Str("base_url", cfg.SpaceTrack.BaseURL).Msg("Space-Track client initialized")

	pipeline := enrich.NewPipeline()

	var snapshots *cache.Cache
	if cfg.Cache.Enabled {
		snapshots = cache.New("catalog", cfg.Cache.TTL)
		logging.Info().Dur("ttl", cfg.Cache.TTL).Msg("Snapshot cache enabled")
	} else {
		logging.Info().Msg("Snapshot cache disabled (CACHE_ENABLED=false)")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for CI/CD tests!")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter
	// This bridges zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	// Create supervisor tree
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Create WebSocket hub for real-time updates (before the refresher,
	// which broadcasts catalog_update notifications through it)
	wsHub := ws.NewHub()

	handler := api.NewHandler(cfg, client, pipeline, snapshots, wsHub)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	// Messaging layer services
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	logging.Info().Msg("WebSocket hub added to supervisor tree")

	if cfg.Refresh.Enabled {
		// Pass an untyped nil when the cache is off; a typed nil
		// *cache.Cache would not compare equal to nil inside the refresher.
		var snapshotSink refresh.SnapshotCache
		if snapshots != nil {
			snapshotSink = snapshots
		}
		refresher := refresh.NewRefresher(client, pipeline, snapshotSink, wsHub, cfg)
		tree.AddMessagingService(services.NewRefreshService(refresher))
		logging.Info().Dur("interval", cfg.Refresh.Interval).Msg("Catalog refresher added to supervisor tree")
	} else {
		logging.Info().Msg("Background refresh disabled (REFRESH_ENABLED=false)")
	}

	// API layer services
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
