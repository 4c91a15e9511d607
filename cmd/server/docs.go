// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

// Package main provides the Kessler HTTP server
//
// Kessler API serves enriched orbital debris tracking data from the
// Space-Track.org catalog for browser-based visualization dashboards.
//
// @title Kessler API
// @version 1.0
// @description Orbital debris tracking relay serving enriched Space-Track.org catalog data for browser-based visualization dashboards.
// @description
// @description ## Features
// @description
// @description - **Live Catalog**: Debris records fetched from the official Space-Track.org catalog
// @description - **Orbital Enrichment**: Altitude, velocity, orbit class, and collision risk derived per object
// @description - **Real-time Updates**: WebSocket catalog_update notifications on refresh
// @description - **Snapshot Caching**: Short-lived TTL cache shields the provider's rate limits
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "error": "Human-readable error message"
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/kessler/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Core endpoints for health checks and service status
//
// @tag.name Debris
// @tag.description Enriched orbital debris catalog data
//
// @tag.name Realtime
// @tag.description Real-time WebSocket connections for catalog update notifications
package main
