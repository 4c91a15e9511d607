// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

// Package logging provides centralized zerolog-based structured logging for Kessler.
//
// The package exposes a process-wide logger configured once at startup and a
// set of level helpers mirroring the zerolog API:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("count", n).Msg("Catalog fetched")
//	logging.Error().Err(err).Msg("Upstream query failed")
//
// # Output Formats
//
// JSON output (the default) is machine-parseable and intended for production.
// Console output is human-readable and intended for development:
//
//	LOG_FORMAT=console ./server
//
// # Context Propagation
//
// Request-scoped correlation and request IDs travel through context.Context
// and are attached automatically by Ctx:
//
//	logging.Ctx(ctx).Info().Msg("Processing request")
//
// # slog Bridge
//
// NewSlogLogger returns a *slog.Logger backed by zerolog so that libraries
// requiring slog (the suture supervisor's sutureslog hook) share the same
// sink and formatting as the rest of the process.
//
// Always terminate log chains with .Msg() or .Send(); a chain without a
// terminator is silently dropped by zerolog.
package logging
