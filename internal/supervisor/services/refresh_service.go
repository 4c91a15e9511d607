// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package services

import (
	"context"
)

// CatalogRefresher interface matches the refresh.Refresher's Run method.
//
// This interface allows the RefreshService to work with the refresher
// without importing the refresh package, avoiding circular dependencies.
//
// Satisfied by *refresh.Refresher from internal/refresh/refresher.go.
type CatalogRefresher interface {
	// Run starts the refresher's periodic fetch loop.
	// It returns when the context is canceled.
	Run(ctx context.Context) error
}

// RefreshService wraps a catalog refresher as a supervised service.
//
// The refresher's loop keeps the snapshot cache warm by polling
// Space-Track on a fixed interval. The supervisor will restart the
// service if it crashes.
//
// Example usage:
//
//	refresher := refresh.NewRefresher(client, pipeline, snapshots, hub, cfg)
//	svc := services.NewRefreshService(refresher)
//	tree.AddMessagingService(svc)
type RefreshService struct {
	refresher CatalogRefresher
	name      string
}

// NewRefreshService creates a new catalog refresher service wrapper.
func NewRefreshService(refresher CatalogRefresher) *RefreshService {
	return &RefreshService{
		refresher: refresher,
		name:      "catalog-refresher",
	}
}

// Serve implements suture.Service.
//
// This method delegates to refresher.Run which:
//  1. Performs an initial catalog refresh
//  2. Refreshes on a fixed interval thereafter
//  3. Stores each snapshot and notifies WebSocket clients
//  4. Returns when the context is canceled
//
// The method returns ctx.Err() on normal shutdown.
func (r *RefreshService) Serve(ctx context.Context) error {
	return r.refresher.Run(ctx)
}

// String implements fmt.Stringer for logging.
// Suture uses this to identify the service in log messages.
func (r *RefreshService) String() string {
	return r.name
}
