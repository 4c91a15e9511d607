// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/kessler/internal/cache"
	"github.com/tomtom215/kessler/internal/config"
	"github.com/tomtom215/kessler/internal/enrich"
	"github.com/tomtom215/kessler/internal/logging"
	"github.com/tomtom215/kessler/internal/metrics"
	"github.com/tomtom215/kessler/internal/models"
)

// minInterval protects the catalog provider from aggressive refresh
// configurations. Space-Track throttles accounts that poll too often.
const minInterval = time.Minute

// CatalogFetcher pulls raw tracking records from the catalog provider.
// Implemented by spacetrack.Client and spacetrack.CircuitBreakerClient.
type CatalogFetcher interface {
	FetchRecords(ctx context.Context, limit int) ([]models.RawTrackingRecord, error)
}

// SnapshotCache stores enriched snapshots for the request path.
// Implemented by cache.Cache.
type SnapshotCache interface {
	SetSnapshot(key string, snapshot *models.CatalogSnapshot)
}

// UpdateBroadcaster notifies connected frontends of fresh snapshots.
// Implemented by websocket.Hub.
type UpdateBroadcaster interface {
	BroadcastCatalogUpdate(totalCount int, lastUpdated string)
}

// Refresher periodically re-fetches and re-enriches the debris catalog,
// keeping the snapshot cache warm and pushing catalog_update notifications
// to websocket clients. Failures never stop the loop; the previous snapshot
// keeps serving until the next tick succeeds.
type Refresher struct {
	client   CatalogFetcher
	pipeline *enrich.Pipeline
	cache    SnapshotCache      // Optional, can be nil (priming skipped)
	hub      UpdateBroadcaster  // Optional, can be nil (broadcasts skipped)
	interval time.Duration
	limit    int
	cacheKey string

	mu          sync.RWMutex
	refreshMu   sync.Mutex // Prevents concurrent refresh execution
	lastRefresh time.Time
}

// NewRefresher creates a background catalog refresher. The cache is primed
// under the same key the debris endpoint computes for the default fetch
// limit, so warm-cache requests never touch the provider.
func NewRefresher(client CatalogFetcher, pipeline *enrich.Pipeline, snapshots SnapshotCache, hub UpdateBroadcaster, cfg *config.Config) *Refresher {
	interval := cfg.Refresh.Interval
	if interval < minInterval {
		logging.Warn().Dur("interval", interval).Dur("minimum", minInterval).Msg("RefreshInterval too low, using minimum")
		interval = minInterval
	}

	limit := cfg.API.FetchLimit

	logging.Info().
		Dur("interval", interval).
		Int("limit", limit).
		Bool("cache_priming", snapshots != nil).
		Msg("Catalog refresher config loaded")

	return &Refresher{
		client:   client,
		pipeline: pipeline,
		cache:    snapshots,
		hub:      hub,
		interval: interval,
		limit:    limit,
		cacheKey: cache.GenerateKey("debris", limit),
	}
}

// Run executes the refresh loop until the context is canceled. An immediate
// refresh primes the cache on startup, then the loop ticks at the configured
// interval. Designed for suture supervision: returns ctx.Err() on shutdown
// so the supervisor treats it as a clean stop.
func (r *Refresher) Run(ctx context.Context) error {
	logging.Info().Msg("Performing initial catalog refresh...")
	if err := r.refresh(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial catalog refresh failed (will retry on next tick)")
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info().
				Str("component", "refresher").
				Time("last_refresh", r.LastRefreshTime()).
				Msg("catalog refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := r.refresh(ctx); err != nil {
				logging.Error().Err(err).Msg("Catalog refresh failed")
			}
		}
	}
}

// RefreshNow manually triggers a refresh outside the periodic schedule.
func (r *Refresher) RefreshNow(ctx context.Context) error {
	return r.refresh(ctx)
}

// LastRefreshTime returns the completion time of the last successful refresh.
func (r *Refresher) LastRefreshTime() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRefresh
}

// refresh performs one fetch-enrich-store-broadcast pass.
func (r *Refresher) refresh(ctx context.Context) error {
	// Prevent concurrent refresh execution (manual trigger vs. ticker)
	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()

	start := time.Now()

	records, err := r.client.FetchRecords(ctx, r.limit)
	if err != nil {
		metrics.RecordRefreshRun(time.Since(start), err)
		return err
	}

	objects := r.pipeline.Enrich(records)
	snapshot := &models.CatalogSnapshot{
		Objects:   objects,
		FetchedAt: time.Now(),
	}

	if r.cache != nil {
		r.cache.SetSnapshot(r.cacheKey, snapshot)
	}

	r.mu.Lock()
	r.lastRefresh = time.Now()
	r.mu.Unlock()

	metrics.RecordRefreshRun(time.Since(start), nil)

	if r.hub != nil {
		r.hub.BroadcastCatalogUpdate(snapshot.TotalCount(), snapshot.FetchedAt.Format(models.ClockFormat))
	}

	logging.Info().
		Int("raw_records", len(records)).
		Int("objects", snapshot.TotalCount()).
		Dur("duration", time.Since(start)).
		Msg("Catalog refresh completed")
	return nil
}
