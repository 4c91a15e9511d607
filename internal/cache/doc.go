// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package cache provides the in-memory TTL cache that holds enriched
catalog snapshots between Space-Track fetches.

# Why a cache at all

Space-Track publishes query throttling guidance (roughly 30 requests per
minute, with per-hour ceilings) and suspends accounts that ignore it. A
single debris request pulls up to 10,000 general-perturbations records,
and the orbital picture changes on the scale of hours, not seconds.
Serving a snapshot that is at most two minutes old keeps the frontend
responsive while staying far inside the provider's limits.

# Design

The cache is a mutex-guarded map of Entry{Data, ExpiresAt} with:

  - Lazy expiration on Get plus a background sweep every 5 minutes
  - Per-cache Stats (hits, misses, evictions, key count, last cleanup)
  - Prometheus counters and an entry-count gauge, labeled by cache name
  - GenerateKey: operation name + sha256 of the serialized parameters,
    so each distinct fetch limit caches independently

Snapshot-typed accessors (GetSnapshot/SetSnapshot) wrap the generic
Get/Set for the single value type this service caches,
*models.CatalogSnapshot.

# Usage

	c := cache.New("catalog", 2*time.Minute)

	key := cache.GenerateKey("debris", limit)
	if snap, ok := c.GetSnapshot(key); ok {
	    return snap // bounded-age data, no upstream call
	}

	// miss: fetch, enrich, store
	c.SetSnapshot(key, snapshot)

When the cache is disabled in configuration the handlers skip it
entirely and every request performs the full fetch flow.

# Consistency

Entries expire on a fixed TTL; there is no invalidation on upstream
change because the provider offers no change feed. A cached response
reports the snapshot's fetch time in last_updated, so clients see data
age rather than request time.
*/
package cache
