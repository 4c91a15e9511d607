// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package refresh keeps the debris catalog warm without user traffic.

The request path alone re-fetches the catalog only when a request misses
the cache, which means the first visitor after every TTL expiry pays the
full Space-Track round trip (tens of seconds for a 10k-record pull). The
background refresher removes that tail: a supervised loop re-fetches and
re-enriches the catalog on a fixed interval, stores the snapshot under
the same cache key the debris endpoint reads, and broadcasts a
catalog_update over the websocket hub so frontends redraw immediately.

Refresh Cycle:

 1. FetchRecords(limit) from the catalog provider (through the circuit breaker)
 2. Enrich the raw records into visualization objects
 3. Store the snapshot in the TTL cache (default-limit key)
 4. Broadcast {total_count, last_updated} to websocket clients

Failure Policy:

A failed cycle logs the error, records a failure metric, and waits for
the next tick. The previous snapshot keeps serving from the cache until
it expires; the loop itself never terminates on upstream errors. Only
context cancellation stops the loop, returning ctx.Err() for clean
suture supervision semantics.

Configuration:

  - REFRESH_ENABLED: Master toggle (default: false). When disabled, the
    relay behaves exactly like the purely request-driven original.
  - REFRESH_INTERVAL: Time between cycles (default: 10m, minimum: 1m).
    The minimum protects the provider account from throttling.

See Also:

  - internal/spacetrack: Catalog provider client
  - internal/cache: Snapshot storage the refresher primes
  - internal/websocket: catalog_update broadcast target
  - internal/supervisor/services: RefreshService suture wrapper
*/
package refresh
