// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package spacetrack implements the authenticated session against the
Space-Track.org catalog API, the system's single upstream.

# Session protocol

Space-Track uses cookie-based sessions rather than tokens. The client
POSTs a form with identity and password fields to /ajaxauth/login; an
HTTP 200 yields a session cookie that the client's cookie jar attaches
to every subsequent query. One Client exists per process and logs in
lazily on the first fetch. The login is serialized by a mutex, so a
burst of concurrent first requests performs exactly one login exchange
and every waiter shares its outcome. A session the provider later
rejects (401/403 on a query) is invalidated and re-established on the
next request.

# Catalog query

FetchRecords issues a single GET against the general-perturbations
class:

	/basicspacedata/query/class/gp/
	    EPOCH/>now-30/          epoch within the last 30 days
	    MEAN_MOTION/>11/        faster than 11 rev/day (LEO population)
	    orderby/NORAD_CAT_ID/   stable ascending order
	    limit/{limit}/          bounded batch
	    format/json

The filters keep the response to the recently-observed low-Earth-orbit
population the frontend renders. The response decodes into loosely-typed
models.RawTrackingRecord maps; this package performs no per-record
validation or reshaping.

# Throttling and resilience

Space-Track publishes query limits (about 30 requests/minute) and
suspends accounts that exceed them, so the client is deliberately
conservative:

  - A proactive client-side rate limiter gates every exchange.
  - HTTP 429 responses are retried with bounded exponential backoff,
    honoring Retry-After when the provider sends one.
  - Nothing else retries. A failed login or a non-429 query failure
    fails the calling request immediately.

CircuitBreakerClient adds the standard breaker on top (opens at a 60%
failure rate over at least 10 requests in a 1-minute window, recovers
through a half-open probe after 2 minutes). When the breaker is open,
requests are rejected locally without touching the provider.

# Error taxonomy

Two sentinels classify every failure:

  - ErrAuthFailure: the login exchange failed
  - ErrFetchFailure: the catalog query failed

Callers match with errors.Is. The HTTP layer collapses both into the
same fixed 500 response body; the taxonomy is preserved in logs and in
the spacetrack_requests_total / spacetrack_auth_attempts_total metrics.
*/
package spacetrack
