// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package models defines data structures for the Kessler application.

This package contains all data models used throughout the application: raw
Space-Track catalog records, enriched debris objects, catalog snapshots, and
the API response shapes the visualization frontend consumes. It serves as the
single source of truth for data structure definitions.

Key Components:

  - RawTrackingRecord: Schemaless GP record from Space-Track, with the
    coercion accessors (FloatField, StringField, Field) the enrichment
    pipeline relies on
  - EnrichedObject: One debris object after enrichment (altitude, velocity,
    risk level, orbit type)
  - CatalogSnapshot: One complete fetch-and-enrich pass; the unit the cache
    stores and the API serves
  - DebrisResponse / ErrorResponse / HealthResponse: HTTP payload shapes
  - RiskLevel / OrbitType: Classification enums (LOW/MEDIUM/HIGH, LEO/MEO/GEO)

Coercion Rules:

Space-Track serializes GP values as JSON strings, but fields can be absent,
null, or numeric. RawTrackingRecord's accessors pin down the rules:

	mm, err := rec.FloatField("MEAN_MOTION") // absent -> (0, nil); "abc" -> ErrMalformedField
	name := rec.StringField("OBJECT_NAME", "Unknown Object")
	id := rec.Field("NORAD_CAT_ID") // raw passthrough, nil when absent

Usage Example:

	import "github.com/tomtom215/kessler/internal/models"

	snapshot := &models.CatalogSnapshot{
	    Objects:   enriched,
	    FetchedAt: time.Now(),
	}
	resp := models.DebrisResponse{
	    TotalCount:  snapshot.TotalCount(),
	    Objects:     snapshot.Objects,
	    LastUpdated: snapshot.FetchedAt.Format(models.ClockFormat),
	    DataSource:  models.DataSourceName,
	}

Design Principles:

  - JSON tags follow the frontend contract exactly (snake_case, fixed key set)
  - Identifier fields (id, epoch) are interface{} passthroughs: Space-Track
    emits strings, absent values serialize as null
  - No methods with side effects; models are plain data
*/
package models
