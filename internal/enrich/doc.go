// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

/*
Package enrich derives the display fields served to the visualization
frontend from raw Space-Track general-perturbations records.

The catalog returns orbital elements (mean motion, eccentricity, apogee,
perigee) that the frontend cannot animate directly. This package computes
the simplified presentation values: an altitude estimate in kilometers, a
relative velocity, a risk classification, and an orbit regime label.

# Overview

The package provides:
  - Pipeline: batch enrichment with per-record fault isolation
  - Altitude: single-point altitude estimate in km
  - Velocity: display velocity derived from mean motion
  - RiskLevel: LOW/MEDIUM/HIGH collision-risk classification
  - OrbitType: LEO/MEO/GEO orbit regime label

# Derivation Formulas

Altitude prefers the geometric midpoint when both apsides are known:

	altitude = round((apogee + perigee) / 2)

Otherwise it solves Kepler's third law for the semi-major axis using the
record's mean motion n (converted from rev/day to rad/s):

	n = mean_motion × 2π / 86400
	a = (μ / n²)^(1/3)        μ = 398600.4418 km³/s²
	altitude = round(max(a − 6371, 0))

Worked example, a typical LEO object at mean motion 15.5 rev/day with no
apsis data: n ≈ 1.127e-3 rad/s, a ≈ 6795 km, altitude ≈ 424 km.

Velocity is a display scalar, not an orbital speed:

	velocity = round(mean_motion × 0.1, 2dp)

Risk uses strict thresholds on mean motion (rev/day) and eccentricity:

	HIGH    mean_motion > 15 and eccentricity > 0.1
	MEDIUM  mean_motion > 12
	LOW     everything else

Orbit regime uses mean motion alone:

	LEO  mean_motion > 11
	MEO  mean_motion > 1
	GEO  everything else (the label covers all slower orbits)

# Partial Failure Policy

Space-Track serializes GP values as strings and older catalog entries
carry gaps, so enrichment treats faults per-record, never per-batch:

  - A missing orbital parameter counts as zero and the formulas degrade
    gracefully (altitude 0, velocity 0, risk LOW, orbit GEO).
  - A malformed APOGEE, PERIGEE, or ECCENTRICITY degrades only the
    derivation that needed it (altitude 0, risk LOW); the record is
    still served.
  - A malformed MEAN_MOTION disqualifies the record: velocity cannot be
    derived, so the record is dropped whole rather than emitted with
    partial fields.

Dropped records are logged at debug level with their NORAD catalog id
and counted in the kessler_records_enriched_total{outcome="dropped"}
metric. Output order always matches input order with drops omitted.

# Usage Example

	import "github.com/tomtom215/kessler/internal/enrich"

	pipeline := enrich.NewPipeline()
	records, err := client.FetchRecords(ctx, 10000)
	if err != nil {
	    return err
	}
	objects := pipeline.Enrich(records)
	// len(objects) <= len(records); failures were dropped

# Performance Considerations

Enrichment is pure arithmetic over an in-memory batch:
  - No allocations beyond the output slice (pre-sized to the batch)
  - A full 10,000-record batch enriches in well under a millisecond
  - Pipeline is stateless and safe for concurrent use

# See Also

  - internal/models: RawTrackingRecord coercion helpers and EnrichedObject
  - internal/spacetrack: produces the raw record batches
  - internal/refresh: runs this pipeline on a timer to pre-warm the cache
*/
package enrich
