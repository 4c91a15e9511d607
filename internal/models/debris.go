// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package models

import (
	"time"
)

// RiskLevel classifies the collision risk of a tracked object from its
// orbital parameters.
type RiskLevel string

// Risk level values, exactly as the visualization frontend expects them.
const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// OrbitType classifies an object's orbital regime from its mean motion.
type OrbitType string

// Orbit type values. The thresholds come from mean motion in revolutions per
// day: above 11 is the low-orbit population, above 1 medium, and everything
// slower is labeled GEO (the label covers geostationary and all slower/high
// orbits).
const (
	OrbitLEO OrbitType = "LEO"
	OrbitMEO OrbitType = "MEO"
	OrbitGEO OrbitType = "GEO"
)

// EnrichedObject is a single debris object after enrichment, shaped for the
// visualization frontend.
//
// ID and Epoch pass through from the raw record untouched (Space-Track emits
// them as strings; absent fields serialize as null). Altitude is kilometers
// above the surface, Velocity a display-scaled figure derived from mean
// motion, not a physical speed.
type EnrichedObject struct {
	ID         interface{} `json:"id"`
	Name       string      `json:"name"`
	Country    string      `json:"country"`
	Altitude   int         `json:"altitude"`
	Velocity   float64     `json:"velocity"`
	RiskLevel  RiskLevel   `json:"risk_level"`
	OrbitType  OrbitType   `json:"orbit_type"`
	Size       string      `json:"size"`
	LaunchDate string      `json:"launch_date"`
	Epoch      interface{} `json:"epoch"`
}

// CatalogSnapshot is one complete fetch-and-enrich pass over the catalog.
// Snapshots are what the cache stores and the API serves; FetchedAt is the
// upstream fetch time, so cached responses report data freshness rather than
// request time.
type CatalogSnapshot struct {
	Objects   []EnrichedObject `json:"objects"`
	FetchedAt time.Time        `json:"fetched_at"`
}

// TotalCount returns the number of successfully enriched objects in the snapshot.
func (s *CatalogSnapshot) TotalCount() int {
	return len(s.Objects)
}
