// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package models

// DataSourceName identifies the catalog provider in every successful debris
// response. The frontend displays it verbatim.
const DataSourceName = "Space-Track.org (Official US Space Force)"

// UpstreamErrorMessage is the fixed error body returned for any upstream
// failure, authentication or fetch alike. The frontend matches on this exact
// string; the auth/fetch distinction is carried in logs and metrics instead.
const UpstreamErrorMessage = "Failed to fetch real space data"

// ClockFormat renders times the way the frontend expects: wall-clock
// HH:MM:SS with no date component.
const ClockFormat = "15:04:05"

// DebrisResponse is the payload of GET /api/debris.
//
// LastUpdated is the snapshot's upstream fetch time in HH:MM:SS form, so a
// cached response reports how fresh the data is rather than when it was
// served.
//
// Example:
//
//	{
//	  "total_count": 2,
//	  "objects": [
//	    {
//	      "id": "25544",
//	      "name": "ISS (ZARYA)",
//	      "country": "ISS",
//	      "altitude": 415,
//	      "velocity": 1.55,
//	      "risk_level": "MEDIUM",
//	      "orbit_type": "LEO",
//	      "size": "LARGE",
//	      "launch_date": "1998-11-20",
//	      "epoch": "2026-08-25T06:21:18"
//	    }
//	  ],
//	  "last_updated": "14:22:05",
//	  "data_source": "Space-Track.org (Official US Space Force)"
//	}
type DebrisResponse struct {
	TotalCount  int              `json:"total_count"`
	Objects     []EnrichedObject `json:"objects"`
	LastUpdated string           `json:"last_updated"`
	DataSource  string           `json:"data_source"`
}

// ErrorResponse is the payload of any failed request, served with HTTP 500
// for upstream failures and HTTP 400 for invalid parameters.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the payload of GET /health. Message and Timestamp carry
// the same HH:MM:SS wall-clock time; the frontend shows Message directly.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
