// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package api

// DebrisRequest represents validated query parameters for the debris
// catalog endpoint. Limit bounds the number of tracked objects requested
// from the upstream catalog within a single fetch.
type DebrisRequest struct {
	Limit int `json:"limit" validate:"min=1,max=10000"`
}
