// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/kessler/internal/models"
)

// Health handles health check requests
//
// @Summary Get relay health status
// @Description Returns liveness status with a human-readable message and the current wall-clock time
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.HealthResponse "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	now := time.Now().Format(models.ClockFormat)

	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:    "healthy",
		Message:   "Backend active at " + now,
		Timestamp: now,
	})
}
