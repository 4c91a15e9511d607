// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/kessler/internal/cache"
	"github.com/tomtom215/kessler/internal/models"
)

// GetDebris handles debris catalog requests
//
// @Summary Get tracked debris catalog
// @Description Fetches the live debris catalog from Space-Track.org, enriches each record with derived orbital attributes, and returns the full snapshot. Snapshots are cached briefly to protect upstream rate limits.
// @Tags Debris
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of objects to fetch (1-10000)" default(10000)
// @Success 200 {object} models.DebrisResponse "Debris catalog retrieved successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} models.ErrorResponse "Upstream catalog unavailable"
// @Router /api/debris [get]
func (h *Handler) GetDebris(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	limit := getIntParam(r, "limit", h.config.API.FetchLimit)

	if msg := validateRequest(&DebrisRequest{Limit: limit}); msg != "" {
		respondError(w, http.StatusBadRequest, msg, nil)
		return
	}

	if maxLimit := h.config.API.MaxFetchLimit; maxLimit > 0 && limit > maxLimit {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("limit exceeds maximum of %d", maxLimit), nil)
		return
	}

	cacheKey := cache.GenerateKey("debris", limit)
	if h.cacheEnabled() {
		if snapshot, ok := h.cache.GetSnapshot(cacheKey); ok {
			h.respondCatalog(w, snapshot)
			return
		}
	}

	records, err := h.client.FetchRecords(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, models.UpstreamErrorMessage, err)
		return
	}

	// An empty catalog means the upstream query failed silently. The relay
	// never fabricates fallback data, so surface it as an upstream failure.
	if len(records) == 0 {
		respondError(w, http.StatusInternalServerError, models.UpstreamErrorMessage, nil)
		return
	}

	snapshot := &models.CatalogSnapshot{
		Objects:   h.pipeline.Enrich(records),
		FetchedAt: time.Now(),
	}

	if h.cacheEnabled() {
		h.cache.SetSnapshot(cacheKey, snapshot)
	}

	h.respondCatalog(w, snapshot)
}

// cacheEnabled reports whether snapshot caching is both configured and wired.
func (h *Handler) cacheEnabled() bool {
	return h.cache != nil && h.config != nil && h.config.Cache.Enabled
}

// respondCatalog writes a catalog snapshot in the fixed wire shape the
// frontend expects. LastUpdated reflects when the snapshot was fetched from
// upstream, not when this request was served, so cached responses advertise
// their true freshness.
func (h *Handler) respondCatalog(w http.ResponseWriter, snapshot *models.CatalogSnapshot) {
	objects := snapshot.Objects
	if objects == nil {
		objects = []models.EnrichedObject{}
	}

	respondJSON(w, http.StatusOK, &models.DebrisResponse{
		TotalCount:  snapshot.TotalCount(),
		Objects:     objects,
		LastUpdated: snapshot.FetchedAt.Format(models.ClockFormat),
		DataSource:  models.DataSourceName,
	})
}
