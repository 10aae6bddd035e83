// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/models"
)

type liveness struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime"` // seconds
}

type readiness struct {
	Ready  bool `json:"ready"`
	Movies int  `json:"movies,omitempty"`
}

func onlyGET(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	return false
}

// HealthLive answers 200 while the process runs, snapshot or not.
//
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if !onlyGET(w, r) {
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     liveness{Alive: true, Uptime: time.Since(h.startTime).Seconds()},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady answers 503 NOT_READY until the first snapshot is installed.
// Load balancers should route on this probe rather than HealthLive.
//
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "A snapshot is installed"
// @Failure 503 {object} models.APIResponse "No snapshot yet"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !onlyGET(w, r) {
		return
	}

	snap, err := h.store().Current()
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status:   "error",
			Data:     readiness{},
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    &models.APIError{Code: "NOT_READY", Message: "No snapshot has been built yet"},
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     readiness{Ready: true, Movies: snap.Len()},
		Metadata: models.Metadata{Timestamp: time.Now(), SnapshotID: snap.ID()},
	})
}
