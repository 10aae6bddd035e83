// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

func (h *Handler) snapshotStatus(snap *recommend.Snapshot) models.SnapshotStatus {
	return models.SnapshotStatus{
		SnapshotInfo: snap.Info(),
		Swaps:        h.store().Swaps(),
		Engine:       h.engine.Stats(),
	}
}

// SnapshotInfo describes the active snapshot: id, build time, movie count,
// criteria and weights.
//
// @Summary Active snapshot
// @Tags Snapshot
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SnapshotStatus}
// @Failure 503 {object} models.APIResponse "No snapshot yet"
// @Router /snapshot [get]
func (h *Handler) SnapshotInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()
	snap, _, ok := h.currentSnapshot(w, r)
	if !ok {
		return
	}

	respondSuccess(w, h.snapshotStatus(snap), snap.ID(), start)
}

// SnapshotRescore re-weights the active snapshot. Sentiment is reused, so
// this is cheap; the rescored snapshot replaces the active one and its
// weights are kept for later rebuilds.
//
// @Summary Re-weight the active snapshot
// @Tags Snapshot
// @Accept json
// @Produce json
// @Param request body models.RescoreRequest true "Criteria and weights"
// @Success 200 {object} models.APIResponse{data=models.SnapshotStatus}
// @Failure 400 {object} models.APIResponse "Invalid weights"
// @Failure 503 {object} models.APIResponse "No snapshot yet"
// @Router /snapshot/rescore [post]
func (h *Handler) SnapshotRescore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()

	var req models.RescoreRequest
	if err := decodeJSON(w, r, h.config.MaxBodyBytes, &req); err != nil {
		respondDecodeError(w, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	scoring, err := h.rescoreConfig(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_WEIGHTS", err.Error(), nil)
		return
	}

	snap, err := h.manager.Rescore(scoring)
	if err != nil {
		h.respondBuildError(w, err)
		return
	}

	respondSuccess(w, h.snapshotStatus(snap), snap.ID(), start)
}

// rescoreConfig resolves criteria names, defaulting to the criteria the
// manager currently scores with.
func (h *Handler) rescoreConfig(req *models.RescoreRequest) (recommend.ScoringConfig, error) {
	scoring := recommend.ScoringConfig{
		Criteria: h.manager.Scoring().Criteria,
		Weights:  append([]float64(nil), req.Weights...),
	}
	if len(req.Criteria) > 0 {
		scoring.Criteria = make([]recommend.Criterion, len(req.Criteria))
		for i, name := range req.Criteria {
			c, err := recommend.ParseCriterion(name)
			if err != nil {
				return recommend.ScoringConfig{}, err
			}
			scoring.Criteria[i] = c
		}
	}
	return scoring, scoring.Validate()
}

// SnapshotRebuild reloads the dataset, re-runs sentiment and scoring, and
// installs the result. Queries keep being served from the previous
// snapshot until the swap. Only one rebuild runs at a time; a concurrent
// request gets 409.
//
// @Summary Rebuild the snapshot from the dataset
// @Tags Snapshot
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SnapshotStatus}
// @Failure 409 {object} models.APIResponse "Rebuild already running"
// @Failure 422 {object} models.APIResponse "Dataset failed validation"
// @Router /snapshot/rebuild [post]
func (h *Handler) SnapshotRebuild(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RebuildTimeout)
	defer cancel()

	requestID := logging.RequestIDFromContext(ctx)
	h.logger.Info().Str("request_id", requestID).Msg("snapshot rebuild requested")

	snap, err := h.manager.Rebuild(ctx)
	if err != nil {
		h.respondBuildError(w, err)
		return
	}

	h.logger.Info().
		Str("request_id", requestID).
		Str("snapshot_id", snap.ID()).
		Dur("duration", time.Since(start)).
		Msg("snapshot rebuild finished")

	respondSuccess(w, h.snapshotStatus(snap), snap.ID(), start)
}

func (h *Handler) respondBuildError(w http.ResponseWriter, err error) {
	var dataErr *recommend.DataValidationError
	switch {
	case errors.Is(err, recommend.ErrBusy):
		respondError(w, http.StatusConflict, "REBUILD_IN_PROGRESS", "A snapshot rebuild is already running", nil)
	case errors.Is(err, recommend.ErrNoSnapshot):
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "No snapshot has been built yet", nil)
	case errors.Is(err, recommend.ErrInvalidWeights):
		respondError(w, http.StatusBadRequest, "INVALID_WEIGHTS", err.Error(), nil)
	case errors.As(err, &dataErr):
		respondError(w, http.StatusUnprocessableEntity, "DATA_VALIDATION_ERROR", dataErr.Error(), err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "REBUILD_TIMEOUT", "Snapshot rebuild timed out", err)
	default:
		respondError(w, http.StatusInternalServerError, "REBUILD_FAILED", "Snapshot rebuild failed", err)
	}
}
