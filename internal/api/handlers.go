// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package api serves the movie scoring HTTP API.
//
// Every query endpoint reads the snapshot active at request start and
// answers from it alone; a concurrent rebuild never mixes two snapshots
// into one response. The snapshot id is returned in metadata.snapshot_id.
//
// Routes (all under /api/v1):
//
//	GET  /health/live                 liveness
//	GET  /health/ready                503 until the first snapshot is built
//	GET  /movies/top?n=15             compact top-N listing
//	GET  /movies/filter?genre=...     lenient query-string preferences
//	POST /movies/filter               typed JSON preferences, validated
//	GET  /movies/mood/{mood}          mood recommendation
//	GET  /movies/mood                 no mood selected: top-N
//	POST /movies/chat                 free-text query
//	GET  /snapshot                    active snapshot info
//	POST /snapshot/rescore            re-weight without reloading
//	POST /snapshot/rebuild            reload dataset and re-score
package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/recommend"
)

// HandlerConfig tunes request handling.
type HandlerConfig struct {
	// MaxBodyBytes caps JSON request bodies. Default: 1MB
	MaxBodyBytes int64

	// RebuildTimeout bounds POST /snapshot/rebuild. Default: 10m
	RebuildTimeout time.Duration
}

// Handler serves all API endpoints.
type Handler struct {
	manager *recommend.Manager
	engine  *recommend.Engine
	config  HandlerConfig
	logger  zerolog.Logger

	startTime time.Time
}

// NewHandler creates a new API handler.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(manager *recommend.Manager, engine *recommend.Engine, cfg HandlerConfig, logger zerolog.Logger) *Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.RebuildTimeout <= 0 {
		cfg.RebuildTimeout = 10 * time.Minute
	}
	return &Handler{
		manager:   manager,
		engine:    engine,
		config:    cfg,
		logger:    logger.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
}

func (h *Handler) store() *recommend.SnapshotStore {
	return h.manager.Store()
}
