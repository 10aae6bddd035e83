// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/sentiment"
	"github.com/tomtom215/marquee/internal/supervisor/services"
)

// app holds the wired components before they are handed to the supervisor.
type app struct {
	manager  *recommend.Manager
	server   *http.Server
	snapshot *services.SnapshotService
	http     *services.HTTPServerService
}

// newApp wires config into the oracle, loader, engine, manager and router.
// Nothing is started.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func newApp(cfg *config.Config, logger zerolog.Logger) (*app, error) {
	oracle, err := sentiment.New(cfg.SentimentOptions(), logger)
	if err != nil {
		return nil, fmt.Errorf("sentiment oracle: %w", err)
	}

	loader, err := dataset.NewLoader(cfg.LoaderConfig(), logger)
	if err != nil {
		return nil, fmt.Errorf("dataset loader: %w", err)
	}

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	engine, err := recommend.NewEngine(engineCfg, oracle, logger)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	manager := recommend.NewManager(engine, loader, nil, recordBuild, logger)

	handler := api.NewHandler(manager, engine, api.HandlerConfig{
		MaxBodyBytes:   cfg.Security.MaxBodyBytes,
		RebuildTimeout: cfg.Recommend.RebuildTimeout,
	}, logger)
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg)), cfg.Server.Timeout)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	return &app{
		manager: manager,
		server:  server,
		snapshot: services.NewSnapshotService(manager, services.SnapshotServiceConfig{
			RefreshInterval: cfg.Recommend.RefreshInterval,
			BuildTimeout:    cfg.Recommend.RebuildTimeout,
		}, logger),
		http: services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger),
	}, nil
}

// middlewareConfig maps the security section onto the router middleware.
func middlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = append([]string(nil), cfg.Security.CORSOrigins...)
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}

// recordBuild feeds snapshot builds into the Prometheus collectors.
func recordBuild(kind string, duration time.Duration, snap *recommend.Snapshot, err error) {
	var (
		movies  int
		builtAt time.Time
	)
	if snap != nil {
		movies = snap.Len()
		builtAt = snap.BuiltAt()
	}
	metrics.RecordSnapshotBuild(kind, duration, movies, builtAt, err)
}
