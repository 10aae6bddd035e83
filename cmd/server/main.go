// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/marquee/docs" // Import generated swagger docs
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/supervisor"
)

// @title Marquee API
// @version 1.0
// @description Ranks a movie catalogue with TOPSIS and serves filtered, mood-based and free-text recommendations.
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and readiness checks
//
// @tag.name Movies
// @tag.description Ranked, filtered, mood and free-text recommendations
//
// @tag.name Snapshot
// @tag.description Inspect, re-weight and rebuild the scored snapshot
func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("marquee exited")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("dataset", cfg.Dataset.Path).
		Str("sentiment_backend", cfg.Sentiment.Backend).
		Strs("criteria", cfg.Scoring.Criteria).
		Floats64("weights", cfg.Scoring.Weights).
		Dur("refresh_interval", cfg.Recommend.RefreshInterval).
		Msg("configuration loaded")
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("rate limiting disabled by DISABLE_RATE_LIMIT")
	}

	a, err := newApp(cfg, logging.Logger())
	if err != nil {
		return err
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	tree.AddDataService(a.snapshot)
	tree.AddAPIService(a.http)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", a.server.Addr).Msg("marquee starting")
	err = tree.Serve(ctx)

	if report, _ := tree.UnstoppedServiceReport(); len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("service did not stop before the shutdown timeout")
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	logging.Info().Msg("marquee stopped")
	return nil
}
