// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/recommend"
)

// SnapshotBuilder rebuilds and installs the active snapshot.
// Satisfied by *recommend.Manager.
type SnapshotBuilder interface {
	Rebuild(ctx context.Context) (*recommend.Snapshot, error)
	Store() *recommend.SnapshotStore
}

// SnapshotServiceConfig holds configuration for the snapshot service.
type SnapshotServiceConfig struct {
	// RefreshInterval reloads the dataset periodically. Zero disables
	// scheduled refresh; the snapshot then changes only on explicit
	// rebuild or rescore requests.
	RefreshInterval time.Duration

	// BuildTimeout bounds a single build. Default: 30m
	BuildTimeout time.Duration

	// RetryInterval is the first delay after a failed initial build. It
	// doubles up to MaxRetryInterval. Default: 5s
	RetryInterval time.Duration

	// MaxRetryInterval caps the retry delay. Default: 5m
	MaxRetryInterval time.Duration
}

// SnapshotService builds the first snapshot at startup, retrying until it
// succeeds, then optionally refreshes it on a schedule.
type SnapshotService struct {
	builder SnapshotBuilder
	config  SnapshotServiceConfig
	logger  zerolog.Logger
	name    string
}

// NewSnapshotService creates a new snapshot service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotService(builder SnapshotBuilder, cfg SnapshotServiceConfig, logger zerolog.Logger) *SnapshotService {
	if cfg.BuildTimeout <= 0 {
		cfg.BuildTimeout = 30 * time.Minute
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 5 * time.Second
	}
	if cfg.MaxRetryInterval <= 0 {
		cfg.MaxRetryInterval = 5 * time.Minute
	}
	if cfg.MaxRetryInterval < cfg.RetryInterval {
		cfg.MaxRetryInterval = cfg.RetryInterval
	}
	return &SnapshotService{
		builder: builder,
		config:  cfg,
		logger:  logger.With().Str("service", "snapshot").Logger(),
		name:    "snapshot-service",
	}
}

// Serve implements suture.Service.
func (s *SnapshotService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("snapshot service starting")

	if err := s.initialBuild(ctx); err != nil {
		return err
	}

	if s.config.RefreshInterval <= 0 {
		<-ctx.Done()
		s.logger.Info().Msg("snapshot service shutting down")
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("snapshot service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.logger.Debug().Msg("scheduled refresh triggered")
			if err := s.build(ctx); err != nil {
				if errors.Is(err, recommend.ErrBusy) {
					s.logger.Debug().Msg("scheduled refresh skipped, rebuild already running")
					continue
				}
				s.logger.Warn().Err(err).Msg("scheduled refresh failed, keeping current snapshot")
			}
		}
	}
}

// initialBuild retries with exponential backoff until a snapshot is
// installed or ctx is canceled. ErrBusy means another rebuild holds the
// lock; that rebuild can still fail, so the loop keeps going until the
// store is ready.
func (s *SnapshotService) initialBuild(ctx context.Context) error {
	delay := s.config.RetryInterval
	for attempt := 1; ; attempt++ {
		if attempt > 1 && s.builder.Store().Ready() {
			s.logger.Info().Int("attempt", attempt).Msg("snapshot installed by another rebuild")
			return nil
		}

		err := s.build(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if errors.Is(err, recommend.ErrBusy) {
			s.logger.Debug().
				Int("attempt", attempt).
				Dur("retry_in", delay).
				Msg("initial snapshot build deferred, rebuild already running")
		} else {
			s.logger.Error().
				Err(err).
				Int("attempt", attempt).
				Dur("retry_in", delay).
				Msg("initial snapshot build failed")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > s.config.MaxRetryInterval {
			delay = s.config.MaxRetryInterval
		}
	}
}

func (s *SnapshotService) build(ctx context.Context) error {
	buildCtx, cancel := context.WithTimeout(ctx, s.config.BuildTimeout)
	defer cancel()

	start := time.Now()
	snap, err := s.builder.Rebuild(buildCtx)
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("snapshot_id", snap.ID()).
		Int("movies", snap.Len()).
		Dur("duration", time.Since(start)).
		Msg("snapshot ready")
	return nil
}

// String returns the service name for logging.
func (s *SnapshotService) String() string {
	return s.name
}
