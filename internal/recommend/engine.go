// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Note: This package has no dependencies on other internal packages.
// The SentimentOracle and MovieSource interfaces let the sentiment and
// dataset packages plug in without circular imports.

// Engine builds scored snapshots. It is safe for concurrent use.
type Engine struct {
	config *Config
	oracle SentimentOracle
	logger zerolog.Logger

	builds      atomic.Int64
	failures    atomic.Int64
	oracleCalls atomic.Int64

	statsMu   sync.RWMutex
	lastBuild time.Duration
	lastSize  int
}

// Stats reports engine activity counters. Builds counts every attempt,
// including ones that failed while loading, so Failures never exceeds it.
type Stats struct {
	Builds        int64         `json:"builds"`
	Failures      int64         `json:"failures"`
	OracleCalls   int64         `json:"oracle_calls"`
	LastBuild     time.Duration `json:"last_build_ns"`
	LastBuildSize int           `json:"last_build_size"`
}

// NewEngine creates a new scoring engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, oracle SentimentOracle, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if oracle == nil {
		return nil, fmt.Errorf("sentiment oracle is required")
	}

	return &Engine{
		config: cfg.Clone(),
		oracle: oracle,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Stats returns a point-in-time copy of the counters.
func (e *Engine) Stats() Stats {
	e.statsMu.RLock()
	defer e.statsMu.RUnlock()
	return Stats{
		Builds:        e.builds.Load(),
		Failures:      e.failures.Load(),
		OracleCalls:   e.oracleCalls.Load(),
		LastBuild:     e.lastBuild,
		LastBuildSize: e.lastSize,
	}
}

// Load fetches movies from src and builds a snapshot from them.
func (e *Engine) Load(ctx context.Context, src MovieSource) (*Snapshot, error) {
	movies, err := src.LoadMovies(ctx)
	if err != nil {
		e.builds.Add(1)
		e.failures.Add(1)
		return nil, fmt.Errorf("load movies: %w", err)
	}
	return e.BuildSnapshot(ctx, movies)
}

// BuildSnapshot attaches sentiment to every movie, calling the oracle
// exactly once per movie, then scores the whole set. The input slice is
// not modified.
func (e *Engine) BuildSnapshot(ctx context.Context, movies []Movie) (*Snapshot, error) {
	return e.BuildSnapshotWith(ctx, movies, e.config.Scoring)
}

// BuildSnapshotWith is BuildSnapshot with explicit scoring weights.
func (e *Engine) BuildSnapshotWith(ctx context.Context, movies []Movie, scoring ScoringConfig) (*Snapshot, error) {
	start := time.Now()
	e.builds.Add(1)

	snap, err := e.build(ctx, movies, scoring)
	if err != nil {
		e.failures.Add(1)
		e.logger.Error().Err(err).Int("movies", len(movies)).Msg("snapshot build failed")
		return nil, err
	}

	elapsed := time.Since(start)
	e.statsMu.Lock()
	e.lastBuild = elapsed
	e.lastSize = snap.Len()
	e.statsMu.Unlock()

	e.logger.Info().
		Str("snapshot_id", snap.ID()).
		Int("movies", snap.Len()).
		Dur("duration", elapsed).
		Msg("snapshot built")

	return snap, nil
}

func (e *Engine) build(ctx context.Context, movies []Movie, scoring ScoringConfig) (*Snapshot, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyDataset
	}
	if err := scoring.Validate(); err != nil {
		return nil, err
	}

	withSentiment, err := e.attachSentiment(ctx, movies)
	if err != nil {
		return nil, err
	}

	scored, err := ComputeScores(withSentiment, scoring)
	if err != nil {
		return nil, fmt.Errorf("compute scores: %w", err)
	}

	return newSnapshot(scored, scoring, e.config.Limits), nil
}

// attachSentiment scores each overview with bounded concurrency.
// Results are written by index, so output order matches input order.
// Oracle output is range-checked here whatever the scoring criteria, so a
// later rescore that adds sentiment never meets an invalid score.
func (e *Engine) attachSentiment(ctx context.Context, movies []Movie) ([]Movie, error) {
	out := make([]Movie, len(movies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Build.SentimentConcurrency)

	for i := range movies {
		out[i] = movies[i].clone()
		g.Go(func() error {
			score, err := e.oracle.Score(gctx, out[i].Overview)
			e.oracleCalls.Add(1)
			if err != nil {
				return fmt.Errorf("sentiment for %q: %w", out[i].Title, err)
			}
			if reason := invalidReason(CriterionSentiment, score); reason != "" {
				return &DataValidationError{
					Criterion: CriterionSentiment,
					Index:     i,
					Title:     out[i].Title,
					Value:     score,
					Reason:    reason,
				}
			}
			out[i].SentimentScore = score
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
