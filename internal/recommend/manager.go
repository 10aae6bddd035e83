// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrBusy is returned when a rebuild or rescore is already running.
var ErrBusy = errors.New("snapshot rebuild in progress")

// Build kinds reported to a BuildObserver.
const (
	BuildKindFull    = "build"
	BuildKindRescore = "rescore"
)

// BuildObserver is told about every finished build or rescore. snap is
// nil when err is set.
type BuildObserver func(kind string, duration time.Duration, snap *Snapshot, err error)

// Manager owns the rebuild lifecycle of a SnapshotStore: load, score and
// swap. At most one rebuild or rescore runs at a time; readers are never
// blocked.
type Manager struct {
	engine  *Engine
	source  MovieSource
	store   *SnapshotStore
	observe BuildObserver
	logger  zerolog.Logger

	mu      sync.Mutex
	scoring ScoringConfig
}

// NewManager creates a manager. observe may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(engine *Engine, source MovieSource, store *SnapshotStore, observe BuildObserver, logger zerolog.Logger) *Manager {
	if store == nil {
		store = NewSnapshotStore(nil)
	}
	if observe == nil {
		observe = func(string, time.Duration, *Snapshot, error) {}
	}
	return &Manager{
		engine:  engine,
		source:  source,
		store:   store,
		observe: observe,
		logger:  logger.With().Str("component", "snapshot-manager").Logger(),
		scoring: engine.Config().Scoring,
	}
}

// Store returns the store this manager swaps into.
func (m *Manager) Store() *SnapshotStore {
	return m.store
}

// Scoring returns the weights the next rebuild will use. It starts as the
// engine's configured weights and follows every successful rescore.
func (m *Manager) Scoring() ScoringConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoring.Clone()
}

// Rebuild reloads the source, scores it and installs the result.
// Returns ErrBusy if another rebuild or rescore holds the lock.
func (m *Manager) Rebuild(ctx context.Context) (*Snapshot, error) {
	if !m.mu.TryLock() {
		return nil, ErrBusy
	}
	defer m.mu.Unlock()

	start := time.Now()
	snap, err := m.rebuild(ctx)
	m.observe(BuildKindFull, time.Since(start), snap, err)
	if err != nil {
		return nil, err
	}

	prev := m.store.Swap(snap)
	m.logSwap(BuildKindFull, prev, snap)
	return snap, nil
}

func (m *Manager) rebuild(ctx context.Context) (*Snapshot, error) {
	movies, err := m.source.LoadMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	return m.engine.BuildSnapshotWith(ctx, movies, m.scoring)
}

// Rescore re-weights the current snapshot without reloading or calling
// the sentiment oracle, then installs the result.
func (m *Manager) Rescore(scoring ScoringConfig) (*Snapshot, error) {
	if !m.mu.TryLock() {
		return nil, ErrBusy
	}
	defer m.mu.Unlock()

	start := time.Now()
	snap, err := m.rescore(scoring)
	m.observe(BuildKindRescore, time.Since(start), snap, err)
	if err != nil {
		return nil, err
	}

	m.scoring = scoring.Clone()
	prev := m.store.Swap(snap)
	m.logSwap(BuildKindRescore, prev, snap)
	return snap, nil
}

func (m *Manager) rescore(scoring ScoringConfig) (*Snapshot, error) {
	if err := scoring.Validate(); err != nil {
		return nil, err
	}
	current, err := m.store.Current()
	if err != nil {
		return nil, err
	}
	return current.Rescore(scoring)
}

func (m *Manager) logSwap(kind string, prev, next *Snapshot) {
	event := m.logger.Info().
		Str("kind", kind).
		Str("snapshot_id", next.ID()).
		Int("movies", next.Len()).
		Floats64("weights", next.Scoring().Weights)
	if prev != nil {
		event = event.Str("previous_id", prev.ID())
	}
	event.Msg("snapshot installed")
}
