// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import "sync/atomic"

// SnapshotStore holds the current snapshot. Readers get a stable pointer
// and keep using it even after a swap.
type SnapshotStore struct {
	current atomic.Pointer[Snapshot]
	swaps   atomic.Int64
}

// NewSnapshotStore creates a store, optionally seeded with snap.
func NewSnapshotStore(snap *Snapshot) *SnapshotStore {
	s := &SnapshotStore{}
	if snap != nil {
		s.current.Store(snap)
	}
	return s
}

// Current returns the active snapshot or ErrNoSnapshot.
func (s *SnapshotStore) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// Swap installs snap and returns the previous one (nil if none).
func (s *SnapshotStore) Swap(snap *Snapshot) *Snapshot {
	s.swaps.Add(1)
	return s.current.Swap(snap)
}

// Ready reports whether a snapshot has been installed.
func (s *SnapshotStore) Ready() bool {
	return s.current.Load() != nil
}

// Swaps returns how many times a snapshot has been installed.
func (s *SnapshotStore) Swaps() int64 {
	return s.swaps.Load()
}
