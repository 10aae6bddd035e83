// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable, fully scored dataset.
// All methods are safe for concurrent use and return copies.
type Snapshot struct {
	id      string
	builtAt time.Time
	scoring ScoringConfig
	limits  LimitsConfig

	// movies is in load order with sentiment and scores attached.
	movies []Movie
}

// SnapshotInfo describes a snapshot without its rows.
type SnapshotInfo struct {
	ID       string    `json:"id"`
	BuiltAt  time.Time `json:"built_at"`
	Movies   int       `json:"movies"`
	Criteria []string  `json:"criteria"`
	Weights  []float64 `json:"weights"`
}

func newSnapshot(movies []Movie, scoring ScoringConfig, limits LimitsConfig) *Snapshot {
	return &Snapshot{
		id:      uuid.NewString(),
		builtAt: time.Now(),
		scoring: scoring.Clone(),
		limits:  limits,
		movies:  movies,
	}
}

// ID uniquely identifies this build.
func (s *Snapshot) ID() string { return s.id }

// BuiltAt is when scoring finished.
func (s *Snapshot) BuiltAt() time.Time { return s.builtAt }

// Len returns the number of movies.
func (s *Snapshot) Len() int { return len(s.movies) }

// Scoring returns a copy of the scoring configuration used for this build.
func (s *Snapshot) Scoring() ScoringConfig { return s.scoring.Clone() }

// Info summarizes the snapshot.
func (s *Snapshot) Info() SnapshotInfo {
	names := make([]string, len(s.scoring.Criteria))
	for i, c := range s.scoring.Criteria {
		names[i] = c.String()
	}
	return SnapshotInfo{
		ID:       s.id,
		BuiltAt:  s.builtAt,
		Movies:   len(s.movies),
		Criteria: names,
		Weights:  append([]float64(nil), s.scoring.Weights...),
	}
}

// Movies returns a copy of every movie in load order.
func (s *Snapshot) Movies() []Movie {
	out := make([]Movie, len(s.movies))
	for i := range s.movies {
		out[i] = s.movies[i].clone()
	}
	return out
}

// TopN returns the n best-scoring movies.
func (s *Snapshot) TopN(n int) []Movie {
	return TopN(s.movies, s.limits.clampTopN(n))
}

// Filter applies prefs to the snapshot.
func (s *Snapshot) Filter(prefs Preferences) Result {
	prefs.TopN = s.limits.clampTopN(prefs.TopN)
	return Filter(s.movies, prefs)
}

// RecommendByMood ranks the movies matching mood.
func (s *Snapshot) RecommendByMood(mood Mood) Result {
	return RecommendByMood(s.movies, mood, s.limits.DefaultTopN)
}

// Chat interprets free text and filters the snapshot with the result.
// The interpreted preferences are returned so callers can echo them.
func (s *Snapshot) Chat(text string) (Preferences, Result) {
	prefs := InterpretFreeText(text)
	prefs.TopN = s.limits.DefaultTopN

	res := Filter(s.movies, prefs)
	if res.Warning != nil {
		res.Warning = emptyWarning("chat")
	}
	return prefs, res
}

// Rescore recomputes every score with different weights. Sentiment is
// reused, so no oracle calls are made. The receiver is left untouched.
func (s *Snapshot) Rescore(scoring ScoringConfig) (*Snapshot, error) {
	scored, err := ComputeScores(s.movies, scoring)
	if err != nil {
		return nil, err
	}
	return newSnapshot(scored, scoring, s.limits), nil
}
