// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend implements the movie scoring and ranking engine.
//
// # Architecture
//
// The engine turns heterogeneous per-movie signals into a single ordering:
//
//   - Score Engine: min-max normalization plus TOPSIS closeness over
//     vote_average, vote_count and sentiment_score (see ComputeScores)
//   - Preference Filter: AND-composed optional predicates (see Filter)
//   - Query Interpreters: structured parameters and a free-text rule
//     engine that both produce Preferences
//   - Mood Mapper: a fixed mood table composed with the filter
//
// # Snapshots
//
// A Snapshot is produced once per session by Engine.BuildSnapshot: the
// sentiment oracle is called exactly once per movie, then every movie is
// scored against the whole dataset. Scores are corpus-relative, so a
// snapshot is never patched; Rescore and BuildSnapshot always produce a new
// value. Every query (TopN, Filter, RecommendByMood, Chat) works on copies
// and never mutates the snapshot, so concurrent readers need no locking.
//
// SnapshotStore is the explicit handle callers pass around to swap in a
// rebuilt snapshot. There is no process-wide cache.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), oracle, logger)
//	snap, err := engine.BuildSnapshot(ctx, movies)
//
//	top := snap.TopN(15)
//	res := snap.Filter(recommend.Preferences{Genre: "comedy", MinRating: recommend.Float(7)})
//	res = snap.RecommendByMood(recommend.MoodHappy)
//	prefs, res := snap.Chat("a crime drama with rating 7.5")
//
// # Ranking
//
// Ranking is always topsis_score descending with a stable sort, so movies
// with equal scores keep their input order.
package recommend
