// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func newTestEngine(t *testing.T, oracle SentimentOracle) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), oracle, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewEngine(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		e, err := NewEngine(nil, newMockOracle(nil), zerolog.Nop())
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		if e.Config().Limits.DefaultTopN != DefaultTopN {
			t.Errorf("DefaultTopN = %d", e.Config().Limits.DefaultTopN)
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Scoring.Weights = []float64{1}
		if _, err := NewEngine(cfg, newMockOracle(nil), zerolog.Nop()); err == nil {
			t.Error("expected error for misaligned weights")
		}
	})

	t.Run("nil oracle rejected", func(t *testing.T) {
		if _, err := NewEngine(nil, nil, zerolog.Nop()); err == nil {
			t.Error("expected error for nil oracle")
		}
	})
}

func TestBuildSnapshot(t *testing.T) {
	movies := []Movie{
		movie("A", 9, 1000, 0),
		movie("B", 5, 1000, 0),
		movie("C", 5, 1000, 0),
	}
	oracle := newMockOracle(map[string]float64{
		"A overview": 0.8,
		"B overview": 0.0,
		"C overview": 0.0,
	})
	e := newTestEngine(t, oracle)

	snap, err := e.BuildSnapshot(context.Background(), movies)
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}

	t.Run("oracle called once per movie", func(t *testing.T) {
		if got := oracle.totalCalls(); got != len(movies) {
			t.Errorf("oracle calls = %d, want %d", got, len(movies))
		}
		if got := e.Stats().OracleCalls; got != int64(len(movies)) {
			t.Errorf("Stats().OracleCalls = %d, want %d", got, len(movies))
		}
	})

	t.Run("sentiment attached in input order", func(t *testing.T) {
		got := snap.Movies()
		if got[0].SentimentScore != 0.8 || got[1].SentimentScore != 0 {
			t.Errorf("sentiment = %v, %v", got[0].SentimentScore, got[1].SentimentScore)
		}
		if !equalStrings(titles(got), []string{"A", "B", "C"}) {
			t.Errorf("order = %v", titles(got))
		}
	})

	t.Run("input not modified", func(t *testing.T) {
		if movies[0].SentimentScore != 0 || movies[0].TopsisScore != 0 {
			t.Errorf("input modified: %+v", movies[0])
		}
	})

	t.Run("top ranking", func(t *testing.T) {
		top := snap.TopN(0)
		if !equalStrings(titles(top), []string{"A", "B", "C"}) {
			t.Errorf("TopN = %v, want [A B C]", titles(top))
		}
	})

	t.Run("snapshot metadata", func(t *testing.T) {
		info := snap.Info()
		if info.ID == "" || info.Movies != 3 {
			t.Errorf("Info() = %+v", info)
		}
		if len(info.Criteria) != 3 || info.Criteria[0] != "vote_average" {
			t.Errorf("Criteria = %v", info.Criteria)
		}
	})
}

func TestBuildSnapshotErrors(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		e := newTestEngine(t, newMockOracle(nil))
		if _, err := e.BuildSnapshot(context.Background(), nil); !errors.Is(err, ErrEmptyDataset) {
			t.Errorf("error = %v, want ErrEmptyDataset", err)
		}
		if e.Stats().Failures != 1 {
			t.Errorf("Failures = %d, want 1", e.Stats().Failures)
		}
	})

	t.Run("oracle failure", func(t *testing.T) {
		oracle := newMockOracle(nil)
		oracle.err = errOracleDown
		e := newTestEngine(t, oracle)
		_, err := e.BuildSnapshot(context.Background(), fixtureMovies())
		if !errors.Is(err, errOracleDown) {
			t.Errorf("error = %v, want errOracleDown", err)
		}
	})

	t.Run("oracle out of range", func(t *testing.T) {
		oracle := newMockOracle(map[string]float64{"Laugh Riot overview": 3})
		e := newTestEngine(t, oracle)
		_, err := e.BuildSnapshot(context.Background(), fixtureMovies())
		var dve *DataValidationError
		if !errors.As(err, &dve) {
			t.Errorf("error = %v, want *DataValidationError", err)
		}
	})

	t.Run("oracle out of range without sentiment criterion", func(t *testing.T) {
		oracle := newMockOracle(map[string]float64{"Laugh Riot overview": -1.5})
		e := newTestEngine(t, oracle)
		votesOnly := ScoringConfig{
			Criteria: []Criterion{CriterionVoteAverage, CriterionVoteCount},
			Weights:  []float64{0.5, 0.5},
		}
		_, err := e.BuildSnapshotWith(context.Background(), fixtureMovies(), votesOnly)
		var dve *DataValidationError
		if !errors.As(err, &dve) {
			t.Fatalf("error = %v, want *DataValidationError", err)
		}
		if dve.Criterion != CriterionSentiment || dve.Title != "Laugh Riot" {
			t.Errorf("DataValidationError = %+v", dve)
		}
	})

	t.Run("source failure", func(t *testing.T) {
		e := newTestEngine(t, newMockOracle(nil))
		srcErr := errors.New("disk gone")
		if _, err := e.Load(context.Background(), &mockSource{err: srcErr}); !errors.Is(err, srcErr) {
			t.Errorf("error = %v, want %v", err, srcErr)
		}
		if st := e.Stats(); st.Builds != 1 || st.Failures != 1 {
			t.Errorf("Stats() = builds %d, failures %d, want 1 and 1", st.Builds, st.Failures)
		}
	})
}

func TestEngineLoad(t *testing.T) {
	e := newTestEngine(t, newMockOracle(nil))
	snap, err := e.Load(context.Background(), &mockSource{movies: fixtureMovies()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Len() != len(fixtureMovies()) {
		t.Errorf("Len() = %d", snap.Len())
	}
}

func TestSnapshotRescore(t *testing.T) {
	e := newTestEngine(t, newMockOracle(nil))
	snap, err := e.BuildSnapshot(context.Background(), []Movie{
		movie("Popular", 6, 9000, 0),
		movie("Acclaimed", 9, 100, 0),
	})
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}
	if got := snap.TopN(1)[0].Title; got != "Acclaimed" {
		t.Fatalf("default top = %s, want Acclaimed", got)
	}

	rescored, err := snap.Rescore(ScoringConfig{
		Criteria: []Criterion{CriterionVoteAverage, CriterionVoteCount, CriterionSentiment},
		Weights:  []float64{0.1, 0.8, 0.1},
	})
	if err != nil {
		t.Fatalf("Rescore() error = %v", err)
	}

	if got := rescored.TopN(1)[0].Title; got != "Popular" {
		t.Errorf("rescored top = %s, want Popular", got)
	}
	if got := snap.TopN(1)[0].Title; got != "Acclaimed" {
		t.Errorf("original snapshot changed: top = %s", got)
	}
	if rescored.ID() == snap.ID() {
		t.Error("rescore should produce a new snapshot id")
	}

	if _, err := snap.Rescore(ScoringConfig{Criteria: []Criterion{CriterionVoteAverage}, Weights: []float64{0.9}}); !errors.Is(err, ErrInvalidWeights) {
		t.Errorf("error = %v, want ErrInvalidWeights", err)
	}
}

func TestSnapshotQueries(t *testing.T) {
	oracle := newMockOracle(nil)
	for _, m := range fixtureMovies() {
		oracle.scores[m.Overview] = m.SentimentScore
	}
	e := newTestEngine(t, oracle)
	snap, err := e.BuildSnapshot(context.Background(), fixtureMovies())
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}

	t.Run("chat echoes preferences", func(t *testing.T) {
		prefs, res := snap.Chat("any thriller with rating 7")
		if prefs.Genre != "thriller" || *prefs.MinRating != 7 {
			t.Errorf("prefs = %+v", prefs)
		}
		if got := titles(res.Movies); !equalStrings(got, []string{"Heist Night"}) {
			t.Errorf("got %v, want [Heist Night]", got)
		}
	})

	t.Run("chat empty result warns", func(t *testing.T) {
		_, res := snap.Chat("horror rating 9")
		if !res.Empty() || res.Warning == nil || res.Warning.Kind != "chat" {
			t.Errorf("res = %+v", res)
		}
	})

	t.Run("filter clamps top n", func(t *testing.T) {
		res := snap.Filter(Preferences{TopN: 100000})
		if len(res.Movies) != snap.Len() {
			t.Errorf("len = %d, want %d", len(res.Movies), snap.Len())
		}
	})

	t.Run("mood", func(t *testing.T) {
		res := snap.RecommendByMood(MoodTense)
		if len(res.Movies) != 2 {
			t.Errorf("got %v", titles(res.Movies))
		}
	})
}

func TestSnapshotConcurrentReads(t *testing.T) {
	e := newTestEngine(t, newMockOracle(nil))
	snap, err := e.BuildSnapshot(context.Background(), fixtureMovies())
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}
	want := titles(snap.TopN(0))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := snap.Filter(Preferences{Genre: "a"})
			for j := range res.Movies {
				res.Movies[j].TopsisScore = -1
			}
			_ = snap.RecommendByMood(MoodHappy)
			_, _ = snap.Chat("drama")
		}()
	}
	wg.Wait()

	if got := titles(snap.TopN(0)); !equalStrings(got, want) {
		t.Errorf("snapshot changed under concurrent reads: %v", got)
	}
}

func TestSnapshotStore(t *testing.T) {
	store := NewSnapshotStore(nil)
	if store.Ready() {
		t.Error("empty store should not be ready")
	}
	if _, err := store.Current(); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("error = %v, want ErrNoSnapshot", err)
	}

	e := newTestEngine(t, newMockOracle(nil))
	first, _ := e.BuildSnapshot(context.Background(), fixtureMovies())
	second, _ := e.BuildSnapshot(context.Background(), fixtureMovies())

	if prev := store.Swap(first); prev != nil {
		t.Errorf("first Swap returned %v, want nil", prev)
	}
	if prev := store.Swap(second); prev != first {
		t.Error("second Swap should return the first snapshot")
	}
	cur, err := store.Current()
	if err != nil || cur != second {
		t.Errorf("Current() = %v, %v", cur, err)
	}
	if store.Swaps() != 2 {
		t.Errorf("Swaps() = %d, want 2", store.Swaps())
	}
}
