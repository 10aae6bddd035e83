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
)

// mockOracle returns a fixed score per overview and counts calls.
type mockOracle struct {
	mu     sync.Mutex
	scores map[string]float64
	calls  map[string]int
	err    error
}

func newMockOracle(scores map[string]float64) *mockOracle {
	if scores == nil {
		scores = make(map[string]float64)
	}
	return &mockOracle{scores: scores, calls: make(map[string]int)}
}

func (m *mockOracle) Score(ctx context.Context, text string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[text]++
	if m.err != nil {
		return 0, m.err
	}
	return m.scores[text], nil
}

func (m *mockOracle) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		n += c
	}
	return n
}

// mockSource implements MovieSource for testing.
type mockSource struct {
	movies []Movie
	err    error
}

func (m *mockSource) LoadMovies(ctx context.Context) ([]Movie, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.movies, nil
}

var errOracleDown = errors.New("oracle down")

func movie(title string, avg float64, count int, sentiment float64, genres ...string) Movie {
	return Movie{
		Title:            title,
		VoteAverage:      avg,
		VoteCount:        count,
		Overview:         title + " overview",
		SentimentScore:   sentiment,
		Genres:           genres,
		OriginalLanguage: "en",
	}
}

func mustScores(t *testing.T, movies []Movie) []Movie {
	t.Helper()
	out, err := ComputeScores(movies, DefaultScoringConfig())
	if err != nil {
		t.Fatalf("ComputeScores() error = %v", err)
	}
	return out
}

func titles(movies []Movie) []string {
	out := make([]string, len(movies))
	for i := range movies {
		out[i] = movies[i].Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func titleSet(movies []Movie) map[string]struct{} {
	set := make(map[string]struct{}, len(movies))
	for i := range movies {
		set[movies[i].Title] = struct{}{}
	}
	return set
}

// fixtureMovies is a small catalogue covering every filter dimension.
func fixtureMovies() []Movie {
	ms := []Movie{
		movie("Laugh Riot", 7.8, 1200, 0.6, "Comedy", "Family"),
		movie("Dark Water", 6.1, 300, -0.7, "Thriller", "Mystery"),
		movie("Sky Quest", 8.4, 5000, -0.2, "Action", "Adventure", "Fantasy"),
		movie("Quiet Letters", 7.2, 800, -0.1, "Drama", "Romance"),
		movie("Toon Town", 6.8, 2100, 0.4, "Animation", "Family"),
		movie("Le Voyage", 7.0, 150, 0.05, "Drama"),
		movie("Heist Night", 7.5, 3400, -0.4, "Crime", "Thriller"),
		movie("Space Comedy", 5.2, 90, 0.3, "Comedy", "Science Fiction"),
	}
	ms[0].Runtime, ms[0].ReleaseYear = Int(95), Int(2019)
	ms[1].Runtime, ms[1].ReleaseYear = Int(110), Int(2021)
	ms[2].Runtime, ms[2].ReleaseYear = Int(142), Int(2019)
	ms[3].Runtime = Int(120)
	ms[4].Runtime, ms[4].ReleaseYear = Int(88), Int(2015)
	ms[5].OriginalLanguage = "fr"
	ms[5].ReleaseYear = Int(2019)
	ms[6].Runtime, ms[6].ReleaseYear = Int(128), Int(2021)
	ms[7].OriginalLanguage = "EN"
	return ms
}
