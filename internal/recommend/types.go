// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"context"
	"strings"
)

// Movie is one cleaned dataset row.
type Movie struct {
	// Title is unique after deduplication.
	Title string `json:"title"`

	// VoteAverage is the audience rating (observed 0-10).
	VoteAverage float64 `json:"vote_average"`

	// VoteCount is the number of votes behind VoteAverage.
	VoteCount int `json:"vote_count"`

	// Overview is the synopsis fed to the sentiment oracle.
	Overview string `json:"overview,omitempty"`

	// SentimentScore is the oracle's compound score in [-1, 1].
	// Attached once per snapshot build.
	SentimentScore float64 `json:"sentiment_score"`

	// Genres is the ordered genre list (may be empty).
	Genres []string `json:"genres_list"`

	// OriginalLanguage is a short language code such as "en".
	OriginalLanguage string `json:"original_language,omitempty"`

	// Runtime is the length in minutes, nil when unknown.
	Runtime *int `json:"runtime,omitempty"`

	// ReleaseYear is nil when unknown.
	ReleaseYear *int `json:"release_year,omitempty"`

	// TopsisScore is derived by the Score Engine, in [0, 1].
	TopsisScore float64 `json:"topsis_score"`
}

// GenreText renders the genre list as the lower-cased text that genre
// substring predicates match against.
func (m *Movie) GenreText() string {
	return strings.ToLower(strings.Join(m.Genres, ", "))
}

// HasGenre reports whether any genre equals name, ignoring case.
func (m *Movie) HasGenre(name string) bool {
	for _, g := range m.Genres {
		if strings.EqualFold(g, name) {
			return true
		}
	}
	return false
}

// clone returns a copy that shares no mutable state with m.
func (m *Movie) clone() Movie {
	c := *m
	if m.Genres != nil {
		c.Genres = append([]string(nil), m.Genres...)
	}
	if m.Runtime != nil {
		v := *m.Runtime
		c.Runtime = &v
	}
	if m.ReleaseYear != nil {
		v := *m.ReleaseYear
		c.ReleaseYear = &v
	}
	return c
}

// Listing is the compact projection used by top-N views.
type Listing struct {
	Title          string  `json:"title"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`
	SentimentScore float64 `json:"sentiment_score"`
	TopsisScore    float64 `json:"topsis_score"`
}

// Listings projects movies to their compact view.
func Listings(movies []Movie) []Listing {
	out := make([]Listing, len(movies))
	for i := range movies {
		out[i] = Listing{
			Title:          movies[i].Title,
			VoteAverage:    movies[i].VoteAverage,
			VoteCount:      movies[i].VoteCount,
			SentimentScore: movies[i].SentimentScore,
			TopsisScore:    movies[i].TopsisScore,
		}
	}
	return out
}

// Result is a ranked subsequence of a snapshot.
// An empty match set is a valid outcome: Movies is empty and Warning is set.
type Result struct {
	Movies  []Movie             `json:"movies"`
	Warning *EmptyResultWarning `json:"warning,omitempty"`
}

// Empty reports whether the query matched nothing.
func (r Result) Empty() bool {
	return len(r.Movies) == 0
}

// SentimentOracle maps free text to a compound sentiment score in [-1, 1].
// Implementations live in the sentiment package.
type SentimentOracle interface {
	Score(ctx context.Context, text string) (float64, error)
}

// MovieSource supplies a cleaned sequence of movies.
// This is typically implemented by the dataset package.
type MovieSource interface {
	LoadMovies(ctx context.Context) ([]Movie, error)
}

// Int returns a pointer to v, for optional fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for optional fields.
func Float(v float64) *float64 { return &v }
