// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"sort"
	"strings"
)

// Preferences holds the optional predicates of a filter query.
// A nil pointer or empty string imposes no constraint.
type Preferences struct {
	// Genre is matched as a case-insensitive substring of the genre text,
	// so "com" matches "Comedy".
	Genre string `json:"genre,omitempty"`

	// Language is matched case-insensitively and exactly against
	// original_language.
	Language string `json:"language,omitempty"`

	MinRating    *float64 `json:"min_rating,omitempty"`
	MinSentiment *float64 `json:"min_sentiment,omitempty"`

	// MinRuntime and MaxRuntime are inclusive. Movies with unknown runtime
	// are excluded when either bound is set.
	MinRuntime *int `json:"min_runtime,omitempty"`
	MaxRuntime *int `json:"max_runtime,omitempty"`

	ReleaseYear *int `json:"release_year,omitempty"`

	// TopN truncates the ranked result. Zero means DefaultTopN.
	TopN int `json:"top_n,omitempty"`
}

// IsZero reports whether no predicate is set.
func (p Preferences) IsZero() bool {
	return p.Genre == "" && p.Language == "" &&
		p.MinRating == nil && p.MinSentiment == nil &&
		p.MinRuntime == nil && p.MaxRuntime == nil &&
		p.ReleaseYear == nil
}

// Match reports whether m satisfies every supplied predicate.
func (p Preferences) Match(m *Movie) bool {
	if p.Genre != "" && !strings.Contains(m.GenreText(), strings.ToLower(p.Genre)) {
		return false
	}
	if p.Language != "" && !strings.EqualFold(m.OriginalLanguage, p.Language) {
		return false
	}
	if p.MinRating != nil && m.VoteAverage < *p.MinRating {
		return false
	}
	if p.MinSentiment != nil && m.SentimentScore < *p.MinSentiment {
		return false
	}
	if p.MinRuntime != nil || p.MaxRuntime != nil {
		if m.Runtime == nil {
			return false
		}
		if p.MinRuntime != nil && *m.Runtime < *p.MinRuntime {
			return false
		}
		if p.MaxRuntime != nil && *m.Runtime > *p.MaxRuntime {
			return false
		}
	}
	if p.ReleaseYear != nil && (m.ReleaseYear == nil || *m.ReleaseYear != *p.ReleaseYear) {
		return false
	}
	return true
}

// Filter keeps the movies matching prefs, ranks them by topsis_score
// descending and truncates to prefs.TopN. The input is never modified.
func Filter(movies []Movie, prefs Preferences) Result {
	return selectRanked(movies, prefs.Match, prefs.TopN, "filter")
}

// Rank returns a copy of movies ordered by topsis_score descending.
// Equal scores keep their input order.
func Rank(movies []Movie) []Movie {
	out := make([]Movie, len(movies))
	for i := range movies {
		out[i] = movies[i].clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TopsisScore > out[j].TopsisScore
	})
	return out
}

// TopN returns the n highest-scoring movies. n <= 0 means DefaultTopN.
func TopN(movies []Movie, n int) []Movie {
	return truncate(Rank(movies), n)
}

func selectRanked(movies []Movie, keep func(*Movie) bool, topN int, kind string) Result {
	matched := make([]Movie, 0, len(movies))
	for i := range movies {
		if keep(&movies[i]) {
			matched = append(matched, movies[i])
		}
	}

	ranked := truncate(Rank(matched), topN)
	if len(ranked) == 0 {
		return Result{Movies: ranked, Warning: emptyWarning(kind)}
	}
	return Result{Movies: ranked}
}

func truncate(movies []Movie, n int) []Movie {
	if n <= 0 {
		n = DefaultTopN
	}
	if len(movies) > n {
		return movies[:n]
	}
	return movies
}
