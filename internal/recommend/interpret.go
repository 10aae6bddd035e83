// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultChatMinRating is the rating floor used when free text names none.
const DefaultChatMinRating = 6.0

// GenreVocabulary is the ordered keyword list the free-text interpreter
// scans. Order is priority: the first keyword found in the text wins,
// regardless of where it appears. Only one genre is ever extracted.
var GenreVocabulary = []string{
	"action", "comedy", "drama", "thriller", "romance",
	"horror", "adventure", "animation", "fantasy", "crime",
}

var ratingPattern = regexp.MustCompile(`rating\s*(\d+(\.\d+)?)`)

// textRule derives one field of Preferences from lower-cased text.
// It reports whether it matched.
type textRule struct {
	name  string
	apply func(text string, p *Preferences) bool
}

// freeTextRules run in order. Each field has its own rule; within the genre
// rule the vocabulary order decides.
var freeTextRules = []textRule{
	{name: "genre", apply: extractGenre},
	{name: "min_rating", apply: extractRating},
}

func extractGenre(text string, p *Preferences) bool {
	for _, kw := range GenreVocabulary {
		if strings.Contains(text, kw) {
			p.Genre = kw
			return true
		}
	}
	return false
}

func extractRating(text string, p *Preferences) bool {
	m := ratingPattern.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	v, ok := ParseFloat(m[1])
	if !ok {
		return false
	}
	p.MinRating = &v
	return true
}

// InterpretFreeText derives a genre and rating floor from natural language.
// MinRating is always set: to the number following "rating" when present,
// otherwise to DefaultChatMinRating. Genre stays empty when no vocabulary
// keyword occurs verbatim ("romantic" does not match "romance").
func InterpretFreeText(text string) Preferences {
	lower := strings.ToLower(text)

	var p Preferences
	for _, r := range freeTextRules {
		r.apply(lower, &p)
	}
	if p.MinRating == nil {
		p.MinRating = Float(DefaultChatMinRating)
	}
	return p
}

// RawPreferences carries unparsed user input, as received from query
// strings or CLI flags.
type RawPreferences struct {
	Genre        string
	Language     string
	MinRating    string
	MinSentiment string
	MinRuntime   string
	MaxRuntime   string
	ReleaseYear  string
	TopN         string
}

// ParseRawPreferences converts raw input into Preferences. Any numeric
// value that fails to parse is treated as an absent constraint.
func ParseRawPreferences(raw RawPreferences) Preferences {
	p := Preferences{
		Genre:    strings.TrimSpace(raw.Genre),
		Language: strings.TrimSpace(raw.Language),
	}
	if v, ok := ParseFloat(raw.MinRating); ok {
		p.MinRating = &v
	}
	if v, ok := ParseFloat(raw.MinSentiment); ok {
		p.MinSentiment = &v
	}
	if v, ok := ParseInt(raw.MinRuntime); ok {
		p.MinRuntime = &v
	}
	if v, ok := ParseInt(raw.MaxRuntime); ok {
		p.MaxRuntime = &v
	}
	if v, ok := ParseInt(raw.ReleaseYear); ok {
		p.ReleaseYear = &v
	}
	if v, ok := ParseInt(raw.TopN); ok && v > 0 {
		p.TopN = v
	}
	return p
}

// InterpretStructured forwards already-typed preferences unchanged.
func InterpretStructured(p Preferences) Preferences {
	return p
}

// ParseFloat parses a finite decimal, reporting false on any failure.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseInt parses a base-10 integer, reporting false on any failure.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
