// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import "strings"

// Mood is a label from the fixed mood table.
type Mood string

// Supported moods.
const (
	MoodHappy       Mood = "Happy"
	MoodSad         Mood = "Sad"
	MoodAdventurous Mood = "Adventurous"
	MoodTense       Mood = "Tense"
	MoodRomantic    Mood = "Romantic"
)

// moodSentimentThreshold splits positive from non-positive synopses.
const moodSentimentThreshold = 0.1

// MoodRule pairs a genre set with a sentiment predicate.
type MoodRule struct {
	Genres []string `json:"genres"`

	// Positive selects sentiment above the threshold; otherwise sentiment
	// strictly below it is selected.
	Positive bool `json:"positive"`
}

var moodTable = map[Mood]MoodRule{
	MoodHappy:       {Genres: []string{"Comedy", "Family", "Animation"}, Positive: true},
	MoodSad:         {Genres: []string{"Drama", "Romance"}},
	MoodAdventurous: {Genres: []string{"Action", "Adventure", "Fantasy"}},
	MoodTense:       {Genres: []string{"Thriller", "Mystery", "Crime"}},
	MoodRomantic:    {Genres: []string{"Romance", "Drama"}},
}

// Moods lists the supported moods in display order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodAdventurous, MoodTense, MoodRomantic}
}

// ParseMood matches a label case-insensitively. ok is false for unknown
// or empty labels.
func ParseMood(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	for _, m := range Moods() {
		if strings.EqualFold(string(m), s) {
			return m, true
		}
	}
	return Mood(s), false
}

// Rule returns the mood's genre set and sentiment predicate. Unknown moods
// get an empty genre set, which matches nothing.
func (m Mood) Rule() MoodRule {
	r, ok := moodTable[m]
	if !ok {
		return MoodRule{}
	}
	return MoodRule{Genres: append([]string(nil), r.Genres...), Positive: r.Positive}
}

// Match reports whether mv falls under the rule.
func (r MoodRule) Match(mv *Movie) bool {
	if r.Positive {
		if mv.SentimentScore <= moodSentimentThreshold {
			return false
		}
	} else if mv.SentimentScore >= moodSentimentThreshold {
		return false
	}
	for _, g := range r.Genres {
		if mv.HasGenre(g) {
			return true
		}
	}
	return false
}

// RecommendByMood keeps movies whose genres intersect the mood's genre set
// and whose sentiment satisfies its predicate, ranked and truncated to topN.
// An unknown mood yields an empty result with a warning.
func RecommendByMood(movies []Movie, mood Mood, topN int) Result {
	return selectRanked(movies, mood.Rule().Match, topN, "mood")
}
