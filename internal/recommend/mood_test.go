// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import "testing"

func TestRecommendByMood(t *testing.T) {
	scored := mustScores(t, fixtureMovies())

	tests := []struct {
		mood Mood
		want []string // unordered
	}{
		{MoodHappy, []string{"Laugh Riot", "Toon Town", "Space Comedy"}},
		{MoodSad, []string{"Quiet Letters", "Le Voyage"}},
		{MoodAdventurous, []string{"Sky Quest"}},
		{MoodTense, []string{"Dark Water", "Heist Night"}},
		{MoodRomantic, []string{"Quiet Letters", "Le Voyage"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			res := RecommendByMood(scored, tt.mood, DefaultTopN)
			got := titleSet(res.Movies)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", titles(res.Movies), tt.want)
			}
			for _, w := range tt.want {
				if _, ok := got[w]; !ok {
					t.Errorf("missing %q", w)
				}
			}
			for i := 1; i < len(res.Movies); i++ {
				if res.Movies[i-1].TopsisScore < res.Movies[i].TopsisScore {
					t.Errorf("not sorted at %d", i)
				}
			}
		})
	}

	t.Run("happy requires positive sentiment", func(t *testing.T) {
		movies := mustScores(t, []Movie{
			movie("Bright", 7, 100, 0.5, "Comedy"),
			movie("Edge", 7, 100, 0.1, "Comedy"),
			movie("Gloomy", 7, 100, -0.5, "Family"),
		})
		res := RecommendByMood(movies, MoodHappy, DefaultTopN)
		if got := titles(res.Movies); !equalStrings(got, []string{"Bright"}) {
			t.Errorf("got %v, want [Bright]", got)
		}
	})

	t.Run("genre membership is exact", func(t *testing.T) {
		movies := mustScores(t, []Movie{
			movie("Dramatic", 7, 100, -0.5, "Docudrama"),
		})
		res := RecommendByMood(movies, MoodSad, DefaultTopN)
		if !res.Empty() {
			t.Errorf("got %v, want empty", titles(res.Movies))
		}
	})

	t.Run("unknown mood matches nothing", func(t *testing.T) {
		res := RecommendByMood(scored, Mood("Sleepy"), DefaultTopN)
		if !res.Empty() {
			t.Errorf("got %v, want empty", titles(res.Movies))
		}
		if res.Warning == nil || res.Warning.Kind != "mood" {
			t.Errorf("Warning = %v, want mood warning", res.Warning)
		}
	})
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		in   string
		want Mood
		ok   bool
	}{
		{"Happy", MoodHappy, true},
		{"tense", MoodTense, true},
		{" ROMANTIC ", MoodRomantic, true},
		{"", Mood(""), false},
		{"Sleepy", Mood("Sleepy"), false},
	}
	for _, tt := range tests {
		got, ok := ParseMood(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMood(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMoodRuleIsCopy(t *testing.T) {
	r := MoodHappy.Rule()
	r.Genres[0] = "Horror"
	if MoodHappy.Rule().Genres[0] != "Comedy" {
		t.Error("Rule() exposes the shared table")
	}
}
