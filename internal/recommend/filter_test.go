// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"
	"testing"
)

func TestFilter(t *testing.T) {
	scored := mustScores(t, fixtureMovies())

	tests := []struct {
		name  string
		prefs Preferences
		want  []string // unordered
	}{
		{
			name:  "no predicates passes everything",
			prefs: Preferences{},
			want:  []string{"Laugh Riot", "Dark Water", "Sky Quest", "Quiet Letters", "Toon Town", "Le Voyage", "Heist Night", "Space Comedy"},
		},
		{
			name:  "genre substring",
			prefs: Preferences{Genre: "Com"},
			want:  []string{"Laugh Riot", "Space Comedy"},
		},
		{
			name:  "genre spans joined text",
			prefs: Preferences{Genre: "science fic"},
			want:  []string{"Space Comedy"},
		},
		{
			name:  "language is case-insensitive exact",
			prefs: Preferences{Language: "FR"},
			want:  []string{"Le Voyage"},
		},
		{
			name:  "language does not match prefix",
			prefs: Preferences{Language: "e"},
			want:  []string{},
		},
		{
			name:  "min rating inclusive",
			prefs: Preferences{MinRating: Float(7.5)},
			want:  []string{"Laugh Riot", "Sky Quest", "Heist Night"},
		},
		{
			name:  "min sentiment",
			prefs: Preferences{MinSentiment: Float(0.3)},
			want:  []string{"Laugh Riot", "Toon Town", "Space Comedy"},
		},
		{
			name:  "runtime bounds inclusive and exclude unknown",
			prefs: Preferences{MinRuntime: Int(95), MaxRuntime: Int(128)},
			want:  []string{"Laugh Riot", "Dark Water", "Quiet Letters", "Heist Night"},
		},
		{
			name:  "max runtime alone excludes unknown",
			prefs: Preferences{MaxRuntime: Int(100)},
			want:  []string{"Laugh Riot", "Toon Town"},
		},
		{
			name:  "release year exact",
			prefs: Preferences{ReleaseYear: Int(2019)},
			want:  []string{"Laugh Riot", "Sky Quest", "Le Voyage"},
		},
		{
			name:  "combined predicates",
			prefs: Preferences{Genre: "thriller", MinRating: Float(7), ReleaseYear: Int(2021)},
			want:  []string{"Heist Night"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Filter(scored, tt.prefs)
			got := titleSet(res.Movies)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", titles(res.Movies), tt.want)
			}
			for _, w := range tt.want {
				if _, ok := got[w]; !ok {
					t.Errorf("missing %q in %v", w, titles(res.Movies))
				}
			}
			if len(tt.want) == 0 && res.Warning == nil {
				t.Error("empty result should carry a warning")
			}
			if len(tt.want) > 0 && res.Warning != nil {
				t.Errorf("unexpected warning %v", res.Warning)
			}
		})
	}
}

func TestFilterANDComposition(t *testing.T) {
	scored := mustScores(t, fixtureMovies())

	both := titleSet(Filter(scored, Preferences{MinRating: Float(7), Language: "en"}).Movies)
	rating := titleSet(Filter(scored, Preferences{MinRating: Float(7)}).Movies)
	lang := titleSet(Filter(scored, Preferences{Language: "en"}).Movies)

	want := make(map[string]struct{})
	for k := range rating {
		if _, ok := lang[k]; ok {
			want[k] = struct{}{}
		}
	}

	if len(both) != len(want) {
		t.Fatalf("combined = %v, intersection = %v", both, want)
	}
	for k := range want {
		if _, ok := both[k]; !ok {
			t.Errorf("missing %q from combined result", k)
		}
	}
}

func TestFilterRankingAndTruncation(t *testing.T) {
	scored := mustScores(t, fixtureMovies())

	t.Run("sorted descending", func(t *testing.T) {
		res := Filter(scored, Preferences{})
		for i := 1; i < len(res.Movies); i++ {
			if res.Movies[i-1].TopsisScore < res.Movies[i].TopsisScore {
				t.Errorf("position %d (%v) < position %d (%v)", i-1, res.Movies[i-1].TopsisScore, i, res.Movies[i].TopsisScore)
			}
		}
	})

	t.Run("top n truncates", func(t *testing.T) {
		res := Filter(scored, Preferences{TopN: 3})
		if len(res.Movies) != 3 {
			t.Errorf("len = %d, want 3", len(res.Movies))
		}
	})

	t.Run("default top n is fifteen", func(t *testing.T) {
		many := make([]Movie, 40)
		for i := range many {
			many[i] = movie(fmt.Sprintf("M%02d", i), float64(i%10), i*10, 0)
		}
		res := Filter(mustScores(t, many), Preferences{})
		if len(res.Movies) != DefaultTopN {
			t.Errorf("len = %d, want %d", len(res.Movies), DefaultTopN)
		}
	})

	t.Run("snapshot slice is not mutated", func(t *testing.T) {
		before := titles(scored)
		res := Filter(scored, Preferences{})
		res.Movies[0].Title = "changed"
		res.Movies[0].Genres[0] = "changed"
		if !equalStrings(titles(scored), before) {
			t.Errorf("input order changed: %v", titles(scored))
		}
		for _, m := range scored {
			if m.Title == "changed" || (len(m.Genres) > 0 && m.Genres[0] == "changed") {
				t.Error("result shares state with input")
			}
		}
	})
}

func TestRankStable(t *testing.T) {
	movies := []Movie{
		{Title: "first", TopsisScore: 0.5},
		{Title: "top", TopsisScore: 0.9},
		{Title: "second", TopsisScore: 0.5},
		{Title: "third", TopsisScore: 0.5},
	}
	got := titles(Rank(movies))
	want := []string{"top", "first", "second", "third"}
	if !equalStrings(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestPreferencesIsZero(t *testing.T) {
	if !(Preferences{TopN: 5}).IsZero() {
		t.Error("TopN alone should not count as a predicate")
	}
	if (Preferences{MinRuntime: Int(0)}).IsZero() {
		t.Error("MinRuntime set should not be zero")
	}
}
