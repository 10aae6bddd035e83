// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package sentiment provides the oracles that map a synopsis to a compound
// sentiment score in [-1, 1].
//
//   - Lexicon: local VADER scoring (no network)
//   - Remote: HTTP scoring service behind a circuit breaker and rate limiter
//   - Cached: LRU memoization around any oracle
//   - Fallback: primary oracle with a secondary on failure
//
// All oracles satisfy recommend.SentimentOracle.
package sentiment

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/jonreiter/govader"

	"github.com/tomtom215/marquee/internal/metrics"
)

// Lexicon scores text with VADER: the full valence lexicon and emoji table
// plus its negation, booster, capitalization, "but" and punctuation rules.
// It is deterministic and safe for concurrent use.
type Lexicon struct {
	mu       sync.Mutex
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewLexicon loads the VADER lexicon. Loading parses the embedded word
// list, so callers should build one Lexicon and share it.
func NewLexicon() *Lexicon {
	return &Lexicon{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements recommend.SentimentOracle. It never fails.
func (lx *Lexicon) Score(_ context.Context, text string) (float64, error) {
	start := time.Now()
	score := lx.Compound(text)
	metrics.RecordSentiment(BackendLexicon, time.Since(start), nil)
	return score, nil
}

// Compound returns VADER's normalized compound score of text, clamped to
// [-1, 1].
func (lx *Lexicon) Compound(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	lx.mu.Lock()
	s := lx.analyzer.PolarityScores(text)
	lx.mu.Unlock()

	if math.IsNaN(s.Compound) {
		return 0
	}
	return math.Max(-1, math.Min(1, s.Compound))
}
