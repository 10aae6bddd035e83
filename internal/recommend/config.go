// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"
	"math"
	"strings"
)

// Criterion identifies one numeric scoring input.
type Criterion int

const (
	// CriterionVoteAverage is the movie's vote_average.
	CriterionVoteAverage Criterion = iota
	// CriterionVoteCount is the movie's vote_count.
	CriterionVoteCount
	// CriterionSentiment is the movie's sentiment_score.
	CriterionSentiment
)

// String returns the column name of the criterion.
func (c Criterion) String() string {
	switch c {
	case CriterionVoteAverage:
		return "vote_average"
	case CriterionVoteCount:
		return "vote_count"
	case CriterionSentiment:
		return "sentiment_score"
	default:
		return "unknown"
	}
}

// ParseCriterion maps a column name to its Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vote_average":
		return CriterionVoteAverage, nil
	case "vote_count":
		return CriterionVoteCount, nil
	case "sentiment_score", "sentiment":
		return CriterionSentiment, nil
	default:
		return 0, fmt.Errorf("unknown criterion %q", s)
	}
}

// value extracts the criterion from a movie.
func (c Criterion) value(m *Movie) float64 {
	switch c {
	case CriterionVoteAverage:
		return m.VoteAverage
	case CriterionVoteCount:
		return float64(m.VoteCount)
	case CriterionSentiment:
		return m.SentimentScore
	default:
		return math.NaN()
	}
}

// weightSumTolerance absorbs float rounding in user-supplied weights.
const weightSumTolerance = 1e-9

// DefaultTopN is the default truncation for every ranked query.
const DefaultTopN = 15

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Scoring defines the TOPSIS criteria and their weights.
	Scoring ScoringConfig `json:"scoring"`

	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits"`

	// Build controls snapshot construction.
	Build BuildConfig `json:"build"`
}

// BuildConfig controls snapshot construction.
type BuildConfig struct {
	// SentimentConcurrency bounds in-flight oracle calls.
	// Default: 4.
	SentimentConcurrency int `json:"sentiment_concurrency"`
}

// ScoringConfig pairs criteria with positional weights.
// All criteria are benefit criteria (higher is better).
type ScoringConfig struct {
	// Criteria lists the columns used for scoring, in weight order.
	Criteria []Criterion `json:"criteria"`

	// Weights must align with Criteria and sum to 1.0.
	// Default: [0.4, 0.3, 0.3].
	Weights []float64 `json:"weights"`
}

// LimitsConfig contains result size limits.
type LimitsConfig struct {
	// DefaultTopN is applied when a query does not set its own size.
	// Default: 15.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps any requested size.
	// Default: 500.
	MaxTopN int `json:"max_top_n"`
}

// DefaultScoringConfig returns the standard criteria and weights.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Criteria: []Criterion{CriterionVoteAverage, CriterionVoteCount, CriterionSentiment},
		Weights:  []float64{0.4, 0.3, 0.3},
	}
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: DefaultScoringConfig(),
		Limits: LimitsConfig{
			DefaultTopN: DefaultTopN,
			MaxTopN:     500,
		},
		Build: BuildConfig{
			SentimentConcurrency: 4,
		},
	}
}

// Validate checks that weights align positionally with criteria, are
// finite and non-negative, and sum to 1.0.
func (s ScoringConfig) Validate() error {
	if len(s.Criteria) == 0 {
		return fmt.Errorf("%w: no criteria", ErrInvalidWeights)
	}
	if len(s.Weights) != len(s.Criteria) {
		return fmt.Errorf("%w: %d weights for %d criteria", ErrInvalidWeights, len(s.Weights), len(s.Criteria))
	}

	seen := make(map[Criterion]struct{}, len(s.Criteria))
	for _, c := range s.Criteria {
		if c.String() == "unknown" {
			return fmt.Errorf("%w: unknown criterion %d", ErrInvalidWeights, int(c))
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate criterion %s", ErrInvalidWeights, c)
		}
		seen[c] = struct{}{}
	}

	sum := 0.0
	for i, w := range s.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: weight %d is %v", ErrInvalidWeights, i, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1.0", ErrInvalidWeights, sum)
	}
	return nil
}

// Clone returns a deep copy.
func (s ScoringConfig) Clone() ScoringConfig {
	return ScoringConfig{
		Criteria: append([]Criterion(nil), s.Criteria...),
		Weights:  append([]float64(nil), s.Weights...),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if c.Limits.DefaultTopN < 1 {
		return fmt.Errorf("limits.default_top_n must be positive, got %d", c.Limits.DefaultTopN)
	}
	if c.Limits.MaxTopN < c.Limits.DefaultTopN {
		return fmt.Errorf("limits.max_top_n must be >= limits.default_top_n, got %d < %d",
			c.Limits.MaxTopN, c.Limits.DefaultTopN)
	}
	if c.Build.SentimentConcurrency < 1 {
		return fmt.Errorf("build.sentiment_concurrency must be positive, got %d", c.Build.SentimentConcurrency)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	return &Config{
		Scoring: c.Scoring.Clone(),
		Limits:  c.Limits,
		Build:   c.Build,
	}
}

// clampTopN applies the default and the cap.
func (l LimitsConfig) clampTopN(n int) int {
	if n <= 0 {
		n = l.DefaultTopN
	}
	if l.MaxTopN > 0 && n > l.MaxTopN {
		n = l.MaxTopN
	}
	return n
}
