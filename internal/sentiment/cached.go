// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package sentiment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/metrics"
)

// Scorer is any sentiment oracle.
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// Cached memoizes an oracle by exact text. Errors are not cached.
type Cached struct {
	next Scorer
	lru  *cache.LRU[string, float64]
}

// NewCached wraps next with an LRU of the given capacity and TTL.
func NewCached(next Scorer, capacity int, ttl time.Duration) *Cached {
	return &Cached{
		next: next,
		lru:  cache.NewLRU[string, float64](capacity, ttl),
	}
}

// Score implements recommend.SentimentOracle.
func (c *Cached) Score(ctx context.Context, text string) (float64, error) {
	if v, ok := c.lru.Get(text); ok {
		metrics.SentimentCacheHits.Inc()
		return v, nil
	}
	metrics.SentimentCacheMisses.Inc()

	v, err := c.next.Score(ctx, text)
	if err != nil {
		return 0, err
	}
	c.lru.Add(text, v)
	return v, nil
}

// Stats exposes the cache counters.
func (c *Cached) Stats() cache.Stats {
	return c.lru.Stats()
}

// Fallback answers from Secondary whenever Primary fails.
type Fallback struct {
	Primary   Scorer
	Secondary Scorer
	Logger    zerolog.Logger
}

// Score implements recommend.SentimentOracle.
func (f *Fallback) Score(ctx context.Context, text string) (float64, error) {
	v, err := f.Primary.Score(ctx, text)
	if err == nil {
		return v, nil
	}
	if ctx.Err() != nil {
		return 0, err
	}

	metrics.SentimentFallbacks.Inc()
	f.Logger.Debug().Err(err).Msg("primary sentiment oracle failed, using fallback")
	return f.Secondary.Score(ctx, text)
}
