// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package cache provides in-memory data structures shared by the loader and
the sentiment oracles.

# Overview

  - LRU: generic, thread-safe least-recently-used cache with TTL. Used to
    memoize oracle calls so that rebuilding a snapshot over an unchanged
    dataset does not re-score every overview.
  - KeywordSet: an Aho-Corasick automaton for case-insensitive multi-keyword
    substring matching. Used by the dataset content filter.

Both are stdlib-only.

# Usage Example

	lru := cache.NewLRU[string, float64](10000, time.Hour)
	lru.Add("a calm tale", 0.42)
	if v, ok := lru.Get("a calm tale"); ok {
	    fmt.Println(v)
	}

	blocked := cache.NewKeywordSet([]string{"xxx", "adult film"})
	blocked.Contains("An ADULT FILM parody") // true
*/
package cache
