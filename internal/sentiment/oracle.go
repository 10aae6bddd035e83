// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package sentiment

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Backend names accepted by Options.Backend.
const (
	BackendLexicon = "lexicon"
	BackendRemote  = "remote"
)

// Options selects and wires an oracle chain.
type Options struct {
	// Backend is "lexicon" or "remote".
	Backend string

	// Remote is used when Backend is "remote".
	Remote RemoteConfig

	// FallbackToLexicon answers from the lexicon when the remote fails.
	FallbackToLexicon bool

	// CacheSize enables memoization when positive.
	CacheSize int
	CacheTTL  time.Duration
}

// New builds the oracle described by opts.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(opts Options, logger zerolog.Logger) (Scorer, error) {
	var oracle Scorer

	switch opts.Backend {
	case BackendLexicon, "":
		oracle = NewLexicon()
	case BackendRemote:
		remote, err := NewRemote(opts.Remote, logger)
		if err != nil {
			return nil, err
		}
		oracle = remote
		if opts.FallbackToLexicon {
			oracle = &Fallback{
				Primary:   remote,
				Secondary: NewLexicon(),
				Logger:    logger.With().Str("component", "sentiment").Logger(),
			}
		}
	default:
		return nil, fmt.Errorf("sentiment: unknown backend %q", opts.Backend)
	}

	if opts.CacheSize > 0 {
		oracle = NewCached(oracle, opts.CacheSize, opts.CacheTTL)
	}
	return oracle, nil
}
