// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package sentiment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/metrics"
)

// ErrInvalidScore is returned when the service answers with a score that is
// not a finite value in [-1, 1].
var ErrInvalidScore = errors.New("sentiment service returned an invalid score")

// RemoteConfig configures the HTTP sentiment service client.
type RemoteConfig struct {
	// URL receives POST {"text": "..."} and answers {"compound": 0.42}.
	URL string

	// APIKey is sent as a Bearer token when set.
	APIKey string

	// Timeout bounds a single request.
	Timeout time.Duration

	// RatePerSecond and Burst throttle outgoing requests.
	RatePerSecond float64
	Burst         int
}

// Remote calls an HTTP sentiment service.
//
// Circuit breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 30 second timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
type Remote struct {
	cfg     RemoteConfig
	client  *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[float64]
	name    string
	logger  zerolog.Logger
}

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	Compound *float64 `json:"compound"`
	Score    *float64 `json:"score"`
}

// NewRemote creates a Remote oracle.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRemote(cfg RemoteConfig, logger zerolog.Logger) (*Remote, error) {
	if cfg.URL == "" {
		return nil, errors.New("sentiment: remote URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	r := &Remote{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		name:    "sentiment-api",
		logger:  logger.With().Str("component", "sentiment").Str("oracle", "remote").Logger(),
	}

	metrics.CircuitBreakerState.WithLabelValues(r.name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(r.name).Set(0)

	r.cb = gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:        r.name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				r.logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening circuit")
			}
			return shouldTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			r.logger.Info().Str("from", stateToString(from)).Str("to", stateToString(to)).Msg("circuit state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
		// A caller cancelling its build is not a service failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return r, nil
}

// State returns the breaker state as "closed", "half-open" or "open".
func (r *Remote) State() string {
	return stateToString(r.cb.State())
}

// Score implements recommend.SentimentOracle.
func (r *Remote) Score(ctx context.Context, text string) (float64, error) {
	start := time.Now()
	score, err := r.cb.Execute(func() (float64, error) {
		return r.call(ctx, text)
	})
	metrics.RecordSentiment("remote", time.Since(start), err)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(r.name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(r.name).Set(float64(r.cb.Counts().ConsecutiveFailures))
		}
		return 0, fmt.Errorf("remote sentiment: %w", err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(r.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(r.name).Set(0)
	return score, nil
}

func (r *Remote) call(ctx context.Context, text string) (float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	body, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256)) //nolint:errcheck // best-effort error detail
		return 0, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out scoreResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	v := out.Compound
	if v == nil {
		v = out.Score
	}
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < -1 || *v > 1 {
		return 0, ErrInvalidScore
	}
	return *v, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
