// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package config loads and validates application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting via environment variables
//
// Config is immutable after Load() and safe for concurrent read access.
package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/sentiment"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Sentiment SentimentConfig `koanf:"sentiment"`
	Scoring   ScoringConfig   `koanf:"scoring"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int    `koanf:"port" validate:"min=1,max=65535"`
	Host string `koanf:"host"`

	// Timeout applies to reads and writes of a single request.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment" validate:"oneof=development production"`
}

// DatasetConfig describes the movie CSV.
type DatasetConfig struct {
	Path string `koanf:"path" validate:"required"`

	// BlockedKeywords overrides the built-in content filter list.
	// Empty means the built-in list.
	BlockedKeywords []string `koanf:"blocked_keywords"`

	// DisableContentFilter turns the keyword filter off entirely.
	DisableContentFilter bool `koanf:"disable_content_filter"`

	Threads   int    `koanf:"threads" validate:"gte=0"`
	MaxMemory string `koanf:"max_memory"`
}

// SentimentConfig selects the sentiment oracle.
type SentimentConfig struct {
	// Backend is "lexicon" (local) or "remote" (HTTP service).
	Backend string `koanf:"backend" validate:"oneof=lexicon remote"`

	URL           string        `koanf:"url"`
	APIKey        string        `koanf:"api_key"`
	Timeout       time.Duration `koanf:"timeout" validate:"gte=0"`
	RatePerSecond float64       `koanf:"rate_per_second" validate:"gte=0"`
	Burst         int           `koanf:"burst" validate:"gte=0"`

	// FallbackToLexicon scores locally when the remote service fails.
	FallbackToLexicon bool `koanf:"fallback_to_lexicon"`

	// CacheSize enables memoization of scores when positive.
	CacheSize int           `koanf:"cache_size" validate:"gte=0"`
	CacheTTL  time.Duration `koanf:"cache_ttl" validate:"gte=0"`

	// Concurrency bounds in-flight oracle calls during a snapshot build.
	Concurrency int `koanf:"concurrency" validate:"min=1,max=256"`
}

// ScoringConfig lists the TOPSIS criteria and their positional weights.
type ScoringConfig struct {
	Criteria []string  `koanf:"criteria" validate:"required,dive,criterion"`
	Weights  []float64 `koanf:"weights" validate:"required"`
}

// RecommendConfig holds result size limits and snapshot scheduling.
type RecommendConfig struct {
	DefaultTopN int `koanf:"default_top_n" validate:"min=1"`
	MaxTopN     int `koanf:"max_top_n" validate:"min=1"`

	// RefreshInterval reloads the dataset on a schedule. 0 disables.
	RefreshInterval time.Duration `koanf:"refresh_interval" validate:"gte=0"`

	// RebuildTimeout bounds a single snapshot build.
	RebuildTimeout time.Duration `koanf:"rebuild_timeout" validate:"gt=0"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gte=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"gt=0"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	scoring := recommend.DefaultScoringConfig()
	criteria := make([]string, len(scoring.Criteria))
	for i, c := range scoring.Criteria {
		criteria[i] = c.String()
	}

	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Dataset: DatasetConfig{
			Path:    "data/movies.csv",
			Threads: 1,
		},
		Sentiment: SentimentConfig{
			Backend:           sentiment.BackendLexicon,
			Timeout:           10 * time.Second,
			RatePerSecond:     20,
			Burst:             5,
			FallbackToLexicon: true,
			CacheSize:         10000,
			CacheTTL:          0,
			Concurrency:       4,
		},
		Scoring: ScoringConfig{
			Criteria: criteria,
			Weights:  scoring.Weights,
		},
		Recommend: RecommendConfig{
			DefaultTopN:    recommend.DefaultTopN,
			MaxTopN:        500,
			RebuildTimeout: 10 * time.Minute,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			MaxBodyBytes:      1 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in configuration without reading any source.
func Default() *Config {
	return defaultConfig()
}

// Address returns the listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// EngineConfig converts the scoring and limits sections for the engine.
func (c *Config) EngineConfig() (*recommend.Config, error) {
	criteria := make([]recommend.Criterion, len(c.Scoring.Criteria))
	for i, name := range c.Scoring.Criteria {
		crit, err := recommend.ParseCriterion(name)
		if err != nil {
			return nil, fmt.Errorf("scoring.criteria[%d]: %w", i, err)
		}
		criteria[i] = crit
	}

	cfg := &recommend.Config{
		Scoring: recommend.ScoringConfig{
			Criteria: criteria,
			Weights:  append([]float64(nil), c.Scoring.Weights...),
		},
		Limits: recommend.LimitsConfig{
			DefaultTopN: c.Recommend.DefaultTopN,
			MaxTopN:     c.Recommend.MaxTopN,
		},
		Build: recommend.BuildConfig{
			SentimentConcurrency: c.Sentiment.Concurrency,
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SentimentOptions converts the sentiment section for sentiment.New.
func (c *Config) SentimentOptions() sentiment.Options {
	return sentiment.Options{
		Backend: c.Sentiment.Backend,
		Remote: sentiment.RemoteConfig{
			URL:           c.Sentiment.URL,
			APIKey:        c.Sentiment.APIKey,
			Timeout:       c.Sentiment.Timeout,
			RatePerSecond: c.Sentiment.RatePerSecond,
			Burst:         c.Sentiment.Burst,
		},
		FallbackToLexicon: c.Sentiment.FallbackToLexicon,
		CacheSize:         c.Sentiment.CacheSize,
		CacheTTL:          c.Sentiment.CacheTTL,
	}
}

// LoaderConfig converts the dataset section for dataset.NewLoader.
func (c *Config) LoaderConfig() dataset.Config {
	cfg := dataset.Config{
		Path:      c.Dataset.Path,
		Threads:   c.Dataset.Threads,
		MaxMemory: c.Dataset.MaxMemory,
	}
	switch {
	case c.Dataset.DisableContentFilter:
		cfg.BlockedKeywords = []string{}
	case len(c.Dataset.BlockedKeywords) > 0:
		cfg.BlockedKeywords = append([]string(nil), c.Dataset.BlockedKeywords...)
	}
	return cfg
}
