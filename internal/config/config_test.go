// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/recommend"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Sentiment.Backend != "lexicon" {
		t.Errorf("Sentiment.Backend = %q, want lexicon", cfg.Sentiment.Backend)
	}
	if !reflect.DeepEqual(cfg.Scoring.Criteria, []string{"vote_average", "vote_count", "sentiment_score"}) {
		t.Errorf("Scoring.Criteria = %v", cfg.Scoring.Criteria)
	}
	if !reflect.DeepEqual(cfg.Scoring.Weights, []float64{0.4, 0.3, 0.3}) {
		t.Errorf("Scoring.Weights = %v", cfg.Scoring.Weights)
	}
	if cfg.Recommend.DefaultTopN != 15 {
		t.Errorf("Recommend.DefaultTopN = %d, want 15", cfg.Recommend.DefaultTopN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("Security.RateLimitWindow = %v, want 1m", cfg.Security.RateLimitWindow)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATASET_PATH", "/srv/movies.csv")
	t.Setenv("SCORING_WEIGHTS", "0.5, 0.25, 0.25")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SENTIMENT_CACHE_TTL", "2h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REFRESH_INTERVAL", "6h")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "/srv/movies.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if !reflect.DeepEqual(cfg.Scoring.Weights, []float64{0.5, 0.25, 0.25}) {
		t.Errorf("Scoring.Weights = %v", cfg.Scoring.Weights)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Sentiment.CacheTTL != 2*time.Hour {
		t.Errorf("Sentiment.CacheTTL = %v", cfg.Sentiment.CacheTTL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Recommend.RefreshInterval != 6*time.Hour {
		t.Errorf("Recommend.RefreshInterval = %v", cfg.Recommend.RefreshInterval)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7070
dataset:
  path: /data/tmdb.csv
  blocked_keywords: [gore, splatter]
scoring:
  criteria: [vote_average, sentiment_score]
  weights: [0.6, 0.4]
recommend:
  default_top_n: 20
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7171")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 7171 {
		t.Errorf("env should win over file: Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Dataset.Path != "/data/tmdb.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Recommend.DefaultTopN != 20 {
		t.Errorf("Recommend.DefaultTopN = %d", cfg.Recommend.DefaultTopN)
	}

	engine, err := cfg.EngineConfig()
	if err != nil {
		t.Fatalf("EngineConfig() error = %v", err)
	}
	want := []recommend.Criterion{recommend.CriterionVoteAverage, recommend.CriterionSentiment}
	if !reflect.DeepEqual(engine.Scoring.Criteria, want) {
		t.Errorf("Criteria = %v, want %v", engine.Scoring.Criteria, want)
	}

	loader := cfg.LoaderConfig()
	if !reflect.DeepEqual(loader.BlockedKeywords, []string{"gore", "splatter"}) {
		t.Errorf("BlockedKeywords = %v", loader.BlockedKeywords)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"weights do not sum to one", func(c *Config) { c.Scoring.Weights = []float64{0.5, 0.5, 0.5} }, "sum"},
		{"weights misaligned", func(c *Config) { c.Scoring.Weights = []float64{1} }, "weights"},
		{"unknown criterion", func(c *Config) { c.Scoring.Criteria[0] = "budget" }, "Criteria"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "Port"},
		{"bad backend", func(c *Config) { c.Sentiment.Backend = "llm" }, "Backend"},
		{"remote without url", func(c *Config) { c.Sentiment.Backend = "remote" }, "SENTIMENT_URL is required"},
		{"remote bad scheme", func(c *Config) {
			c.Sentiment.Backend = "remote"
			c.Sentiment.URL = "ftp://scores.example"
		}, "scheme"},
		{"max below default", func(c *Config) { c.Recommend.MaxTopN = 5 }, "max_top_n"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "Format"},
		{"empty dataset path", func(c *Config) { c.Dataset.Path = "" }, "Path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}

	t.Run("remote with url", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Sentiment.Backend = "remote"
		cfg.Sentiment.URL = "https://scores.example/v1/compound"
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})
}

func TestLoaderConfig(t *testing.T) {
	cfg := defaultConfig()
	if got := cfg.LoaderConfig().BlockedKeywords; got != nil {
		t.Errorf("default BlockedKeywords = %v, want nil (built-in list)", got)
	}

	cfg.Dataset.DisableContentFilter = true
	got := cfg.LoaderConfig().BlockedKeywords
	if got == nil || len(got) != 0 {
		t.Errorf("disabled filter BlockedKeywords = %#v, want empty non-nil", got)
	}
}

func TestSentimentOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Sentiment.Backend = "remote"
	cfg.Sentiment.URL = "http://localhost:5000/score"
	cfg.Sentiment.APIKey = "k"

	opts := cfg.SentimentOptions()
	if opts.Backend != "remote" || opts.Remote.URL != cfg.Sentiment.URL || opts.Remote.APIKey != "k" {
		t.Errorf("SentimentOptions() = %+v", opts)
	}
	if opts.CacheSize != cfg.Sentiment.CacheSize {
		t.Errorf("CacheSize = %d", opts.CacheSize)
	}
}

func TestServerAddress(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if s.Address() != "127.0.0.1:8080" {
		t.Errorf("Address() = %q", s.Address())
	}
}
