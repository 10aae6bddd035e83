// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are tried in order when CONFIG_PATH is unset or
// points at a missing file.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar names an explicit config file.
const ConfigPathEnvVar = "CONFIG_PATH"

type layer struct {
	name     string
	provider koanf.Provider
	parser   koanf.Parser
}

// Load merges built-in defaults, the first config file found and mapped
// environment variables, later layers winning, then validates the result.
func Load() (*Config, error) {
	layers := []layer{{name: "defaults", provider: structs.Provider(defaultConfig(), "koanf")}}
	if path := findConfigFile(); path != "" {
		layers = append(layers, layer{name: "file " + path, provider: file.Provider(path), parser: yaml.Parser()})
	}
	// DATASET_PATH -> dataset.path; see envMappings.
	layers = append(layers, layer{name: "environment", provider: env.Provider("", ".", envTransformFunc)})

	k := koanf.New(".")
	for _, l := range layers {
		if err := k.Load(l.provider, l.parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", l.name, err)
		}
	}
	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func findConfigFile() string {
	candidates := DefaultConfigPaths
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		candidates = append([]string{p}, DefaultConfigPaths...)
	}
	for _, p := range candidates {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"dataset.blocked_keywords",
	"scoring.criteria",
	"scoring.weights",
	"security.cors_origins",
}

// processSliceFields turns comma-separated env strings into lists. YAML
// lists arrive as []interface{} and are skipped.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("split %s: %w", path, err)
		}
	}
	return nil
}

// envMappings routes lower-cased environment variable names to config keys.
// Anything not listed is ignored.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Dataset
	"dataset_path":             "dataset.path",
	"dataset_blocked_keywords": "dataset.blocked_keywords",
	"disable_content_filter":   "dataset.disable_content_filter",
	"dataset_threads":          "dataset.threads",
	"dataset_max_memory":       "dataset.max_memory",

	// Sentiment
	"sentiment_backend":     "sentiment.backend",
	"sentiment_url":         "sentiment.url",
	"sentiment_api_key":     "sentiment.api_key",
	"sentiment_timeout":     "sentiment.timeout",
	"sentiment_rate":        "sentiment.rate_per_second",
	"sentiment_burst":       "sentiment.burst",
	"sentiment_fallback":    "sentiment.fallback_to_lexicon",
	"sentiment_cache_size":  "sentiment.cache_size",
	"sentiment_cache_ttl":   "sentiment.cache_ttl",
	"sentiment_concurrency": "sentiment.concurrency",

	// Scoring
	"scoring_criteria": "scoring.criteria",
	"scoring_weights":  "scoring.weights",

	// Recommend
	"recommend_default_top_n": "recommend.default_top_n",
	"recommend_max_top_n":     "recommend.max_top_n",
	"refresh_interval":        "recommend.refresh_interval",
	"rebuild_timeout":         "recommend.rebuild_timeout",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"max_body_bytes":      "security.max_body_bytes",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc returns "" for unmapped names, which koanf skips.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
