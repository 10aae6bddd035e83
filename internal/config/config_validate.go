// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"net/url"

	"github.com/tomtom215/marquee/internal/sentiment"
	"github.com/tomtom215/marquee/internal/validation"
)

// Validate checks tag rules first, then cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateSentiment(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	// Weight alignment and sum are checked by the engine config itself.
	if _, err := c.EngineConfig(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateSentiment() error {
	if c.Sentiment.Backend != sentiment.BackendRemote {
		return nil
	}
	if c.Sentiment.URL == "" {
		return fmt.Errorf("SENTIMENT_URL is required when SENTIMENT_BACKEND=remote")
	}
	return validateHTTPURL(c.Sentiment.URL, "SENTIMENT_URL")
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxTopN < c.Recommend.DefaultTopN {
		return fmt.Errorf("recommend.max_top_n (%d) must be >= recommend.default_top_n (%d)",
			c.Recommend.MaxTopN, c.Recommend.DefaultTopN)
	}
	return nil
}

// validateHTTPURL checks for an http(s) scheme and a host. Paths are
// allowed since scoring services are usually mounted on one.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
