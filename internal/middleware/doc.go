// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package middleware provides chi-compatible HTTP middleware shared by the
// API router: Prometheus request instrumentation and gzip compression
// through chi's Compressor.
//
// Both take and return http.Handler so they compose with r.Use:
//
//	r.Use(middleware.PrometheusMetrics)
//	r.Use(middleware.Compression)
package middleware
