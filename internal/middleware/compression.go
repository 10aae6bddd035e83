// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// compressor gzips JSON bodies and the Prometheus text exposition. Other
// content types, such as an already compressed export, pass through.
var compressor = chimw.NewCompressor(gzip.DefaultCompression,
	"application/json",
	"text/plain",
)

// Compression gzips responses for clients that accept gzip. Full result
// listings run to a few hundred KB of JSON. HEAD requests and clients that
// refuse gzip with q=0 get the plain body.
//
// chi's Compressor does the encoding. Negotiation happens here because the
// Compressor matches encodings by substring and would take "gzip;q=0" as
// a yes.
func Compression(next http.Handler) http.Handler {
	compressed := compressor.Handler(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || !acceptsGzip(r) {
			next.ServeHTTP(w, r)
			return
		}
		r = r.Clone(r.Context())
		r.Header.Set("Accept-Encoding", "gzip")
		compressed.ServeHTTP(w, r)
	})
}

// acceptsGzip reports whether Accept-Encoding lists gzip or * without q=0.
func acceptsGzip(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		name, params, _ := strings.Cut(part, ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "gzip" && name != "*" {
			continue
		}
		if q := strings.TrimSpace(params); q == "q=0" || q == "q=0.0" || q == "q=0.000" {
			continue
		}
		return true
	}
	return false
}
