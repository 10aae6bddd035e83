// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ctxKey values are unexported so only this package can set them.
type ctxKey int

const (
	keyRequestID ctxKey = iota
	keySnapshotID
	keyLogger
)

func stringValue(ctx context.Context, key ctxKey) string {
	s, _ := ctx.Value(key).(string)
	return s
}

// GenerateRequestID mints a random UUID for requests that arrive without
// an X-Request-ID.
func GenerateRequestID() string {
	return uuid.NewString()
}

// ContextWithRequestID attaches the HTTP request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// RequestIDFromContext returns "" when no request ID is attached.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, keyRequestID)
}

// ContextWithSnapshotID records which snapshot a query is served from, so
// its log lines can be tied back to one build.
func ContextWithSnapshotID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keySnapshotID, id)
}

// SnapshotIDFromContext returns "" outside a query.
func SnapshotIDFromContext(ctx context.Context) string {
	return stringValue(ctx, keySnapshotID)
}

// ContextWithLogger overrides the logger Ctx starts from.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// LoggerFromContext falls back to the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if l, ok := ctx.Value(keyLogger).(zerolog.Logger); ok {
		return l
	}
	return Logger()
}

// Ctx is the logger handlers should use: it carries request_id and
// snapshot_id whenever the context has them.
//
//	logging.Ctx(ctx).Info().Msg("filter applied")
func Ctx(ctx context.Context) *zerolog.Logger {
	zc := LoggerFromContext(ctx).With()
	for _, f := range [...]struct {
		name string
		key  ctxKey
	}{{"request_id", keyRequestID}, {"snapshot_id", keySnapshotID}} {
		if v := stringValue(ctx, f.key); v != "" {
			zc = zc.Str(f.name, v)
		}
	}
	l := zc.Logger()
	return &l
}
