// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package models defines the JSON shapes served by the HTTP API.
package models

import (
	"time"

	"github.com/tomtom215/marquee/internal/recommend"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"snapshot_id": "...", "movies": [...]},
//	  "metadata": {
//	    "timestamp": "2026-03-02T12:00:00Z",
//	    "query_time_ms": 2
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "min_rating must be less than or equal to 10",
//	    "details": {"field": "min_rating"}
//	  },
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`

	// SnapshotID names the snapshot a query ran against, so clients can
	// tell whether two responses are comparable.
	SnapshotID string `json:"snapshot_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - INVALID_WEIGHTS: Weights do not align with criteria or do not sum to 1
//   - NOT_READY: No snapshot has been built yet
//   - REBUILD_IN_PROGRESS: Another rebuild is running
//   - REBUILD_FAILED: Dataset load or scoring failed
//   - METHOD_NOT_ALLOWED: Wrong HTTP method
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MovieList is returned by the top, filter and mood endpoints.
//
// Listings is set for the top view and carries the compact projection;
// Movies is set for filtered views and carries full rows.
type MovieList struct {
	Count    int                           `json:"count"`
	Movies   []recommend.Movie             `json:"movies,omitempty"`
	Listings []recommend.Listing           `json:"listings,omitempty"`
	Warning  *recommend.EmptyResultWarning `json:"warning,omitempty"`
}

// ChatResponse echoes the preferences extracted from free text along with
// the ranked movies.
type ChatResponse struct {
	Preferences recommend.Preferences         `json:"preferences"`
	Count       int                           `json:"count"`
	Movies      []recommend.Movie             `json:"movies"`
	Warning     *recommend.EmptyResultWarning `json:"warning,omitempty"`
}

// MoodResponse is MovieList plus the resolved mood.
type MoodResponse struct {
	Mood string `json:"mood,omitempty"`
	MovieList
}

// SnapshotStatus describes the active snapshot and build activity.
type SnapshotStatus struct {
	recommend.SnapshotInfo
	Swaps  int64           `json:"swaps"`
	Engine recommend.Stats `json:"engine"`
}

// FilterRequest is the JSON body of POST /movies/filter.
type FilterRequest struct {
	Genre        string   `json:"genre" validate:"omitempty,max=64"`
	Language     string   `json:"language" validate:"omitempty,max=16"`
	MinRating    *float64 `json:"min_rating" validate:"omitempty,gte=0,lte=10"`
	MinSentiment *float64 `json:"min_sentiment" validate:"omitempty,gte=-1,lte=1"`
	MinRuntime   *int     `json:"min_runtime" validate:"omitempty,gte=0"`
	MaxRuntime   *int     `json:"max_runtime" validate:"omitempty,gte=0"`
	ReleaseYear  *int     `json:"release_year" validate:"omitempty,gte=1800,lte=3000"`
	TopN         int      `json:"top_n" validate:"gte=0"`
}

// Preferences converts the request to filter preferences.
func (f *FilterRequest) Preferences() recommend.Preferences {
	return recommend.Preferences{
		Genre:        f.Genre,
		Language:     f.Language,
		MinRating:    f.MinRating,
		MinSentiment: f.MinSentiment,
		MinRuntime:   f.MinRuntime,
		MaxRuntime:   f.MaxRuntime,
		ReleaseYear:  f.ReleaseYear,
		TopN:         f.TopN,
	}
}

// ChatRequest is the JSON body of POST /movies/chat.
type ChatRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// RescoreRequest is the JSON body of POST /snapshot/rescore. Criteria is
// optional and defaults to the active snapshot's criteria.
type RescoreRequest struct {
	Criteria []string  `json:"criteria" validate:"omitempty,dive,criterion"`
	Weights  []float64 `json:"weights" validate:"required,min=1,dive,gte=0,lte=1"`
}
