// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWeights is returned when weights do not align with criteria
	// or do not sum to 1.0.
	ErrInvalidWeights = errors.New("invalid scoring weights")

	// ErrEmptyDataset is returned when a snapshot is built from no movies.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrNoSnapshot is returned by SnapshotStore consumers before the first build.
	ErrNoSnapshot = errors.New("no snapshot available")
)

// DataValidationError reports a criterion value that cannot be scored:
// missing, non-numeric, non-finite or out of domain. It is fatal for the
// scoring call and is never retried.
type DataValidationError struct {
	Criterion Criterion
	Index     int
	Title     string
	Value     float64
	Reason    string
}

// Error implements error.
func (e *DataValidationError) Error() string {
	return fmt.Sprintf("data validation: %s of row %d (%q) is %s: %v",
		e.Criterion, e.Index, e.Title, e.Reason, e.Value)
}

// EmptyResultWarning is the informational signal attached to a Result that
// matched nothing. It is not an error.
type EmptyResultWarning struct {
	// Kind is the query kind: "top", "filter", "mood" or "chat".
	Kind string `json:"kind"`

	// Message is a human-readable hint for the caller.
	Message string `json:"message"`
}

func (w *EmptyResultWarning) String() string {
	return w.Kind + ": " + w.Message
}

func emptyWarning(kind string) *EmptyResultWarning {
	var msg string
	switch kind {
	case "mood":
		msg = "no movies match this mood; try another mood"
	case "chat":
		msg = "no movies found; try rephrasing or adding more details"
	default:
		msg = "no movies match these preferences; try changing the filters"
	}
	return &EmptyResultWarning{Kind: kind, Message: msg}
}
