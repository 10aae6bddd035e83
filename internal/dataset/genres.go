// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import (
	"strings"

	"github.com/goccy/go-json"
)

// ParseGenres accepts the genre encodings found in movie dumps:
//
//	['Action', 'Drama']                       python list literal
//	Action, Drama                             comma separated
//	[{"id": 28, "name": "Action"}, ...]       TMDB JSON objects
func ParseGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[{") {
		var objs []struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(raw), &objs); err == nil {
			out := make([]string, 0, len(objs))
			for _, o := range objs {
				if name := strings.TrimSpace(o.Name); name != "" {
					out = append(out, name)
				}
			}
			return out
		}
	}

	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
