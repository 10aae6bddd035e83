// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// currentSnapshot loads the active snapshot or writes a 503. The returned
// context is tagged with the snapshot id for logging.
func (h *Handler) currentSnapshot(w http.ResponseWriter, r *http.Request) (*recommend.Snapshot, context.Context, bool) {
	snap, err := h.store().Current()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "No snapshot has been built yet", nil)
		return nil, nil, false
	}
	return snap, logging.ContextWithSnapshotID(r.Context(), snap.ID()), true
}

func logWarning(ctx context.Context, res recommend.Result) {
	if res.Warning != nil {
		logging.Ctx(ctx).Debug().
			Str("kind", res.Warning.Kind).
			Msg("query matched no movies")
	}
}

func movieList(res recommend.Result) models.MovieList {
	movies := res.Movies
	if movies == nil {
		movies = []recommend.Movie{}
	}
	return models.MovieList{
		Count:   len(movies),
		Movies:  movies,
		Warning: res.Warning,
	}
}

// MoviesTop returns the compact top-N listing.
//
// Query params:
//   - n: number of movies (default 15, capped by recommend.max_top_n)
//
// @Summary Top-ranked movies
// @Tags Movies
// @Produce json
// @Param n query int false "Number of movies"
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 503 {object} models.APIResponse "No snapshot yet"
// @Router /movies/top [get]
func (h *Handler) MoviesTop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()
	snap, _, ok := h.currentSnapshot(w, r)
	if !ok {
		return
	}

	top := snap.TopN(getIntParam(r, "n", 0))
	metrics.RecordQuery("top", len(top))

	respondSuccess(w, models.MovieList{
		Count:    len(top),
		Listings: recommend.Listings(top),
	}, snap.ID(), start)
}

// MoviesFilterQuery applies preferences from the query string. Values are
// parsed leniently: a malformed number is treated as no constraint.
//
// Query params: genre, language, min_rating, min_sentiment, min_runtime,
// max_runtime, release_year, top_n
//
// @Summary Filter movies by query string
// @Tags Movies
// @Produce json
// @Param genre query string false "Genre, case-insensitive"
// @Param language query string false "Original language code"
// @Param min_rating query number false "Minimum vote average"
// @Param min_sentiment query number false "Minimum overview sentiment"
// @Param min_runtime query int false "Minimum runtime in minutes"
// @Param max_runtime query int false "Maximum runtime in minutes"
// @Param release_year query int false "Release year"
// @Param top_n query int false "Result limit"
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 503 {object} models.APIResponse "No snapshot yet"
// @Router /movies/filter [get]
func (h *Handler) MoviesFilterQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()
	snap, ctx, ok := h.currentSnapshot(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	prefs := recommend.ParseRawPreferences(recommend.RawPreferences{
		Genre:        q.Get("genre"),
		Language:     q.Get("language"),
		MinRating:    q.Get("min_rating"),
		MinSentiment: q.Get("min_sentiment"),
		MinRuntime:   q.Get("min_runtime"),
		MaxRuntime:   q.Get("max_runtime"),
		ReleaseYear:  q.Get("release_year"),
		TopN:         q.Get("top_n"),
	})

	h.filter(ctx, w, snap, prefs, start)
}

// MoviesFilter applies typed JSON preferences. Unlike the query-string
// variant, out-of-range or malformed values are rejected with 400.
//
// @Summary Filter movies by JSON preferences
// @Tags Movies
// @Accept json
// @Produce json
// @Param request body models.FilterRequest true "Preferences"
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 400 {object} models.APIResponse "Invalid preferences"
// @Failure 503 {object} models.APIResponse "No snapshot yet"
// @Router /movies/filter [post]
func (h *Handler) MoviesFilter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()

	var req models.FilterRequest
	if err := decodeJSON(w, r, h.config.MaxBodyBytes, &req); err != nil {
		respondDecodeError(w, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}
	if req.MinRuntime != nil && req.MaxRuntime != nil && *req.MinRuntime > *req.MaxRuntime {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "min_runtime must not exceed max_runtime", nil)
		return
	}

	snap, ctx, ok := h.currentSnapshot(w, r)
	if !ok {
		return
	}

	h.filter(ctx, w, snap, recommend.InterpretStructured(req.Preferences()), start)
}

func (h *Handler) filter(ctx context.Context, w http.ResponseWriter, snap *recommend.Snapshot, prefs recommend.Preferences, start time.Time) {
	res := snap.Filter(prefs)
	metrics.RecordQuery("filter", len(res.Movies))
	logWarning(ctx, res)

	respondSuccess(w, movieList(res), snap.ID(), start)
}

// MoviesMood recommends by mood. The mood comes from the {mood} path
// segment or the "mood" query param; when neither is given no mood
// filtering is applied and the top-N listing is returned instead.
//
// @Summary Recommend movies by mood
// @Tags Movies
// @Produce json
// @Param mood path string false "Mood name"
// @Param mood query string false "Mood name when not given in the path"
// @Success 200 {object} models.APIResponse{data=models.MoodResponse}
// @Failure 503 {object} models.APIResponse "No snapshot yet"
// @Router /movies/mood/{mood} [get]
// @Router /movies/mood [get]
func (h *Handler) MoviesMood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()
	snap, ctx, ok := h.currentSnapshot(w, r)
	if !ok {
		return
	}

	raw := strings.TrimSpace(chi.URLParam(r, "mood"))
	if raw == "" {
		raw = strings.TrimSpace(r.URL.Query().Get("mood"))
	}

	if raw == "" {
		top := snap.TopN(0)
		metrics.RecordQuery("top", len(top))
		respondSuccess(w, models.MoodResponse{
			MovieList: models.MovieList{Count: len(top), Listings: recommend.Listings(top)},
		}, snap.ID(), start)
		return
	}

	mood, known := recommend.ParseMood(raw)
	if !known {
		logging.Ctx(ctx).Debug().Str("mood", sanitizeLogValue(raw)).Msg("unknown mood requested")
	}

	res := snap.RecommendByMood(mood)
	metrics.RecordQuery("mood", len(res.Movies))
	logWarning(ctx, res)

	respondSuccess(w, models.MoodResponse{
		Mood:      string(mood),
		MovieList: movieList(res),
	}, snap.ID(), start)
}

// MoviesChat interprets free text and answers with the extracted
// preferences and the matching movies.
//
// @Summary Recommend movies from free text
// @Tags Movies
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Free-text request"
// @Success 200 {object} models.APIResponse{data=models.ChatResponse}
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 503 {object} models.APIResponse "No snapshot yet"
// @Router /movies/chat [post]
func (h *Handler) MoviesChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()

	var req models.ChatRequest
	if err := decodeJSON(w, r, h.config.MaxBodyBytes, &req); err != nil {
		respondDecodeError(w, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	snap, ctx, ok := h.currentSnapshot(w, r)
	if !ok {
		return
	}

	prefs, res := snap.Chat(req.Text)
	metrics.RecordQuery("chat", len(res.Movies))
	logWarning(ctx, res)

	logging.Ctx(ctx).Debug().
		Str("genre", prefs.Genre).
		Bool("min_rating", prefs.MinRating != nil).
		Int("results", len(res.Movies)).
		Msg("chat interpreted")

	list := movieList(res)
	respondSuccess(w, models.ChatResponse{
		Preferences: prefs,
		Count:       list.Count,
		Movies:      list.Movies,
		Warning:     list.Warning,
	}, snap.ID(), start)
}
