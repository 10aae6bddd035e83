// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

// overviewOracle scores an overview by table lookup.
type overviewOracle map[string]float64

func (o overviewOracle) Score(_ context.Context, text string) (float64, error) {
	return o[text], nil
}

type fakeSource struct {
	mu     sync.Mutex
	movies []recommend.Movie
	err    error
	calls  int
}

func (f *fakeSource) LoadMovies(context.Context) ([]recommend.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSource) loads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fixtureRow struct {
	title     string
	avg       float64
	count     int
	sentiment float64
	lang      string
	runtime   int
	genres    []string
}

// catalogue: Sky Quest ranks first under default weights, Laugh Riot first
// under sentiment-only weights.
var catalogue = []fixtureRow{
	{"Laugh Riot", 7.8, 1200, 0.6, "en", 95, []string{"Comedy", "Family"}},
	{"Dark Water", 6.1, 300, -0.7, "en", 110, []string{"Thriller", "Mystery"}},
	{"Sky Quest", 8.4, 5000, -0.2, "en", 142, []string{"Action", "Adventure"}},
	{"Quiet Letters", 7.2, 800, -0.1, "fr", 120, []string{"Drama", "Romance"}},
	{"Toon Town", 6.8, 2100, 0.4, "en", 88, []string{"Animation", "Family"}},
}

func fixture() ([]recommend.Movie, overviewOracle) {
	movies := make([]recommend.Movie, len(catalogue))
	oracle := make(overviewOracle, len(catalogue))
	for i, row := range catalogue {
		overview := row.title + " overview"
		movies[i] = recommend.Movie{
			Title:            row.title,
			VoteAverage:      row.avg,
			VoteCount:        row.count,
			Overview:         overview,
			Genres:           row.genres,
			OriginalLanguage: row.lang,
			Runtime:          recommend.Int(row.runtime),
		}
		oracle[overview] = row.sentiment
	}
	return movies, oracle
}

type testEnv struct {
	handler *Handler
	manager *recommend.Manager
	source  *fakeSource
	server  http.Handler
}

// newTestEnv builds the full router. With build set, a snapshot is
// installed before returning.
func newTestEnv(t *testing.T, build bool, mwCfg *ChiMiddlewareConfig) *testEnv {
	t.Helper()

	movies, oracle := fixture()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), oracle, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	source := &fakeSource{movies: movies}
	manager := recommend.NewManager(engine, source, nil, nil, zerolog.Nop())

	if build {
		if _, err := manager.Rebuild(context.Background()); err != nil {
			t.Fatalf("Rebuild() error = %v", err)
		}
	}

	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.RateLimitDisabled = true
	}

	handler := NewHandler(manager, engine, HandlerConfig{MaxBodyBytes: 4096}, zerolog.Nop())
	router := NewRouter(handler, NewChiMiddleware(mwCfg), 0)

	return &testEnv{
		handler: handler,
		manager: manager,
		source:  source,
		server:  router.SetupChi(),
	}
}

// envelope mirrors models.APIResponse with Data left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode body %q: %v", method, path, rec.Body.String(), err)
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, env envelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Status != "error" || env.Error == nil {
		t.Fatalf("expected error envelope, got %+v", env)
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
}

func movieTitles(movies []recommend.Movie) []string {
	out := make([]string, len(movies))
	for i := range movies {
		out[i] = movies[i].Title
	}
	return out
}

func listingTitles(listings []recommend.Listing) []string {
	out := make([]string, len(listings))
	for i := range listings {
		out[i] = listings[i].Title
	}
	return out
}

func sameSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	seen := make(map[string]int, len(got))
	for _, g := range got {
		seen[g]++
	}
	for _, w := range want {
		if seen[w] == 0 {
			return false
		}
		seen[w]--
	}
	return true
}
