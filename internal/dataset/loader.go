// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package dataset loads and cleans the movie CSV.
//
// Ingestion runs inside an in-memory DuckDB: the file is staged with
// read_csv_auto (all columns as text), typed with TRY_CAST so malformed
// cells become NULL, and deduplicated with a window function. Cleaning
// follows this order:
//
//  1. drop rows missing title, overview, vote_average or vote_count
//  2. keep the first row for each title
//  3. drop rows whose title, overview or keywords contain a blocked keyword
//
// Optional columns (genres_list, original_language, runtime, release_year,
// keywords) may be absent from the file. release_year falls back to the
// year of release_date when only the date is present.
package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/cache"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
)

// DefaultBlockedKeywords is the content filter applied when none is configured.
var DefaultBlockedKeywords = []string{
	"porn", "xxx", "erotic", "adult film", "softcore", "hardcore", "explicit", "fetish", "sex tape",
	"stripper", "sensual", "bdsm", "orgy", "incest", "hentai", "camgirl",
}

// ErrNoPath is returned when the loader has no file to read.
var ErrNoPath = errors.New("dataset path is not configured")

// Config controls where and how the dataset is read.
type Config struct {
	// Path of the CSV file.
	Path string

	// BlockedKeywords replaces DefaultBlockedKeywords when non-nil. An empty,
	// non-nil slice disables the content filter.
	BlockedKeywords []string

	// Threads for the DuckDB reader. Row numbering relies on file order, so
	// the default is a single thread.
	Threads int

	// MaxMemory caps DuckDB memory, e.g. "512MB". Empty leaves the default.
	MaxMemory string
}

// Report summarizes one load.
type Report struct {
	Rows       int           `json:"rows"`
	Kept       int           `json:"kept"`
	Missing    int           `json:"missing_fields"`
	Duplicates int           `json:"duplicates"`
	Blocked    int           `json:"blocked"`
	Duration   time.Duration `json:"duration"`
}

// Loader reads movies from a CSV file. It implements recommend.MovieSource.
type Loader struct {
	cfg     Config
	blocked *cache.KeywordSet
	logger  zerolog.Logger

	mu   sync.Mutex
	last Report
}

// NewLoader creates a Loader for cfg.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoader(cfg Config, logger zerolog.Logger) (*Loader, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, ErrNoPath
	}
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}

	keywords := cfg.BlockedKeywords
	if keywords == nil {
		keywords = DefaultBlockedKeywords
	}

	return &Loader{
		cfg:     cfg,
		blocked: cache.NewKeywordSet(keywords),
		logger:  logger.With().Str("component", "dataset").Logger(),
	}, nil
}

// Path returns the configured file path.
func (l *Loader) Path() string {
	return l.cfg.Path
}

// LastReport returns the counters of the most recent successful load.
func (l *Loader) LastReport() Report {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

// LoadMovies reads, types and cleans the dataset.
func (l *Loader) LoadMovies(ctx context.Context) ([]recommend.Movie, error) {
	start := time.Now()
	movies, report, err := l.load(ctx)
	report.Duration = time.Since(start)
	metrics.RecordDatasetLoad(report.Duration, report.Kept, report.Missing, report.Duplicates, report.Blocked, err)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.last = report
	l.mu.Unlock()

	l.logger.Info().
		Str("path", l.cfg.Path).
		Int("rows", report.Rows).
		Int("kept", report.Kept).
		Int("missing_fields", report.Missing).
		Int("duplicates", report.Duplicates).
		Int("blocked", report.Blocked).
		Dur("duration", report.Duration).
		Msg("Dataset loaded")

	return movies, nil
}

func (l *Loader) load(ctx context.Context) ([]recommend.Movie, Report, error) {
	var report Report

	if _, err := os.Stat(l.cfg.Path); err != nil {
		return nil, report, fmt.Errorf("dataset %s: %w", l.cfg.Path, err)
	}

	db, err := sql.Open("duckdb", l.connString())
	if err != nil {
		return nil, report, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer closeQuietly(db)

	// Staged tables live in this one connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, report, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer closeQuietly(conn)

	if err := stage(ctx, conn, l.cfg.Path); err != nil {
		return nil, report, err
	}

	columns, err := stagedColumns(ctx, conn)
	if err != nil {
		return nil, report, err
	}
	for _, required := range []string{"title", "overview", "vote_average", "vote_count"} {
		if _, ok := columns[required]; !ok {
			return nil, report, fmt.Errorf("dataset %s: missing required column %q", l.cfg.Path, required)
		}
	}

	if _, err := conn.ExecContext(ctx, typedViewSQL(columns)); err != nil {
		return nil, report, fmt.Errorf("failed to type dataset: %w", err)
	}

	if err := conn.QueryRowContext(ctx, countsSQL).Scan(&report.Rows, &report.Missing); err != nil {
		return nil, report, fmt.Errorf("failed to count rows: %w", err)
	}

	rows, err := conn.QueryContext(ctx, dedupedSQL)
	if err != nil {
		return nil, report, fmt.Errorf("failed to query dataset: %w", err)
	}
	defer closeQuietly(rows)

	movies := make([]recommend.Movie, 0, report.Rows-report.Missing)
	unique := 0
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, report, err
		}
		unique++

		if kw, hit := l.blockedKeyword(row); hit {
			report.Blocked++
			l.logger.Debug().Str("title", row.title).Str("keyword", kw).Msg("Row dropped by content filter")
			continue
		}
		movies = append(movies, row.movie())
	}
	if err := rows.Err(); err != nil {
		return nil, report, fmt.Errorf("failed to read dataset: %w", err)
	}

	report.Duplicates = report.Rows - report.Missing - unique
	report.Kept = len(movies)
	return movies, report, nil
}

func (l *Loader) connString() string {
	var b strings.Builder
	fmt.Fprintf(&b, ":memory:?threads=%d&autoinstall_known_extensions=false&autoload_known_extensions=false", l.cfg.Threads)
	if l.cfg.MaxMemory != "" {
		fmt.Fprintf(&b, "&max_memory=%s", l.cfg.MaxMemory)
	}
	return b.String()
}

// blockedKeyword checks title, overview and keywords in that order.
func (l *Loader) blockedKeyword(r rawRow) (string, bool) {
	if l.blocked.Len() == 0 {
		return "", false
	}
	for _, text := range []string{r.title, r.overview, r.keywords.String} {
		if m, ok := l.blocked.First(text); ok {
			return m.Keyword, true
		}
	}
	return "", false
}

func closeQuietly(c interface{ Close() error }) {
	_ = c.Close() //nolint:errcheck // cleanup path
}
