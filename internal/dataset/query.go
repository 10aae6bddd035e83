// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tomtom215/marquee/internal/recommend"
)

const essentialPredicate = "title IS NOT NULL AND overview IS NOT NULL AND vote_average IS NOT NULL AND vote_count IS NOT NULL"

const countsSQL = `
SELECT
	count(*),
	count(*) FILTER (WHERE NOT (` + essentialPredicate + `))
FROM typed`

// First occurrence of each title wins, in file order.
const dedupedSQL = `
SELECT title, overview, vote_average, vote_count, genres, original_language, runtime, release_year, keywords
FROM typed
WHERE ` + essentialPredicate + `
QUALIFY row_number() OVER (PARTITION BY title ORDER BY _row) = 1
ORDER BY _row`

// stage copies the CSV into a temp table with a file-order row number.
func stage(ctx context.Context, conn *sql.Conn, path string) error {
	query := fmt.Sprintf(
		"CREATE OR REPLACE TEMP TABLE staged AS SELECT row_number() OVER () AS _row, * FROM read_csv_auto(%s, header = true, all_varchar = true)",
		quoteLiteral(path),
	)
	if _, err := conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to read csv %s: %w", path, err)
	}
	return nil
}

// stagedColumns maps lower-cased column names to their names in the file.
func stagedColumns(ctx context.Context, conn *sql.Conn) (map[string]string, error) {
	rows, err := conn.QueryContext(ctx, "SELECT * FROM staged LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("failed to inspect columns: %w", err)
	}
	defer closeQuietly(rows)

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to inspect columns: %w", err)
	}

	columns := make(map[string]string, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := columns[key]; !dup {
			columns[key] = name
		}
	}
	return columns, nil
}

// typedViewSQL builds the view that casts staged text into typed columns.
// Absent optional columns become typed NULLs.
func typedViewSQL(columns map[string]string) string {
	col := func(names ...string) (string, bool) {
		for _, n := range names {
			if c, ok := columns[n]; ok {
				return quoteIdent(c), true
			}
		}
		return "", false
	}
	text := func(names ...string) string {
		if c, ok := col(names...); ok {
			return fmt.Sprintf("NULLIF(TRIM(%s), '')", c)
		}
		return "NULL::VARCHAR"
	}
	finite := func(c string) string {
		return fmt.Sprintf("CASE WHEN isfinite(TRY_CAST(TRIM(%[1]s) AS DOUBLE)) THEN TRY_CAST(TRIM(%[1]s) AS DOUBLE) END", c)
	}
	integer := func(typ string, names ...string) string {
		if c, ok := col(names...); ok {
			return fmt.Sprintf("TRY_CAST(round(%s) AS %s)", finite(c), typ)
		}
		return "NULL::" + typ
	}

	voteAverage, _ := col("vote_average")

	year := integer("INTEGER", "release_year")
	if date, ok := col("release_date"); ok {
		fromDate := fmt.Sprintf("year(TRY_CAST(TRIM(%s) AS DATE))", date)
		if year == "NULL::INTEGER" {
			year = fromDate
		} else {
			year = fmt.Sprintf("COALESCE(%s, %s)", year, fromDate)
		}
	}

	selects := []string{
		"_row",
		text("title") + " AS title",
		text("overview") + " AS overview",
		finite(voteAverage) + " AS vote_average",
		integer("BIGINT", "vote_count") + " AS vote_count",
		text("genres_list", "genres") + " AS genres",
		text("original_language") + " AS original_language",
		integer("INTEGER", "runtime") + " AS runtime",
		year + " AS release_year",
		text("keywords") + " AS keywords",
	}
	return "CREATE OR REPLACE TEMP VIEW typed AS SELECT " + strings.Join(selects, ", ") + " FROM staged"
}

type rawRow struct {
	title       string
	overview    string
	voteAverage float64
	voteCount   int64
	genres      sql.NullString
	language    sql.NullString
	runtime     sql.NullInt64
	year        sql.NullInt64
	keywords    sql.NullString
}

func scanRow(rows *sql.Rows) (rawRow, error) {
	var r rawRow
	err := rows.Scan(&r.title, &r.overview, &r.voteAverage, &r.voteCount,
		&r.genres, &r.language, &r.runtime, &r.year, &r.keywords)
	if err != nil {
		return r, fmt.Errorf("failed to scan row: %w", err)
	}
	return r, nil
}

func (r rawRow) movie() recommend.Movie {
	m := recommend.Movie{
		Title:            r.title,
		VoteAverage:      r.voteAverage,
		VoteCount:        int(r.voteCount),
		Overview:         r.overview,
		Genres:           ParseGenres(r.genres.String),
		OriginalLanguage: r.language.String,
	}
	if r.runtime.Valid {
		m.Runtime = recommend.Int(int(r.runtime.Int64))
	}
	if r.year.Valid {
		m.ReleaseYear = recommend.Int(int(r.year.Int64))
	}
	return m
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
