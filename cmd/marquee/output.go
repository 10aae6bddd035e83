// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printListings(w io.Writer, asJSON bool, listings []recommend.Listing) error {
	if asJSON {
		return writeJSON(w, models.MovieList{Count: len(listings), Listings: listings})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tRATING\tVOTES\tSENTIMENT\tSCORE")
	for i, l := range listings {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%d\t%+.3f\t%.4f\n",
			i+1, l.Title, l.VoteAverage, l.VoteCount, l.SentimentScore, l.TopsisScore)
	}
	return tw.Flush()
}

func printResult(w io.Writer, asJSON bool, res recommend.Result) error {
	if asJSON {
		return writeJSON(w, models.MovieList{Count: len(res.Movies), Movies: res.Movies, Warning: res.Warning})
	}
	if res.Warning != nil {
		fmt.Fprintln(w, res.Warning.Message)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tRATING\tSENTIMENT\tSCORE\tLANG\tRUNTIME\tYEAR\tGENRES")
	for i := range res.Movies {
		m := &res.Movies[i]
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%+.3f\t%.4f\t%s\t%s\t%s\t%s\n",
			i+1, m.Title, m.VoteAverage, m.SentimentScore, m.TopsisScore,
			m.OriginalLanguage, optInt(m.Runtime), optInt(m.ReleaseYear), strings.Join(m.Genres, ", "))
	}
	return tw.Flush()
}

func printPreferences(w io.Writer, p recommend.Preferences) {
	parts := make([]string, 0, 3)
	if p.Genre != "" {
		parts = append(parts, "genre="+p.Genre)
	}
	if p.MinRating != nil {
		parts = append(parts, "min_rating="+strconv.FormatFloat(*p.MinRating, 'f', -1, 64))
	}
	if p.MinSentiment != nil {
		parts = append(parts, "min_sentiment="+strconv.FormatFloat(*p.MinSentiment, 'f', -1, 64))
	}
	fmt.Fprintf(w, "interpreted: %s\n", strings.Join(parts, " "))
}

func optInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
