// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/recommend"
)

func newTopCmd(d deps, opts *rootOptions) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the highest scoring movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := buildSnapshot(cmd, d, opts)
			if err != nil {
				return err
			}
			listings := recommend.Listings(snap.TopN(n))
			return printListings(cmd.OutOrStdout(), opts.jsonOut, listings)
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", recommend.DefaultTopN, "Number of movies to show")
	return cmd
}

func newFilterCmd(d deps, opts *rootOptions) *cobra.Command {
	var raw recommend.RawPreferences

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter by genre, language, rating, sentiment, runtime and year",
		Long: `Filter keeps movies matching every supplied flag and ranks them by score.
Numeric flags that do not parse are ignored.

Examples:
  marquee filter --genre comedy --min-rating 7
  marquee filter --language fr --min-runtime 90 --max-runtime 120 --top 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := buildSnapshot(cmd, d, opts)
			if err != nil {
				return err
			}
			prefs := recommend.ParseRawPreferences(raw)
			return printResult(cmd.OutOrStdout(), opts.jsonOut, snap.Filter(prefs))
		},
	}

	f := cmd.Flags()
	f.StringVar(&raw.Genre, "genre", "", "Genre substring, case-insensitive")
	f.StringVar(&raw.Language, "language", "", "Original language code, e.g. en")
	f.StringVar(&raw.MinRating, "min-rating", "", "Minimum vote average")
	f.StringVar(&raw.MinSentiment, "min-sentiment", "", "Minimum synopsis sentiment in [-1, 1]")
	f.StringVar(&raw.MinRuntime, "min-runtime", "", "Minimum runtime in minutes")
	f.StringVar(&raw.MaxRuntime, "max-runtime", "", "Maximum runtime in minutes")
	f.StringVar(&raw.ReleaseYear, "year", "", "Release year")
	f.StringVar(&raw.TopN, "top", "", "Number of movies to show")
	return cmd
}

func newMoodCmd(d deps, opts *rootOptions) *cobra.Command {
	moods := make([]string, 0, len(recommend.Moods()))
	for _, m := range recommend.Moods() {
		moods = append(moods, strings.ToLower(string(m)))
	}

	return &cobra.Command{
		Use:       "mood [" + strings.Join(moods, "|") + "]",
		Short:     "Recommend movies for a mood",
		Long:      "Without a mood the top movies are shown.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: moods,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := buildSnapshot(cmd, d, opts)
			if err != nil {
				return err
			}
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				return printListings(cmd.OutOrStdout(), opts.jsonOut, recommend.Listings(snap.TopN(0)))
			}
			mood, _ := recommend.ParseMood(args[0])
			return printResult(cmd.OutOrStdout(), opts.jsonOut, snap.RecommendByMood(mood))
		},
	}
}

func newChatCmd(d deps, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <text...>",
		Short: "Ask in plain words",
		Long: `Chat picks the first known genre mentioned and an optional "rating N"
threshold (default 6.0) from the text.

Example:
  marquee chat "a funny comedy rating 7"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := buildSnapshot(cmd, d, opts)
			if err != nil {
				return err
			}
			prefs, res := snap.Chat(strings.Join(args, " "))
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), models.ChatResponse{
					Preferences: prefs,
					Count:       len(res.Movies),
					Movies:      res.Movies,
					Warning:     res.Warning,
				})
			}
			printPreferences(cmd.OutOrStdout(), prefs)
			return printResult(cmd.OutOrStdout(), false, res)
		},
	}
}
