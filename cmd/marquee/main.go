// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package main is the marquee command line tool. It builds a snapshot from
// a local CSV file and answers one query per invocation.
//
//	marquee top -n 10 --data movies.csv
//	marquee filter --genre comedy --min-rating 7 --language en
//	marquee mood happy
//	marquee chat "an exciting action movie rated 7.5"
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/dataset"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
	"github.com/tomtom215/marquee/internal/sentiment"
)

// deps are the swappable parts of the CLI.
type deps struct {
	loadConfig func() (*config.Config, error)
	newSource  func(cfg dataset.Config, logger zerolog.Logger) (recommend.MovieSource, error)
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		newSource: func(cfg dataset.Config, logger zerolog.Logger) (recommend.MovieSource, error) {
			return dataset.NewLoader(cfg, logger)
		},
	}
}

// rootOptions are the persistent flags shared by every query command.
type rootOptions struct {
	data     string
	weights  []float64
	jsonOut  bool
	logLevel string
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "marquee",
		Short:         "Marquee - movie scoring and recommendation",
		Long:          "Marquee ranks a movie catalogue with TOPSIS over rating, vote count and synopsis sentiment, then answers filter, mood and free-text queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !logging.ValidLevel(opts.logLevel) {
				return fmt.Errorf("invalid --log-level %q", opts.logLevel)
			}
			logging.Init(logging.Config{
				Level:  opts.logLevel,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.data, "data", "", "Path to the movie CSV (default: dataset.path from config)")
	flags.Float64SliceVar(&opts.weights, "weights", nil, "Scoring weights aligned with scoring.criteria, e.g. 0.4,0.3,0.3")
	flags.BoolVar(&opts.jsonOut, "json", false, "Print JSON instead of a table")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: trace, debug, info, warn, error")

	root.AddCommand(
		newTopCmd(d, opts),
		newFilterCmd(d, opts),
		newMoodCmd(d, opts),
		newChatCmd(d, opts),
	)
	return root
}

// buildSnapshot loads the configured dataset and scores it.
func buildSnapshot(cmd *cobra.Command, d deps, opts *rootOptions) (*recommend.Snapshot, error) {
	cfg, err := d.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.data != "" {
		cfg.Dataset.Path = opts.data
	}
	if len(opts.weights) > 0 {
		cfg.Scoring.Weights = append([]float64(nil), opts.weights...)
	}

	logger := logging.Logger()

	oracle, err := sentiment.New(cfg.SentimentOptions(), logger)
	if err != nil {
		return nil, err
	}
	source, err := d.newSource(cfg.LoaderConfig(), logger)
	if err != nil {
		return nil, err
	}
	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}
	engine, err := recommend.NewEngine(engineCfg, oracle, logger)
	if err != nil {
		return nil, err
	}

	return engine.Load(cmd.Context(), source)
}

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
