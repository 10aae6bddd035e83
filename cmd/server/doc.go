// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee server.

Marquee loads a movie catalogue, attaches a sentiment score to every
synopsis, ranks the catalogue with TOPSIS and serves filtered, mood-based
and free-text recommendations over a JSON API.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── Snapshot service (initial build, scheduled refresh)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Sentiment oracle: lexicon or remote, optionally cached
 4. Dataset loader: DuckDB read_csv over the configured file
 5. Engine and snapshot manager
 6. HTTP Server: Chi router with middleware stack
 7. Supervisor tree

The HTTP server starts before the first snapshot is ready. Until then
/api/v1/health/ready and every movie endpoint answer 503 NOT_READY.

# Configuration

Highest priority wins:
  - Environment variables (HTTP_PORT, DATASET_PATH, SCORING_WEIGHTS, ...)
  - Config file (config.yaml, or the path in CONFIG_PATH)
  - Built-in defaults

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within SHUTDOWN_TIMEOUT and the snapshot service stops
after its current build.

# Example Usage

	export DATASET_PATH=/data/tmdb_movies.csv
	export SENTIMENT_BACKEND=lexicon
	export REFRESH_INTERVAL=6h
	./marquee-server
*/
package main
