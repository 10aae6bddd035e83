// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package services wraps the server's long-running parts as suture
// services: the HTTP listener and the snapshot builder.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// HTTPServer is what HTTPServerService needs from *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService keeps an HTTP server listening until its context is
// canceled, then drains connections for up to shutdownTimeout.
//
//	srv := &http.Server{Addr: ":8080", Handler: router.Setup()}
//	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second, logger))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout
// becomes 10s.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration, logger zerolog.Logger) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	svc := &HTTPServerService{server: server, shutdownTimeout: shutdownTimeout}
	svc.logger = logger.With().Str("service", svc.String()).Logger()
	return svc
}

// Serve returns ctx.Err() after a clean shutdown. A listener failure or a
// shutdown that overruns its timeout is returned wrapped, so the supervisor
// restarts the service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := h.server.ListenAndServe()
		switch {
		case err != nil && !errors.Is(err, http.ErrServerClosed):
			return fmt.Errorf("http server failed: %w", err)
		case gctx.Err() == nil:
			// Closed by someone else; release the shutdown goroutine.
			return errors.New("http server closed unexpectedly")
		default:
			return nil
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		// gctx is already done; the drain gets a fresh deadline.
		drainCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("http server shutting down")
		if err := h.server.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	if srv, ok := h.server.(*http.Server); ok {
		h.logger.Info().Str("addr", srv.Addr).Msg("http server listening")
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return "http-server"
}
