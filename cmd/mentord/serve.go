package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mentord/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

func runServe(cmd *cobra.Command, f *rootFlags) error {
	cfg, log, svc, err := setup(cmd, f)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Startup probe; the result is only logged.
	svc.Reachable(ctx)

	// Canceled once shutdown gives up waiting, aborting in-flight upstream calls.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	mux := httpapi.NewMux(svc, httpapi.Options{
		MaxBodyBytes: cfg.MaxBodyBytes,
		LogLevel:     httpapi.ParseLevel(cfg.LogLevel),
		Logger:       &log,
		BaseContext:  baseCtx,
		Swagger:      cfg.Swagger,
	})
	srv := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Addr).
			Str("upstream", cfg.UpstreamBaseURL()).
			Str("default_model", cfg.DefaultModel).
			Int("retries", cfg.Retries).
			Bool("swagger", cfg.Swagger).
			Msg("mentord listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
		cancelBase()
		_ = srv.Close()
	}
	return nil
}
