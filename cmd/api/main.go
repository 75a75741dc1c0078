// Package main starts an HTTP server exposing the trophic graph API: per
// session graphs with species mutation, relationship inference and balance
// analysis, plus a stateless analyze endpoint for whole datasets.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/terrascope/foodweb/cmd/api/middleware"
	"github.com/terrascope/foodweb/internal/handlers"
	"github.com/terrascope/foodweb/internal/session"
)

const shutdownTimeout = 10 * time.Second

func newHandler(cfg config, store *session.Store) http.Handler {
	router := handlers.NewRouter(store)

	return middleware.Logging(
		middleware.Cors(cfg.CORSOrigin,
			middleware.MaxBytes(cfg.MaxBodyBytes, router)))
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg, os.Stderr))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newHandler(cfg, session.NewStore(cfg.MaxSessions)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "max_sessions", cfg.MaxSessions)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
