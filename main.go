package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dotpro/tutorial-web/internal/config"
	"github.com/dotpro/tutorial-web/internal/handler"
	"github.com/dotpro/tutorial-web/internal/repository/sqlite"
	"github.com/dotpro/tutorial-web/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func run(cfg *config.Config) error {
	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}
	slog.Info("database migrations applied", "path", cfg.DatabasePath)

	app := &handler.App{
		Directory:    service.NewUserDirectory(db.Users()),
		Static:       os.DirFS(cfg.StaticDir),
		Limiter:      service.NewTokenBucket(ctx, cfg.WriteRate, cfg.WriteBurst),
		PrimeLimiter: service.NewTokenBucket(ctx, cfg.PrimeRate, cfg.PrimeBurst),
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, app)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler.RequestID(handler.RequestLogger(handler.SecurityHeaders(mux))),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
