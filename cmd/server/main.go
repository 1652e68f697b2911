package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jrenteria/tiendasync/internal/config"
	"github.com/jrenteria/tiendasync/internal/server/auth"
	"github.com/jrenteria/tiendasync/internal/server/handlers"
	"github.com/jrenteria/tiendasync/internal/server/middleware"
	"github.com/jrenteria/tiendasync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	mintToken := flag.String("mint-token", "", "Mint a device token for the given client id and exit")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)

	authService := auth.NewService(cfg.Auth.Secret, time.Duration(cfg.Auth.TokenTTL))

	// Выпуск токена для новой кассы: tiendasync-server -mint-token caja-1
	if *mintToken != "" {
		token, err := authService.MintToken(*mintToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to mint token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	ctx := context.Background()

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to open database", "error", err, "path", cfg.Database.Path)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	docsHandler := handlers.NewDocumentsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store.DB(), Version)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingWithSkip(logger, []string{"/api/v1/health"}))
	r.Use(middleware.RateLimitMiddleware(cfg.Server.RateLimit, time.Duration(cfg.Server.RateWindow), logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(logger, authService))
			docsHandler.Routes(r)
		})
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", "addr", addr, "version", Version)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown по SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func printVersion() {
	fmt.Printf("TiendaSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
