// Package main is the entry point for the Inkwell CMS server.
// It loads configuration, opens the durable store backend, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell/internal/auth"
	"inkwell/internal/blog"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/handlers"
	"inkwell/internal/kv"
	"inkwell/internal/router"
	"inkwell/internal/session"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.StoreBackend,
	)

	// Open the durable slot store for the configured backend.
	slots, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store backend", "error", err)
		os.Exit(1)
	}
	defer slots.Close()

	// Load the blog collections, falling back to the seeded defaults for
	// empty or unreadable slots.
	blogStore := blog.New(slots)
	blogStore.Load(context.Background())

	// Seed the admin account in development (no-op if one exists).
	accounts := auth.NewStore(slots)
	if cfg.IsDev() {
		if err := accounts.Seed(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			slog.Error("failed to seed admin account", "error", err)
			os.Exit(1)
		}
	}

	// Session store shares the slot backend. Outside development, session
	// cookies are marked Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessions := session.NewStore(slots, secureCookies)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(blogStore)
	authHandlers := handlers.NewAuth(sessions, accounts)
	publicHandlers := handlers.NewPublic(blogStore)

	// Set up the Chi router with all middleware and routes.
	r, loginLimiter := router.New(sessions, adminHandlers, authHandlers, publicHandlers)
	defer loginLimiter.Stop()

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// openStore builds the slot store named in the configuration. The
// Postgres backend runs its migrations before first use.
func openStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendValkey:
		return kv.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)

	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		return kv.NewPostgres(db), nil

	default:
		slog.Warn("using in-memory store; data will not survive restarts")
		return kv.NewMemory(), nil
	}
}
