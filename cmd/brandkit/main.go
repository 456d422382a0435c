// Package main is the entry point for the BrandKit server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brandkit/internal/assets"
	"brandkit/internal/cache"
	"brandkit/internal/config"
	"brandkit/internal/database"
	"brandkit/internal/handlers"
	"brandkit/internal/mail"
	"brandkit/internal/router"
	"brandkit/internal/session"
	"brandkit/internal/storage"
	"brandkit/internal/store"
	"brandkit/internal/wizard"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
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
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the system questionnaire templates and, in development, a
	// default designer (no-op if data already exists).
	if err := database.Seed(db, cfg.IsDev()); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Valkey (sessions, wizard state, pending uploads).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	wizardStore := wizard.NewStore(valkeyClient)
	pendingStore := assets.NewPendingStore(valkeyClient)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	clientStore := store.NewClientStore(db)
	projectStore := store.NewProjectStore(db)
	templateStore := store.NewTemplateStore(db)
	briefStore := store.NewBriefStore(db)
	assetStore := store.NewAssetStore(db)
	guidelinesStore := store.NewGuidelinesStore(db)

	// Connect to S3-compatible object storage (optional — app works without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3BucketPublic, cfg.S3BucketPrivate, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"public_bucket", cfg.S3BucketPublic,
			"private_bucket", cfg.S3BucketPrivate,
		)
	} else {
		slog.Warn("s3 storage not configured — file uploads disabled")
	}

	// SMTP relay (optional — mail endpoints return 503 without it).
	mailer := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	if mailer == nil {
		slog.Warn("smtp not configured — mail endpoints disabled")
	}

	// Create the handler group with its dependencies.
	api := handlers.New(sessionStore, userStore, clientStore, projectStore,
		templateStore, briefStore, assetStore, guidelinesStore,
		wizardStore, pendingStore, storageClient, mailer, cfg.PublicURL)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, api)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// multi-file asset uploads to object storage.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
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
