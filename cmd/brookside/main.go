// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Brookside Schools API server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"brookside/internal/auth"
	"brookside/internal/config"
	"brookside/internal/content"
	"brookside/internal/dashboard"
	"brookside/internal/database"
	"brookside/internal/handlers"
	"brookside/internal/middleware"
	"brookside/internal/notify"
	"brookside/internal/router"
	"brookside/internal/storage"
	"brookside/internal/store"
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

	// Seed the initial super admin (no-op if accounts already exist).
	if err := database.Seed(db, cfg.SeedAdminName, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Connect to Redis for the token revocation list. Optional: without
	// it, logout cannot invalidate tokens before they expire.
	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
	} else {
		slog.Warn("redis not configured — token revocation disabled")
	}

	issuer := auth.NewIssuer(cfg.JWTSecret)
	revoker := auth.NewRevoker(redisClient)

	// Connect to S3-compatible object storage (optional — app works
	// without it, uploads then report 503).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Outbound email for form-submission notifications. Falls back to a
	// no-op sender when Resend is not configured.
	notifier := notify.NewResend(cfg.ResendAPIKey, cfg.NotifyFrom, cfg.NotifyTo)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	blogStore := store.NewBlogStore(db)
	announcementStore := store.NewAnnouncementStore(db)
	updateStore := store.NewUpdateStore(db)
	pageStore := store.NewPageStore(db)
	inquiryStore := store.NewInquiryStore(db)
	contactStore := store.NewContactStore(db)
	subscriberStore := store.NewSubscriberStore(db)
	paymentStore := store.NewPaymentStore(db)
	dashboardStore := store.NewDashboardStore(db)

	// Domain services.
	contentService := content.NewService(blogStore, announcementStore, updateStore, pageStore)
	dashboardService := dashboard.NewService(dashboardStore)

	// Public form endpoints are rate limited per client IP.
	rateLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer rateLimiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(router.Deps{
		Issuer:      issuer,
		Revoker:     revoker,
		RateLimiter: rateLimiter,
		Auth:        handlers.NewAuth(userStore, issuer, revoker),
		Content:     handlers.NewContent(contentService),
		Leads:       handlers.NewLeads(inquiryStore, contactStore, subscriberStore, paymentStore, notifier),
		Dashboard:   handlers.NewDashboard(dashboardService),
		Uploads:     handlers.NewUploads(storageClient),
	})

	// Create the HTTP server with sensible timeouts. WriteTimeout
	// accommodates media uploads to object storage.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
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
