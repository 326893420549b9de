// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the siteforge server. It loads
// configuration, wires the content and image providers, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siteforge/internal/ai"
	"siteforge/internal/cache"
	"siteforge/internal/config"
	"siteforge/internal/content"
	"siteforge/internal/handlers"
	"siteforge/internal/images"
	"siteforge/internal/middleware"
	"siteforge/internal/router"
)

func main() {
	// Bootstrap logger for the config-loading phase; replaced once the
	// environment is known.
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

	// Structured logger: JSON in production, text in development.
	if !cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to Valkey for the generation result cache. Optional: when
	// no host is configured the API still works, results just aren't
	// retrievable by ID afterwards.
	var results *cache.ResultCache
	if cfg.ResultCacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		results = cache.NewResultCache(valkeyClient, cache.DefaultResultTTL)
	} else {
		slog.Warn("valkey not configured — result cache disabled")
	}

	// Content tiers. A nil provider marks the tier unavailable; the
	// generator falls through to the next tier, ending at the static
	// template fallback.
	var primary, secondary ai.Provider
	if cfg.LocalAIEndpoint != "" {
		primary = ai.NewLocal(ai.ProviderConfig{
			APIKey:  cfg.LocalAIKey,
			Model:   cfg.LocalAIModel,
			BaseURL: cfg.LocalAIEndpoint,
		})
	}
	if cfg.CloudAIKey != "" {
		secondary = ai.NewCloud(ai.ProviderConfig{
			APIKey:  cfg.CloudAIKey,
			Model:   cfg.CloudAIModel,
			BaseURL: cfg.CloudAIEndpoint,
		})
	}
	generator := content.NewGenerator(primary, secondary)

	slog.Info("content tiers initialized",
		"primary", primary != nil,
		"secondary", secondary != nil,
	)

	// Image provider — degrades to placeholders when unconfigured.
	imageClient := images.New(cfg.PexelsAPIKey)
	if !imageClient.IsConfigured() {
		slog.Warn("image provider not configured — using placeholders")
	}

	h := handlers.New(generator, imageClient, results)

	// Rate limit the generation endpoint per client IP.
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer limiter.Stop()

	r := router.New(h, limiter)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate generation requests that wait on LLM
	// responses (typically 10-30s, up to 60s for complex prompts).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
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
