// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chains for the
// site generation API. Generation is rate limited; the catalog reads
// are not.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"siteforge/internal/handlers"
	"siteforge/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil to disable rate limiting.
func New(h *handlers.Handler, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check — no rate limit.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Generation — the expensive path, rate limited per client IP.
		r.Group(func(r chi.Router) {
			if limiter != nil {
				r.Use(limiter.Middleware)
			}
			r.Post("/generate", h.Generate)
		})

		r.Get("/generate/{id}", h.Website)

		// Catalog reads — static tables, cheap to serve.
		r.Get("/industries", h.Industries)
		r.Get("/industries/{key}", h.Industry)
		r.Get("/themes/{key}", h.Theme)
		r.Get("/components", h.Components)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
