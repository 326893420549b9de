// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"siteforge/internal/catalog"
	"siteforge/internal/components"
	"siteforge/internal/layout"
	"siteforge/internal/theme"
)

// Catalog endpoints expose the static tables the front-end builds its
// pickers from. They share the pipeline's fallback policy: unknown keys
// answer with the default entry, never 404, so the UI can always render.

// Industries lists every industry config plus the category tags.
func (h *Handler) Industries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"industries": catalog.All(),
		"categories": catalog.Categories(),
	})
}

// Industry returns one industry config with its theme and layout plan.
func (h *Handler) Industry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	cfg := catalog.Get(key)
	writeJSON(w, http.StatusOK, map[string]any{
		"industry":   cfg,
		"theme":      theme.Resolve(cfg.Key),
		"layout":     layout.Resolve(cfg.Key, r.URL.Query().Get("variation")),
		"variations": layout.Variations(cfg.Key),
	})
}

// Theme returns the theme for an industry key.
func (h *Handler) Theme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, theme.Resolve(chi.URLParam(r, "key")))
}

// Components lists the component descriptor catalog.
func (h *Handler) Components(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"components": components.All(),
	})
}
