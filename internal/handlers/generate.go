// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the siteforge API.
// Handlers receive their dependencies through the Handler struct.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"siteforge/internal/assembler"
	"siteforge/internal/cache"
	"siteforge/internal/catalog"
	"siteforge/internal/content"
	"siteforge/internal/images"
	"siteforge/internal/layout"
	"siteforge/internal/models"
	"siteforge/internal/theme"
)

// maxBodyBytes caps the generation request body.
const maxBodyBytes = 64 << 10

// industryImageCount is how many photos one generation requests; enough
// for hero, about, and a product-style grid.
const industryImageCount = 6

// imageSource is the slice of the image adapter the handlers need.
// *images.Client satisfies it; tests substitute a counting fake.
type imageSource interface {
	IsConfigured() bool
	IndustryImages(ctx context.Context, industryKey string, count int) []images.Image
}

// Handler groups the generation API handlers and their dependencies.
type Handler struct {
	generator *content.Generator
	images    imageSource
	results   *cache.ResultCache // nil when Valkey is not configured
	validate  *validator.Validate
}

// New creates the handler set.
func New(generator *content.Generator, imgs imageSource, results *cache.ResultCache) *Handler {
	return &Handler{
		generator: generator,
		images:    imgs,
		results:   results,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Generate runs the full pipeline: validate input, resolve catalogs,
// generate content through the tier chain, optionally fetch images, and
// assemble the final website. It answers 400 only for caller input
// errors; provider failures degrade to fallbacks and still answer 200.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	req.Description = strings.TrimSpace(req.Description)
	req.WebsiteName = strings.TrimSpace(req.WebsiteName)
	if req.Provider == "" {
		req.Provider = "auto"
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	// All catalog lookups resolve through the industry config so an
	// unknown key falls back consistently everywhere.
	cfg := catalog.Get(req.Industry)
	th := theme.Resolve(cfg.Key)
	lay := layout.Resolve(cfg.Key, req.Variation)
	an := content.Analyze(req.Description, cfg)

	result := h.generator.Generate(r.Context(), req, cfg, an)

	var (
		imgs    []images.Image
		hasReal bool
	)
	// Configuration is a credential check, not a network call, so it is
	// consulted even when the request skips image fetching: a configured
	// adapter keeps the result out of full-fallback territory.
	imagesConfigured := h.images.IsConfigured()
	if req.IncludeImages {
		imgs = h.images.IndustryImages(r.Context(), cfg.Key, industryImageCount)
		for _, img := range imgs {
			if !img.Placeholder {
				hasReal = true
				break
			}
		}
	}

	site := assembler.Assemble(assembler.Input{
		Request:          req,
		Config:           cfg,
		Analysis:         an,
		Content:          result.Content,
		Source:           result.Source,
		Images:           imgs,
		ImagesConfigured: imagesConfigured,
		HasRealImages:    hasReal,
		Theme:            th,
		Layout:           lay,
	})

	if h.results != nil {
		h.results.Set(r.Context(), &site)
	}

	slog.Info("website generated",
		"id", site.ID,
		"industry", site.Metadata.Industry,
		"aiUsed", site.Metadata.AIUsed,
		"fallback", site.Metadata.IsFallback,
	)
	writeJSON(w, http.StatusOK, site)
}

// Website returns a previously generated website from the result cache.
func (h *Handler) Website(w http.ResponseWriter, r *http.Request) {
	if h.results == nil {
		writeError(w, http.StatusNotFound, "Result storage is not configured.")
		return
	}

	id := chi.URLParam(r, "id")
	site, ok := h.results.Get(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "No generated website with that ID.")
		return
	}
	writeJSON(w, http.StatusOK, site)
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode error", "error", err)
	}
}

// writeError answers with a single-message JSON error object.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
