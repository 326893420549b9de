// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures exchanged between the
// generation pipeline and its callers. The central type is GeneratedWebsite,
// the single artifact handed to the rendering layer.
package models

import "time"

// GenerateRequest is the caller's input to the generation pipeline.
// Description and WebsiteName are mandatory; everything else has a
// documented default.
type GenerateRequest struct {
	Description   string `json:"description" validate:"required,max=2000"`
	WebsiteName   string `json:"websiteName" validate:"required,max=120"`
	Industry      string `json:"industry" validate:"max=60"`
	Variation     string `json:"variation" validate:"max=60"`
	Style         string `json:"style" validate:"max=120"`
	Provider      string `json:"provider" validate:"omitempty,oneof=primary secondary auto"`
	IncludeImages bool   `json:"includeImages"`
}

// Component is one renderable block of the generated page. Type names a
// ComponentDescriptor in the component catalog; unknown types are ignored
// by the rendering layer rather than treated as errors.
type Component struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

// Metadata describes how a website was produced: which content tier ran,
// whether real images were fetched, and the theme colors applied.
type Metadata struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Industry       string    `json:"industry"`
	Style          string    `json:"style"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	AIUsed         string    `json:"aiUsed"`
	GeneratedAt    time.Time `json:"generatedAt"`
	IncludeImages  bool      `json:"includeImages"`
	HasRealImages  bool      `json:"hasRealImages"`
	IsFallback     bool      `json:"isFallback"`
	FallbackReason string    `json:"fallbackReason,omitempty"`
}

// GeneratedWebsite is the pipeline's output contract. Components are in
// page rendering order, top to bottom. A website is created fresh per
// request and overwritten by the next one; there is no versioning.
type GeneratedWebsite struct {
	ID         string      `json:"id"`
	Metadata   Metadata    `json:"metadata"`
	Components []Component `json:"components"`
}
