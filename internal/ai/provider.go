// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides HTTP clients for the two optional LLM collaborators:
// a local OpenAI-compatible endpoint (the primary tier) and a cloud
// Messages endpoint (the secondary tier). Each provider handles its own
// HTTP communication and response parsing; tier ordering and fallback
// live in the content package.
package ai

import "context"

// Provider is the contract every AI content source must implement.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the generated text.
	// systemPrompt sets the model's behaviour; userPrompt is the request.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Name returns the provider identifier (e.g., "local", "cloud").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Sampling parameters are fixed constants rather than user-configurable:
// the downstream parser expects a predictable JSON output shape.
const (
	temperature = 0.3
	maxTokens   = 4096
)
