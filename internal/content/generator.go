// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"log/slog"

	"siteforge/internal/ai"
	"siteforge/internal/catalog"
	"siteforge/internal/models"
)

// SourceFallback is the Result.Source value when no AI tier produced
// content and the static templates were used.
const SourceFallback = "fallback"

// Result carries the generated content and which source produced it.
// Source feeds the website metadata's aiUsed tag.
type Result struct {
	Content *WebsiteContent
	Source  string
}

// Generator runs the ordered source chain: primary provider, secondary
// provider, static fallback. Each tier is attempted at most once per
// call; any tier failure advances the chain and is never surfaced to
// the caller.
type Generator struct {
	primary   ai.Provider // nil when the local endpoint is not configured
	secondary ai.Provider // nil when the cloud endpoint is not configured
}

// NewGenerator creates a generator over the available providers. Either
// argument may be nil; with both nil every call lands on the static
// fallback.
func NewGenerator(primary, secondary ai.Provider) *Generator {
	return &Generator{primary: primary, secondary: secondary}
}

type attempt struct {
	name     string
	provider ai.Provider
}

// attempts builds the tier chain for a provider preference. "primary"
// and "secondary" pin a single tier; "auto" (or empty) tries both in
// order. Unavailable providers are skipped.
func (g *Generator) attempts(preference string) []attempt {
	var chain []attempt
	if preference == "" || preference == "auto" || preference == "primary" {
		if g.primary != nil {
			chain = append(chain, attempt{name: g.primary.Name(), provider: g.primary})
		}
	}
	if preference == "" || preference == "auto" || preference == "secondary" {
		if g.secondary != nil {
			chain = append(chain, attempt{name: g.secondary.Name(), provider: g.secondary})
		}
	}
	return chain
}

// Generate produces content for a request. It always returns a complete,
// validated WebsiteContent: AI tier failures (timeouts, bad status,
// unparseable or incomplete JSON) are logged at warning level and the
// chain moves on, terminating in the deterministic static fallback.
func (g *Generator) Generate(ctx context.Context, req models.GenerateRequest, cfg catalog.IndustryConfig, an Analysis) Result {
	userPrompt := BuildUserPrompt(req, cfg, an)

	for _, at := range g.attempts(req.Provider) {
		raw, err := at.provider.Generate(ctx, systemPrompt, userPrompt)
		if err != nil {
			slog.Warn("content provider failed, trying next tier",
				"provider", at.name, "error", err)
			continue
		}

		c, err := Parse(raw)
		if err != nil {
			slog.Warn("content provider returned unusable document, trying next tier",
				"provider", at.name, "error", err)
			continue
		}

		slog.Info("content generated", "provider", at.name, "industry", cfg.Key)
		return Result{Content: c, Source: at.name}
	}

	slog.Info("using static fallback content", "industry", cfg.Key)
	return Result{Content: Fallback(cfg, req.WebsiteName), Source: SourceFallback}
}
