// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"fmt"
	"strings"

	"siteforge/internal/catalog"
	"siteforge/internal/models"
)

// systemPrompt instructs the model to emit only the content contract.
// Both AI tiers share it so their outputs are interchangeable.
const systemPrompt = `You are an expert marketing copywriter for small-business websites.

Rules:
- Respond with ONLY a single JSON object. No markdown, no code fences, no commentary.
- The object must have exactly these fields:
  "hero": {"headline", "subheadline", "ctaText"}
  "about": {"title", "body"}
  "services": [{"name", "description"}] (3-4 entries)
  "features": [{"title", "description", "icon"}] (3 entries, icon is a short lowercase word)
  "testimonials": [{"quote", "author", "role"}] (2-3 entries, plausible but clearly generic names)
  "faq": [{"question", "answer"}] (3-4 entries)
  "cta": {"title", "subtitle", "buttonText"}
- Every field must be non-empty. Write concise, concrete copy in the business's voice.
- Do not invent prices, addresses, or phone numbers.`

// BuildUserPrompt composes the user prompt from the request, the
// industry config, and the description analysis.
func BuildUserPrompt(req models.GenerateRequest, cfg catalog.IndustryConfig, an Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write website copy for %q, a %s business.\n", req.WebsiteName, cfg.Name)
	fmt.Fprintf(&b, "Business description: %s\n", strings.TrimSpace(req.Description))

	if req.Style != "" {
		fmt.Fprintf(&b, "Desired style and tone: %s\n", req.Style)
	}
	if len(an.Audiences) > 0 {
		fmt.Fprintf(&b, "Target audience: %s\n", strings.Join(an.Audiences, ", "))
	}
	if len(an.Goals) > 0 {
		fmt.Fprintf(&b, "Primary goals: %s\n", strings.Join(an.Goals, ", "))
	}
	if len(cfg.Templates.ServiceNames) > 0 {
		fmt.Fprintf(&b, "Typical services in this industry: %s\n",
			strings.Join(cfg.Templates.ServiceNames, ", "))
	}

	return b.String()
}
