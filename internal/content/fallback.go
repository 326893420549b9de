// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"fmt"

	"siteforge/internal/catalog"
)

// Fallback deterministically synthesizes a complete WebsiteContent from
// an industry's content templates. It always returns a document that
// passes Validate, so the pipeline's output contract holds even with no
// AI provider reachable. Representative entries are picked in order —
// no randomness, so identical inputs always produce identical content.
func Fallback(cfg catalog.IndustryConfig, businessName string) *WebsiteContent {
	t := cfg.Templates

	c := &WebsiteContent{
		Hero: Hero{
			Headline:    pick(t.Headlines, 0, "Welcome to "+businessName),
			Subheadline: pick(t.Taglines, 0, "We're glad you're here."),
			CTAText:     pick(t.CTATexts, 0, "Get started"),
		},
		About: About{
			Title: "About " + businessName,
			Body:  pick(t.AboutBlurbs, 0, fmt.Sprintf("%s is dedicated to serving its customers well.", businessName)),
		},
		CTA: CTA{
			Title:      pick(t.Headlines, 1, "Ready to get started?"),
			Subtitle:   pick(t.Taglines, 1, "We'd love to hear from you."),
			ButtonText: pick(t.CTATexts, len(t.CTATexts)-1, "Contact us"),
		},
	}

	for _, name := range t.ServiceNames {
		c.Services = append(c.Services, Service{
			Name:        name,
			Description: fmt.Sprintf("%s from %s, delivered with care.", name, businessName),
		})
	}

	icons := []string{"star", "zap", "shield"}
	for i, vp := range t.ValueProps {
		c.Features = append(c.Features, Feature{
			Title:       vp,
			Description: fmt.Sprintf("One more reason %s customers keep coming back.", cfg.Name),
			Icon:        icons[i%len(icons)],
		})
	}

	c.Testimonials = []Testimonial{
		{Quote: fmt.Sprintf("Working with %s was a great decision. Highly recommended.", businessName), Author: "Jordan P.", Role: "Customer"},
		{Quote: "Professional, responsive, and a pleasure to deal with.", Author: "Casey M.", Role: "Customer"},
	}

	c.FAQ = []FAQItem{
		{Question: "How do I get started?", Answer: fmt.Sprintf("Reach out to %s through the contact section and we'll take it from there.", businessName)},
		{Question: "What areas do you serve?", Answer: "We serve the local area and beyond — get in touch to confirm availability."},
		{Question: fmt.Sprintf("Why choose %s?", businessName), Answer: pick(t.ValueProps, 0, "We put our customers first, every time.")},
	}

	return c
}

// pick returns list[i] when it exists, otherwise fallback.
func pick(list []string, i int, fallback string) string {
	if i >= 0 && i < len(list) && list[i] != "" {
		return list[i]
	}
	return fallback
}
