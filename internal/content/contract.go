// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content turns a business description into the fixed content
// contract every generation consumes: hero, about, services, features,
// testimonials, faq, and cta blocks. Content comes from an ordered chain
// of sources — local model, cloud model, static fallback — and every
// source must satisfy the full contract or be skipped.
package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Hero is the opening band copy.
type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
}

// About is the narrative block.
type About struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Service is one offered service.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Feature is one highlighted selling point.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Testimonial is one customer quote.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
}

// FAQItem is one question and answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CTA is the closing call-to-action copy.
type CTA struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
}

// WebsiteContent is the full content contract. A provider response
// missing any required block is treated as a parse failure, never as a
// partially-populated result.
type WebsiteContent struct {
	Hero         Hero          `json:"hero"`
	About        About         `json:"about"`
	Services     []Service     `json:"services"`
	Features     []Feature     `json:"features"`
	Testimonials []Testimonial `json:"testimonials"`
	FAQ          []FAQItem     `json:"faq"`
	CTA          CTA           `json:"cta"`
}

// Validate checks that every required field of the contract is populated.
func (c *WebsiteContent) Validate() error {
	switch {
	case strings.TrimSpace(c.Hero.Headline) == "":
		return fmt.Errorf("content: hero.headline is empty")
	case strings.TrimSpace(c.Hero.Subheadline) == "":
		return fmt.Errorf("content: hero.subheadline is empty")
	case strings.TrimSpace(c.Hero.CTAText) == "":
		return fmt.Errorf("content: hero.ctaText is empty")
	case strings.TrimSpace(c.About.Title) == "":
		return fmt.Errorf("content: about.title is empty")
	case strings.TrimSpace(c.About.Body) == "":
		return fmt.Errorf("content: about.body is empty")
	case len(c.Services) == 0:
		return fmt.Errorf("content: services is empty")
	case len(c.Features) == 0:
		return fmt.Errorf("content: features is empty")
	case len(c.Testimonials) == 0:
		return fmt.Errorf("content: testimonials is empty")
	case len(c.FAQ) == 0:
		return fmt.Errorf("content: faq is empty")
	case strings.TrimSpace(c.CTA.Title) == "":
		return fmt.Errorf("content: cta.title is empty")
	case strings.TrimSpace(c.CTA.ButtonText) == "":
		return fmt.Errorf("content: cta.buttonText is empty")
	}

	for i, s := range c.Services {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("content: services[%d].name is empty", i)
		}
	}
	for i, f := range c.Features {
		if strings.TrimSpace(f.Title) == "" {
			return fmt.Errorf("content: features[%d].title is empty", i)
		}
	}
	for i, q := range c.FAQ {
		if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
			return fmt.Errorf("content: faq[%d] is incomplete", i)
		}
	}
	return nil
}

// Parse extracts a WebsiteContent from raw LLM output. Models often wrap
// JSON in code fences or prose, so after a direct unmarshal fails we scan
// for the outermost brace pair. A document that unmarshals but fails
// Validate is still an error — the tier chain moves on.
func Parse(raw string) (*WebsiteContent, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var c WebsiteContent
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("content: no JSON object in response")
		}
		if err := json.Unmarshal([]byte(text[start:end+1]), &c); err != nil {
			return nil, fmt.Errorf("content: parse response: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
