// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assembler merges theme, layout, content, and images into the
// final GeneratedWebsite. This is the last pipeline stage; with the
// static catalogs well-formed it cannot fail, so it returns a complete
// document unconditionally.
package assembler

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"siteforge/internal/catalog"
	"siteforge/internal/components"
	"siteforge/internal/content"
	"siteforge/internal/images"
	"siteforge/internal/layout"
	"siteforge/internal/models"
	"siteforge/internal/theme"
)

// The two universal gradient bands. Hero and CTA keep these regardless
// of industry so every generated site shares one visual anchor; all
// other section colors come from the resolved theme.
const (
	HeroGradient = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	CTAGradient  = "linear-gradient(135deg, #6a11cb 0%, #2575fc 100%)"
)

// servicesOverride picks the industry-specific services component.
// Industries not listed here use the generic ServicesSection.
var servicesOverride = map[string]string{
	"restaurant": "MenuSection",
	"ecommerce":  "ProductGrid",
	"realestate": "PropertyListings",
	"fitness":    "ClassSchedule",
}

// Input carries everything Assemble needs. Content and Source come from
// the content generator; ImagesConfigured and HasRealImages come from
// the image adapter (both false when includeImages was off).
type Input struct {
	Request          models.GenerateRequest
	Config           catalog.IndustryConfig
	Analysis         content.Analysis
	Content          *content.WebsiteContent
	Source           string
	Images           []images.Image
	ImagesConfigured bool
	HasRealImages    bool
	Theme            theme.Theme
	Layout           layout.Template
}

// Assemble builds the ordered component list and metadata. Section order
// is fixed: Header, Hero, Features, About, the industry services
// component, Testimonials, FAQ, CTA, Contact, Footer. Every section's
// props pass through the component normalizer, so missing content fields
// end up with sensible defaults rather than holes.
func Assemble(in Input) models.GeneratedWebsite {
	b := builder{in: in}

	b.add("Header", b.headerProps())
	b.add("HeroSection", b.heroProps())
	b.add("FeaturesSection", b.featuresProps())
	b.add("AboutSection", b.aboutProps())
	b.add(b.servicesComponent(), b.servicesProps())
	b.add("TestimonialsSection", b.testimonialsProps())
	b.add("FAQSection", b.faqProps())
	b.add("CTASection", b.ctaProps())
	b.add("ContactSection", b.contactProps())
	b.add("Footer", b.footerProps())

	return models.GeneratedWebsite{
		ID:         uuid.NewString(),
		Metadata:   b.metadata(),
		Components: b.out,
	}
}

type builder struct {
	in        Input
	out       []models.Component
	imageIdx  int
	realImage bool
}

// add normalizes props for a component type, stamps the theme colors,
// and appends it in order.
func (b *builder) add(componentType string, raw map[string]any) {
	props := components.NormalizeProps(componentType, raw)

	// Theme colors for every section; Hero and CTA carry their
	// universal gradient bands instead of a flat background.
	c := b.in.Theme.Colors
	switch componentType {
	case "HeroSection":
		props["background"] = HeroGradient
		props["textColor"] = "#ffffff"
	case "CTASection":
		props["background"] = CTAGradient
		props["textColor"] = "#ffffff"
	default:
		props["backgroundColor"] = c.Background
		props["textColor"] = c.Text
	}
	props["accentColor"] = c.Accent

	// Layout metadata for sections the industry's layout plan covers.
	for _, s := range b.in.Layout.Sections {
		if s.Type == componentType {
			props["sectionSize"] = string(s.Size)
			props["sectionProminence"] = string(s.Prominence)
			break
		}
	}

	b.out = append(b.out, models.Component{Type: componentType, Props: props})
}

// nextImage hands out the fetched images in order; an empty URL lets the
// normalizer substitute the placeholder default.
func (b *builder) nextImage() string {
	if b.imageIdx >= len(b.in.Images) {
		return ""
	}
	img := b.in.Images[b.imageIdx]
	b.imageIdx++
	if !img.Placeholder {
		b.realImage = true
	}
	return img.URL
}

func (b *builder) servicesComponent() string {
	if override, ok := servicesOverride[b.in.Config.Key]; ok {
		return override
	}
	return "ServicesSection"
}

func (b *builder) headerProps() map[string]any {
	menu := []any{
		map[string]any{"label": "Home", "link": "#home"},
		map[string]any{"label": "About", "link": "#about"},
		map[string]any{"label": "Services", "link": "#services"},
		map[string]any{"label": "Contact", "link": "#contact"},
	}
	return map[string]any{
		"logoText": b.in.Request.WebsiteName,
		"menu":     menu,
		"ctaText":  b.in.Content.Hero.CTAText,
	}
}

func (b *builder) heroProps() map[string]any {
	return map[string]any{
		"headline":    b.in.Content.Hero.Headline,
		"subheadline": b.in.Content.Hero.Subheadline,
		"ctaText":     b.in.Content.Hero.CTAText,
		"imageUrl":    b.nextImage(),
	}
}

func (b *builder) featuresProps() map[string]any {
	features := make([]any, 0, len(b.in.Content.Features))
	for _, f := range b.in.Content.Features {
		features = append(features, map[string]any{
			"title":       f.Title,
			"description": f.Description,
			"icon":        f.Icon,
		})
	}
	return map[string]any{"features": features}
}

func (b *builder) aboutProps() map[string]any {
	return map[string]any{
		"title":    b.in.Content.About.Title,
		"body":     b.in.Content.About.Body,
		"imageUrl": b.nextImage(),
	}
}

// servicesProps shapes the content's service list for whichever services
// component the industry uses. Fields the content contract does not
// carry (prices, schedules) are left for the normalizer to default.
func (b *builder) servicesProps() map[string]any {
	services := b.in.Content.Services

	switch b.servicesComponent() {
	case "MenuSection":
		items := make([]any, 0, len(services))
		for _, s := range services {
			items = append(items, map[string]any{"name": s.Name, "description": s.Description})
		}
		return map[string]any{"items": items}
	case "ProductGrid":
		products := make([]any, 0, len(services))
		for _, s := range services {
			products = append(products, map[string]any{"name": s.Name, "imageUrl": b.nextImage()})
		}
		return map[string]any{"products": products}
	case "PropertyListings":
		properties := make([]any, 0, len(services))
		for _, s := range services {
			properties = append(properties, map[string]any{"title": s.Name, "imageUrl": b.nextImage()})
		}
		return map[string]any{"properties": properties}
	case "ClassSchedule":
		classes := make([]any, 0, len(services))
		for _, s := range services {
			classes = append(classes, map[string]any{"name": s.Name})
		}
		return map[string]any{"classes": classes}
	}

	list := make([]any, 0, len(services))
	for _, s := range services {
		list = append(list, map[string]any{"name": s.Name, "description": s.Description})
	}
	return map[string]any{"services": list}
}

func (b *builder) testimonialsProps() map[string]any {
	quotes := make([]any, 0, len(b.in.Content.Testimonials))
	for _, t := range b.in.Content.Testimonials {
		quotes = append(quotes, map[string]any{
			"quote":  t.Quote,
			"author": t.Author,
			"role":   t.Role,
		})
	}
	return map[string]any{"testimonials": quotes}
}

func (b *builder) faqProps() map[string]any {
	items := make([]any, 0, len(b.in.Content.FAQ))
	for _, q := range b.in.Content.FAQ {
		items = append(items, map[string]any{"question": q.Question, "answer": q.Answer})
	}
	return map[string]any{"items": items}
}

func (b *builder) ctaProps() map[string]any {
	return map[string]any{
		"title":      b.in.Content.CTA.Title,
		"subtitle":   b.in.Content.CTA.Subtitle,
		"buttonText": b.in.Content.CTA.ButtonText,
	}
}

func (b *builder) contactProps() map[string]any {
	return map[string]any{"title": "Get in touch"}
}

func (b *builder) footerProps() map[string]any {
	return map[string]any{
		"text": b.in.Request.WebsiteName + ". All rights reserved.",
	}
}

func (b *builder) metadata() models.Metadata {
	description := strings.TrimSpace(b.in.Request.Description)
	if runes := []rune(description); len(runes) > 160 {
		description = string(runes[:157]) + "..."
	}

	isFallback := b.in.Source == content.SourceFallback && !b.in.ImagesConfigured
	reason := ""
	if isFallback {
		reason = "no AI provider produced content and no image provider is configured"
	}

	return models.Metadata{
		Title:          b.in.Request.WebsiteName,
		Description:    description,
		Industry:       b.in.Config.Key,
		Style:          b.in.Request.Style,
		PrimaryColor:   b.in.Theme.Colors.Primary,
		SecondaryColor: b.in.Theme.Colors.Secondary,
		AIUsed:         b.in.Source,
		GeneratedAt:    time.Now().UTC(),
		IncludeImages:  b.in.Request.IncludeImages,
		HasRealImages:  b.in.HasRealImages || b.realImage,
		IsFallback:     isFallback,
		FallbackReason: reason,
	}
}
