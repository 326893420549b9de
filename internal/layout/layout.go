// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package layout maps an industry key (plus an optional named variation)
// to an ordered list of page sections. Selecting a variation replaces the
// base section list wholesale; it never merges. Unknown industries fall
// back to the default industry's template and unknown variations are
// ignored silently.
package layout

import (
	"sort"
	"strings"

	"siteforge/internal/catalog"
)

// Size describes how much vertical space a section takes.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeHero   Size = "hero"
)

// Prominence describes how strongly a section should draw attention.
type Prominence string

const (
	ProminencePrimary   Prominence = "primary"
	ProminenceSecondary Prominence = "secondary"
	ProminenceTertiary  Prominence = "tertiary"
)

// Section is one named block of a page with its layout metadata.
type Section struct {
	Type       string     `json:"type"`
	Size       Size       `json:"size"`
	Prominence Prominence `json:"prominence"`
	Required   bool       `json:"required"`
}

// Template is the ordered section plan for one industry. Variations each
// supply a full replacement section list for a narrower audience.
type Template struct {
	Industry   string               `json:"industry"`
	Emphasis   string               `json:"emphasis"`
	Optional   []string             `json:"optional"`
	Sections   []Section            `json:"sections"`
	Variations map[string][]Section `json:"-"`
}

// standard section rows shared across templates.
func header() Section { return Section{Type: "Header", Size: SizeSmall, Prominence: ProminencePrimary, Required: true} }
func footer() Section { return Section{Type: "Footer", Size: SizeSmall, Prominence: ProminenceTertiary, Required: true} }
func hero() Section   { return Section{Type: "HeroSection", Size: SizeHero, Prominence: ProminencePrimary, Required: true} }

var templates = map[string]Template{
	"technology": {
		Industry: "technology",
		Emphasis: "product",
		Optional: []string{"FAQSection", "PricingTable"},
		Sections: []Section{
			header(), hero(),
			{Type: "FeaturesSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "AboutSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "ServicesSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "CTASection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
			footer(),
		},
		Variations: map[string][]Section{
			"saas": {
				header(), hero(),
				{Type: "FeaturesSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
				{Type: "PricingTable", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
				{Type: "FAQSection", Size: SizeMedium, Prominence: ProminenceSecondary},
				{Type: "CTASection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
				footer(),
			},
		},
	},
	"restaurant": {
		Industry: "restaurant",
		Emphasis: "atmosphere",
		Optional: []string{"GallerySection", "ReservationWidget"},
		Sections: []Section{
			header(), hero(),
			{Type: "MenuSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "AboutSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceTertiary},
			{Type: "ContactSection", Size: SizeMedium, Prominence: ProminenceSecondary, Required: true},
			footer(),
		},
		Variations: map[string][]Section{
			"fine-dining": {
				header(), hero(),
				{Type: "AboutSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
				{Type: "MenuSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
				{Type: "GallerySection", Size: SizeMedium, Prominence: ProminenceSecondary},
				{Type: "ReservationWidget", Size: SizeSmall, Prominence: ProminencePrimary, Required: true},
				footer(),
			},
			"casual-dining": {
				header(), hero(),
				{Type: "MenuSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
				{Type: "GallerySection", Size: SizeMedium, Prominence: ProminenceTertiary},
				{Type: "ContactSection", Size: SizeMedium, Prominence: ProminenceSecondary, Required: true},
				footer(),
			},
		},
	},
	"healthcare": {
		Industry: "healthcare",
		Emphasis: "trust",
		Optional: []string{"FAQSection", "AppointmentWidget"},
		Sections: []Section{
			header(), hero(),
			{Type: "ServicesSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "AboutSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceTertiary},
			{Type: "FAQSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "ContactSection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
			footer(),
		},
	},
	"ecommerce": {
		Industry: "ecommerce",
		Emphasis: "conversion",
		Optional: []string{"FAQSection", "CollectionBanner"},
		Sections: []Section{
			header(), hero(),
			{Type: "ProductGrid", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "FeaturesSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceTertiary},
			{Type: "CTASection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
			footer(),
		},
	},
	"education": {
		Industry: "education",
		Emphasis: "outcomes",
		Optional: []string{"FAQSection", "CourseCatalog"},
		Sections: []Section{
			header(), hero(),
			{Type: "FeaturesSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "ServicesSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "FAQSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			footer(),
		},
	},
	"realestate": {
		Industry: "realestate",
		Emphasis: "listings",
		Optional: []string{"MortgageCalculator", "AgentProfiles"},
		Sections: []Section{
			header(), hero(),
			{Type: "PropertyListings", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "AboutSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceTertiary},
			{Type: "ContactSection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
			footer(),
		},
	},
	"fitness": {
		Industry: "fitness",
		Emphasis: "energy",
		Optional: []string{"PricingTable", "TrainerProfiles"},
		Sections: []Section{
			header(), hero(),
			{Type: "ClassSchedule", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "FeaturesSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceTertiary},
			{Type: "CTASection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
			footer(),
		},
		Variations: map[string][]Section{
			"studio": {
				header(), hero(),
				{Type: "ClassSchedule", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
				{Type: "TrainerProfiles", Size: SizeMedium, Prominence: ProminenceSecondary},
				{Type: "PricingTable", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
				footer(),
			},
		},
	},
	"legal": {
		Industry: "legal",
		Emphasis: "credibility",
		Optional: []string{"FAQSection", "AttorneyProfiles"},
		Sections: []Section{
			header(), hero(),
			{Type: "ServicesSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "AboutSection", Size: SizeMedium, Prominence: ProminencePrimary},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "ContactSection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
			footer(),
		},
	},
	"creative": {
		Industry: "creative",
		Emphasis: "portfolio",
		Optional: []string{"PortfolioGrid", "CTASection"},
		Sections: []Section{
			header(), hero(),
			{Type: "GallerySection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "ServicesSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "AboutSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "ContactSection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
			footer(),
		},
	},
	"finance": {
		Industry: "finance",
		Emphasis: "trust",
		Optional: []string{"FAQSection", "RatesTable"},
		Sections: []Section{
			header(), hero(),
			{Type: "ServicesSection", Size: SizeLarge, Prominence: ProminencePrimary, Required: true},
			{Type: "AboutSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "TestimonialsSection", Size: SizeMedium, Prominence: ProminenceTertiary},
			{Type: "FAQSection", Size: SizeMedium, Prominence: ProminenceSecondary},
			{Type: "ContactSection", Size: SizeMedium, Prominence: ProminencePrimary, Required: true},
			footer(),
		},
	},
}

// Resolve returns the layout template for an industry key. If variation
// names a known variation of that industry, the returned template carries
// the variation's section list in place of the base list; emphasis and
// the optional list are unchanged. Unknown variations are ignored and
// unknown industries resolve to the default industry's template.
func Resolve(industryKey, variation string) Template {
	key := strings.ToLower(strings.TrimSpace(industryKey))
	tpl, ok := templates[key]
	if !ok {
		tpl = templates[catalog.DefaultKey]
	}

	sections := tpl.Sections
	if v := strings.ToLower(strings.TrimSpace(variation)); v != "" {
		if repl, ok := tpl.Variations[v]; ok {
			sections = repl
		}
	}

	// Return a copy so callers cannot mutate the catalog. Selecting a
	// variation swaps only the section list; every other field, the
	// variations map included, carries over from the base.
	out := Template{
		Industry: tpl.Industry,
		Emphasis: tpl.Emphasis,
		Optional: append([]string(nil), tpl.Optional...),
		Sections: append([]Section(nil), sections...),
	}
	if len(tpl.Variations) > 0 {
		out.Variations = make(map[string][]Section, len(tpl.Variations))
		for name, secs := range tpl.Variations {
			out.Variations[name] = append([]Section(nil), secs...)
		}
	}
	return out
}

// Variations lists the variation names declared for an industry.
func Variations(industryKey string) []string {
	key := strings.ToLower(strings.TrimSpace(industryKey))
	tpl, ok := templates[key]
	if !ok {
		tpl = templates[catalog.DefaultKey]
	}
	var names []string
	for name := range tpl.Variations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
