// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme maps an industry key to a visual theme: color tokens,
// typography, spacing, radii, and shadows. The catalog is static and
// read-only after init; lookups never fail — unknown industries resolve
// to the default light theme.
package theme

import "strings"

// Colors holds the color tokens applied uniformly across a generated site.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Border     string `json:"border"`
}

// Typography holds font family and sizing tokens.
type Typography struct {
	FontFamily        string  `json:"fontFamily"`
	HeadingFontFamily string  `json:"headingFontFamily"`
	BaseSize          string  `json:"baseSize"`
	ScaleRatio        float64 `json:"scaleRatio"`
	LineHeight        float64 `json:"lineHeight"`
}

// Radii holds the border-radius scale.
type Radii struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
	Full   string `json:"full"`
}

// Shadows holds the elevation scale.
type Shadows struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// Theme is an immutable bundle of design tokens. Themes are selected by
// industry lookup and never mutated.
type Theme struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Colors     Colors     `json:"colors"`
	Typography Typography `json:"typography"`
	Spacing    []float64  `json:"spacing"`
	Radii      Radii      `json:"radii"`
	Shadows    Shadows    `json:"shadows"`
	Dark       bool       `json:"dark"`
}

// DefaultID is the theme returned for industries without a dedicated theme.
const DefaultID = "light-default"

var baseSpacing = []float64{0.25, 0.5, 1, 1.5, 2, 3, 4, 6, 8}

var baseRadii = Radii{Small: "0.25rem", Medium: "0.5rem", Large: "1rem", Full: "9999px"}

var baseShadows = Shadows{
	Small:  "0 1px 2px rgba(0,0,0,0.05)",
	Medium: "0 4px 6px rgba(0,0,0,0.1)",
	Large:  "0 20px 25px rgba(0,0,0,0.15)",
}

var defaultTheme = Theme{
	ID:   DefaultID,
	Name: "Light Default",
	Colors: Colors{
		Primary:    "#2563eb",
		Secondary:  "#1e40af",
		Accent:     "#f59e0b",
		Background: "#ffffff",
		Text:       "#111827",
		Muted:      "#6b7280",
		Border:     "#e5e7eb",
	},
	Typography: Typography{
		FontFamily:        "Inter, sans-serif",
		HeadingFontFamily: "Inter, sans-serif",
		BaseSize:          "16px",
		ScaleRatio:        1.25,
		LineHeight:        1.6,
	},
	Spacing: baseSpacing,
	Radii:   baseRadii,
	Shadows: baseShadows,
}

// themes maps industry keys to their theme. Industries missing here fall
// back to defaultTheme.
var themes = map[string]Theme{
	"technology": {
		ID:   "tech-slate",
		Name: "Tech Slate",
		Colors: Colors{
			Primary:    "#6366f1",
			Secondary:  "#4f46e5",
			Accent:     "#22d3ee",
			Background: "#0f172a",
			Text:       "#f1f5f9",
			Muted:      "#94a3b8",
			Border:     "#1e293b",
		},
		Typography: Typography{
			FontFamily:        "Inter, sans-serif",
			HeadingFontFamily: "Space Grotesk, sans-serif",
			BaseSize:          "16px",
			ScaleRatio:        1.25,
			LineHeight:        1.6,
		},
		Spacing: baseSpacing,
		Radii:   baseRadii,
		Shadows: baseShadows,
		Dark:    true,
	},
	"restaurant": {
		ID:   "warm-bistro",
		Name: "Warm Bistro",
		Colors: Colors{
			Primary:    "#b45309",
			Secondary:  "#92400e",
			Accent:     "#dc2626",
			Background: "#fffbeb",
			Text:       "#292524",
			Muted:      "#78716c",
			Border:     "#e7e5e4",
		},
		Typography: Typography{
			FontFamily:        "Lora, serif",
			HeadingFontFamily: "Playfair Display, serif",
			BaseSize:          "17px",
			ScaleRatio:        1.3,
			LineHeight:        1.7,
		},
		Spacing: baseSpacing,
		Radii:   Radii{Small: "0.125rem", Medium: "0.375rem", Large: "0.75rem", Full: "9999px"},
		Shadows: baseShadows,
	},
	"healthcare": {
		ID:   "clinic-calm",
		Name: "Clinic Calm",
		Colors: Colors{
			Primary:    "#0d9488",
			Secondary:  "#0f766e",
			Accent:     "#38bdf8",
			Background: "#f0fdfa",
			Text:       "#134e4a",
			Muted:      "#5eead4",
			Border:     "#ccfbf1",
		},
		Typography: Typography{
			FontFamily:        "Source Sans 3, sans-serif",
			HeadingFontFamily: "Source Sans 3, sans-serif",
			BaseSize:          "16px",
			ScaleRatio:        1.2,
			LineHeight:        1.65,
		},
		Spacing: baseSpacing,
		Radii:   baseRadii,
		Shadows: baseShadows,
	},
	"ecommerce": {
		ID:   "storefront",
		Name: "Storefront",
		Colors: Colors{
			Primary:    "#db2777",
			Secondary:  "#be185d",
			Accent:     "#facc15",
			Background: "#ffffff",
			Text:       "#18181b",
			Muted:      "#71717a",
			Border:     "#e4e4e7",
		},
		Typography: Typography{
			FontFamily:        "DM Sans, sans-serif",
			HeadingFontFamily: "DM Sans, sans-serif",
			BaseSize:          "16px",
			ScaleRatio:        1.25,
			LineHeight:        1.55,
		},
		Spacing: baseSpacing,
		Radii:   baseRadii,
		Shadows: baseShadows,
	},
	"education": {
		ID:   "campus",
		Name: "Campus",
		Colors: Colors{
			Primary:    "#7c3aed",
			Secondary:  "#6d28d9",
			Accent:     "#fb923c",
			Background: "#faf5ff",
			Text:       "#1e1b4b",
			Muted:      "#6b7280",
			Border:     "#ede9fe",
		},
		Typography: Typography{
			FontFamily:        "Nunito, sans-serif",
			HeadingFontFamily: "Nunito, sans-serif",
			BaseSize:          "16px",
			ScaleRatio:        1.25,
			LineHeight:        1.65,
		},
		Spacing: baseSpacing,
		Radii:   baseRadii,
		Shadows: baseShadows,
	},
	"realestate": {
		ID:   "estate-stone",
		Name: "Estate Stone",
		Colors: Colors{
			Primary:    "#374151",
			Secondary:  "#1f2937",
			Accent:     "#b91c1c",
			Background: "#f9fafb",
			Text:       "#111827",
			Muted:      "#9ca3af",
			Border:     "#e5e7eb",
		},
		Typography: Typography{
			FontFamily:        "Libre Franklin, sans-serif",
			HeadingFontFamily: "Cormorant Garamond, serif",
			BaseSize:          "16px",
			ScaleRatio:        1.3,
			LineHeight:        1.6,
		},
		Spacing: baseSpacing,
		Radii:   Radii{Small: "0", Medium: "0.25rem", Large: "0.5rem", Full: "9999px"},
		Shadows: baseShadows,
	},
	"fitness": {
		ID:   "gym-charcoal",
		Name: "Gym Charcoal",
		Colors: Colors{
			Primary:    "#f97316",
			Secondary:  "#ea580c",
			Accent:     "#84cc16",
			Background: "#18181b",
			Text:       "#fafafa",
			Muted:      "#a1a1aa",
			Border:     "#27272a",
		},
		Typography: Typography{
			FontFamily:        "Barlow, sans-serif",
			HeadingFontFamily: "Barlow Condensed, sans-serif",
			BaseSize:          "16px",
			ScaleRatio:        1.3,
			LineHeight:        1.5,
		},
		Spacing: baseSpacing,
		Radii:   baseRadii,
		Shadows: baseShadows,
		Dark:    true,
	},
	"legal": {
		ID:   "counsel-navy",
		Name: "Counsel Navy",
		Colors: Colors{
			Primary:    "#1e3a8a",
			Secondary:  "#172554",
			Accent:     "#b45309",
			Background: "#ffffff",
			Text:       "#0f172a",
			Muted:      "#64748b",
			Border:     "#e2e8f0",
		},
		Typography: Typography{
			FontFamily:        "Source Serif 4, serif",
			HeadingFontFamily: "Source Serif 4, serif",
			BaseSize:          "17px",
			ScaleRatio:        1.2,
			LineHeight:        1.7,
		},
		Spacing: baseSpacing,
		Radii:   Radii{Small: "0.125rem", Medium: "0.25rem", Large: "0.5rem", Full: "9999px"},
		Shadows: baseShadows,
	},
	"creative": {
		ID:   "studio-ink",
		Name: "Studio Ink",
		Colors: Colors{
			Primary:    "#ec4899",
			Secondary:  "#a21caf",
			Accent:     "#eab308",
			Background: "#fdf4ff",
			Text:       "#1c1917",
			Muted:      "#78716c",
			Border:     "#f5d0fe",
		},
		Typography: Typography{
			FontFamily:        "Work Sans, sans-serif",
			HeadingFontFamily: "Fraunces, serif",
			BaseSize:          "16px",
			ScaleRatio:        1.35,
			LineHeight:        1.55,
		},
		Spacing: baseSpacing,
		Radii:   baseRadii,
		Shadows: baseShadows,
	},
	"finance": {
		ID:   "ledger-green",
		Name: "Ledger Green",
		Colors: Colors{
			Primary:    "#065f46",
			Secondary:  "#064e3b",
			Accent:     "#d97706",
			Background: "#f8fafc",
			Text:       "#0f172a",
			Muted:      "#64748b",
			Border:     "#e2e8f0",
		},
		Typography: Typography{
			FontFamily:        "IBM Plex Sans, sans-serif",
			HeadingFontFamily: "IBM Plex Sans, sans-serif",
			BaseSize:          "16px",
			ScaleRatio:        1.2,
			LineHeight:        1.6,
		},
		Spacing: baseSpacing,
		Radii:   baseRadii,
		Shadows: baseShadows,
	},
}

// Resolve returns the theme for an industry key. The key is trimmed and
// lowercased before lookup; unknown keys resolve to the default theme.
// The same value is returned on every call for a given key.
func Resolve(industryKey string) Theme {
	key := strings.ToLower(strings.TrimSpace(industryKey))
	if t, ok := themes[key]; ok {
		return t
	}
	return defaultTheme
}

// Default returns the fallback theme directly.
func Default() Theme {
	return defaultTheme
}
