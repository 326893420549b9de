// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package components

import (
	"reflect"
	"testing"
)

func TestNormalizePropsFillsMissing(t *testing.T) {
	got := NormalizeProps("HeroSection", map[string]any{})

	if got["headline"] != "Welcome to our website" {
		t.Errorf("headline = %v", got["headline"])
	}
	if got["ctaText"] != "Learn more" {
		t.Errorf("ctaText = %v", got["ctaText"])
	}
	if got["imageUrl"] != PlaceholderImageURL {
		t.Errorf("imageUrl = %v", got["imageUrl"])
	}
}

func TestNormalizePropsPassesThroughValid(t *testing.T) {
	raw := map[string]any{
		"headline": "Fresh pasta daily",
		"ctaText":  "Reserve a table",
	}
	got := NormalizeProps("HeroSection", raw)

	if got["headline"] != "Fresh pasta daily" {
		t.Errorf("headline overwritten: %v", got["headline"])
	}
	if got["ctaText"] != "Reserve a table" {
		t.Errorf("ctaText overwritten: %v", got["ctaText"])
	}
	// Missing siblings still defaulted.
	if got["subheadline"] == "" || got["subheadline"] == nil {
		t.Errorf("subheadline not defaulted: %v", got["subheadline"])
	}
}

func TestNormalizePropsEmptyStringTreatedAsMissing(t *testing.T) {
	got := NormalizeProps("HeroSection", map[string]any{"headline": "   "})
	if got["headline"] != "Welcome to our website" {
		t.Errorf("blank headline should take default, got %v", got["headline"])
	}
}

func TestNormalizePropsWrongShape(t *testing.T) {
	raw := map[string]any{
		"headline": 42,           // number where string expected
		"features": "not a list", // string where list expected
	}
	got := NormalizeProps("FeaturesSection", raw)

	if got["title"] != "Why choose us" {
		t.Errorf("title = %v", got["title"])
	}
	features, ok := got["features"].([]any)
	if !ok || len(features) == 0 {
		t.Fatalf("features not replaced by default list: %T %v", got["features"], got["features"])
	}
}

func TestNormalizeListElementByElement(t *testing.T) {
	raw := map[string]any{
		"title": "What we offer",
		"features": []any{
			map[string]any{"title": "Custom builds"}, // description and icon missing
			map[string]any{"title": "Repairs", "description": "Same-day fixes.", "icon": "wrench"},
		},
	}
	got := NormalizeProps("FeaturesSection", raw)

	features := got["features"].([]any)
	if len(features) != 2 {
		t.Fatalf("len(features) = %d", len(features))
	}

	first := features[0].(map[string]any)
	if first["title"] != "Custom builds" {
		t.Errorf("element title overwritten: %v", first["title"])
	}
	if first["description"] != "A short description of this feature." {
		t.Errorf("element description not defaulted: %v", first["description"])
	}
	if first["icon"] != "check" {
		t.Errorf("element icon not defaulted: %v", first["icon"])
	}

	second := features[1].(map[string]any)
	if second["description"] != "Same-day fixes." || second["icon"] != "wrench" {
		t.Errorf("complete element modified: %v", second)
	}
}

func TestNormalizePropsUnknownType(t *testing.T) {
	raw := map[string]any{"anything": "goes", "n": 3}
	got := NormalizeProps("HolographicWidget", raw)
	if !reflect.DeepEqual(got, raw) {
		t.Errorf("unknown type should pass through untouched: %v", got)
	}
	// Shallow copy, not the same map.
	got["anything"] = "changed"
	if raw["anything"] != "goes" {
		t.Error("NormalizeProps returned the input map itself")
	}
}

func TestNormalizePropsIdempotent(t *testing.T) {
	for _, typ := range []string{"Header", "HeroSection", "FeaturesSection", "MenuSection", "Footer"} {
		t.Run(typ, func(t *testing.T) {
			once := NormalizeProps(typ, map[string]any{})
			twice := NormalizeProps(typ, once)
			if !reflect.DeepEqual(once, twice) {
				t.Errorf("normalize not idempotent:\nonce:  %v\ntwice: %v", once, twice)
			}
		})
	}
}

func TestNormalizePropsDoesNotMutateInput(t *testing.T) {
	raw := map[string]any{"headline": "Keep me"}
	NormalizeProps("HeroSection", raw)
	if len(raw) != 1 {
		t.Errorf("input map mutated: %v", raw)
	}
}

func TestNormalizeNumberCoercion(t *testing.T) {
	spec := PropSpec{Name: "count", Type: TypeNumber, Default: float64(3)}
	for _, tt := range []struct {
		in   any
		want any
	}{
		{float64(7), float64(7)},
		{int(7), float64(7)},
		{int64(7), float64(7)},
		{"seven", float64(3)},
		{nil, float64(3)},
	} {
		if got := normalizeValue(spec, tt.in); got != tt.want {
			t.Errorf("normalizeValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultListCloned(t *testing.T) {
	a := NormalizeProps("Footer", map[string]any{})
	links := a["links"].([]any)
	links[0].(map[string]any)["label"] = "mutated"

	b := NormalizeProps("Footer", map[string]any{})
	if b["links"].([]any)[0].(map[string]any)["label"] == "mutated" {
		t.Error("default list shares backing maps between calls")
	}
}
