// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"errors"
	"testing"

	"siteforge/internal/catalog"
	"siteforge/internal/models"
)

// mockProvider is a scripted test double for the provider interface.
type mockProvider struct {
	name     string
	response string
	err      error
	calls    int
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func testRequest(provider string) models.GenerateRequest {
	return models.GenerateRequest{
		Description:   "A cozy neighborhood bakery with fresh bread",
		WebsiteName:   "Sunrise Bakery",
		Industry:      "restaurant",
		Provider:      provider,
		IncludeImages: false,
	}
}

func generate(t *testing.T, g *Generator, provider string) Result {
	t.Helper()
	req := testRequest(provider)
	cfg := catalog.Get(req.Industry)
	return g.Generate(context.Background(), req, cfg, Analyze(req.Description, cfg))
}

func TestGeneratePrimarySucceeds(t *testing.T) {
	primary := &mockProvider{name: "local", response: validDocument}
	secondary := &mockProvider{name: "cloud", response: validDocument}
	g := NewGenerator(primary, secondary)

	res := generate(t, g, "auto")
	if res.Source != "local" {
		t.Errorf("Source = %q, want local", res.Source)
	}
	if secondary.calls != 0 {
		t.Error("secondary called although primary succeeded")
	}
	if err := res.Content.Validate(); err != nil {
		t.Errorf("content invalid: %v", err)
	}
}

func TestGenerateFallsThroughToSecondary(t *testing.T) {
	primary := &mockProvider{name: "local", err: errors.New("connection refused")}
	secondary := &mockProvider{name: "cloud", response: validDocument}
	g := NewGenerator(primary, secondary)

	res := generate(t, g, "auto")
	if res.Source != "cloud" {
		t.Errorf("Source = %q, want cloud", res.Source)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("calls: primary=%d secondary=%d", primary.calls, secondary.calls)
	}
}

func TestGenerateUnparseableResponseAdvancesChain(t *testing.T) {
	primary := &mockProvider{name: "local", response: "I cannot produce JSON today."}
	secondary := &mockProvider{name: "cloud", response: validDocument}
	g := NewGenerator(primary, secondary)

	res := generate(t, g, "auto")
	if res.Source != "cloud" {
		t.Errorf("Source = %q, want cloud", res.Source)
	}
}

func TestGenerateIncompleteDocumentIsAFailure(t *testing.T) {
	// Parses as JSON but misses required blocks.
	primary := &mockProvider{name: "local", response: `{"hero":{"headline":"only this"}}`}
	g := NewGenerator(primary, nil)

	res := generate(t, g, "auto")
	if res.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", res.Source, SourceFallback)
	}
}

func TestGenerateAllTiersFailLandsOnFallback(t *testing.T) {
	primary := &mockProvider{name: "local", err: errors.New("timeout")}
	secondary := &mockProvider{name: "cloud", err: errors.New("overloaded")}
	g := NewGenerator(primary, secondary)

	res := generate(t, g, "auto")
	if res.Source != SourceFallback {
		t.Fatalf("Source = %q, want %q", res.Source, SourceFallback)
	}
	if err := res.Content.Validate(); err != nil {
		t.Errorf("fallback content invalid: %v", err)
	}
	// Each tier is attempted exactly once.
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("calls: primary=%d secondary=%d", primary.calls, secondary.calls)
	}
}

func TestGenerateNilProviders(t *testing.T) {
	g := NewGenerator(nil, nil)
	res := generate(t, g, "auto")
	if res.Source != SourceFallback {
		t.Errorf("Source = %q, want %q", res.Source, SourceFallback)
	}
}

func TestGeneratePreferencePinsATier(t *testing.T) {
	t.Run("primary only", func(t *testing.T) {
		primary := &mockProvider{name: "local", err: errors.New("down")}
		secondary := &mockProvider{name: "cloud", response: validDocument}
		g := NewGenerator(primary, secondary)

		res := generate(t, g, "primary")
		if res.Source != SourceFallback {
			t.Errorf("Source = %q, want fallback when pinned tier fails", res.Source)
		}
		if secondary.calls != 0 {
			t.Error("secondary called despite primary pin")
		}
	})

	t.Run("secondary only", func(t *testing.T) {
		primary := &mockProvider{name: "local", response: validDocument}
		secondary := &mockProvider{name: "cloud", response: validDocument}
		g := NewGenerator(primary, secondary)

		res := generate(t, g, "secondary")
		if res.Source != "cloud" {
			t.Errorf("Source = %q, want cloud", res.Source)
		}
		if primary.calls != 0 {
			t.Error("primary called despite secondary pin")
		}
	})

	t.Run("empty preference behaves like auto", func(t *testing.T) {
		primary := &mockProvider{name: "local", response: validDocument}
		g := NewGenerator(primary, nil)
		res := generate(t, g, "")
		if res.Source != "local" {
			t.Errorf("Source = %q, want local", res.Source)
		}
	})
}

func TestFallbackIsCompleteForEveryIndustry(t *testing.T) {
	for _, ic := range catalog.All() {
		t.Run(ic.Key, func(t *testing.T) {
			c := Fallback(ic, "Test Business")
			if err := c.Validate(); err != nil {
				t.Errorf("fallback for %s invalid: %v", ic.Key, err)
			}
		})
	}
}

func TestFallbackDeterministic(t *testing.T) {
	cfg := catalog.Get("fitness")
	a := Fallback(cfg, "Iron Works")
	b := Fallback(cfg, "Iron Works")
	if a.Hero != b.Hero || a.CTA != b.CTA || len(a.Services) != len(b.Services) {
		t.Error("fallback not deterministic")
	}
}
