// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import "testing"

func TestResolveKnownIndustries(t *testing.T) {
	tests := []struct {
		industry string
		wantID   string
		wantDark bool
	}{
		{"technology", "tech-slate", true},
		{"restaurant", "warm-bistro", false},
		{"healthcare", "clinic-calm", false},
		{"ecommerce", "storefront", false},
		{"education", "campus", false},
		{"realestate", "estate-stone", false},
		{"fitness", "gym-charcoal", true},
		{"legal", "counsel-navy", false},
		{"creative", "studio-ink", false},
		{"finance", "ledger-green", false},
	}

	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			got := Resolve(tt.industry)
			if got.ID != tt.wantID {
				t.Errorf("Resolve(%q).ID = %q, want %q", tt.industry, got.ID, tt.wantID)
			}
			if got.Dark != tt.wantDark {
				t.Errorf("Resolve(%q).Dark = %v, want %v", tt.industry, got.Dark, tt.wantDark)
			}
		})
	}
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	for _, key := range []string{"", "underwater-basket-weaving", "   "} {
		got := Resolve(key)
		if got.ID != DefaultID {
			t.Errorf("Resolve(%q).ID = %q, want %q", key, got.ID, DefaultID)
		}
	}
}

func TestResolveNormalizesKey(t *testing.T) {
	want := Resolve("technology")
	for _, key := range []string{"Technology", "  technology  ", "TECHNOLOGY"} {
		if got := Resolve(key); got.ID != want.ID {
			t.Errorf("Resolve(%q).ID = %q, want %q", key, got.ID, want.ID)
		}
	}
}

func TestResolveIsStable(t *testing.T) {
	a := Resolve("restaurant")
	b := Resolve("restaurant")
	if a.ID != b.ID || a.Colors != b.Colors || a.Typography != b.Typography {
		t.Error("Resolve returned different values for the same key")
	}
}

func TestEveryThemeIsComplete(t *testing.T) {
	check := func(t *testing.T, th Theme) {
		t.Helper()
		if th.ID == "" || th.Name == "" {
			t.Error("theme missing ID or Name")
		}
		colors := []string{
			th.Colors.Primary, th.Colors.Secondary, th.Colors.Accent,
			th.Colors.Background, th.Colors.Text, th.Colors.Muted, th.Colors.Border,
		}
		for i, c := range colors {
			if c == "" {
				t.Errorf("color %d is empty", i)
			}
		}
		if th.Typography.FontFamily == "" || th.Typography.BaseSize == "" {
			t.Error("typography incomplete")
		}
		if len(th.Spacing) == 0 {
			t.Error("spacing scale empty")
		}
		if th.Radii.Medium == "" || th.Shadows.Medium == "" {
			t.Error("radii or shadows incomplete")
		}
	}

	t.Run("default", func(t *testing.T) { check(t, Default()) })
	for key := range themes {
		t.Run(key, func(t *testing.T) { check(t, Resolve(key)) })
	}
}
