// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"reflect"
	"testing"

	"siteforge/internal/catalog"
)

func TestAnalyzeCarriesIndustryTags(t *testing.T) {
	cfg := catalog.Get("healthcare")
	an := Analyze("A family clinic", cfg)

	if !reflect.DeepEqual(an.Audiences, cfg.Audiences) {
		t.Errorf("Audiences = %v", an.Audiences)
	}
	if !reflect.DeepEqual(an.Goals, cfg.Goals) {
		t.Errorf("Goals = %v", an.Goals)
	}
}

func TestAnalyzeKeywordExtraction(t *testing.T) {
	cfg := catalog.Get("restaurant")
	an := Analyze("We are a family-owned Italian trattoria serving fresh pasta, wood-fired pizza, and seasonal desserts.", cfg)

	want := []string{"family-owned", "italian", "trattoria", "serving", "fresh", "pasta", "wood-fired", "pizza"}
	if !reflect.DeepEqual(an.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", an.Keywords, want)
	}
}

func TestAnalyzeSkipsStopwordsShortWordsAndDuplicates(t *testing.T) {
	cfg := catalog.Get("technology")
	an := Analyze("The team and the team ship new code", cfg)

	for _, kw := range an.Keywords {
		if kw == "the" || kw == "and" || len(kw) < 4 {
			t.Errorf("unexpected keyword %q", kw)
		}
	}
	seen := map[string]int{}
	for _, kw := range an.Keywords {
		seen[kw]++
	}
	for kw, n := range seen {
		if n > 1 {
			t.Errorf("keyword %q appears %d times", kw, n)
		}
	}
}

func TestAnalyzeCapsKeywords(t *testing.T) {
	cfg := catalog.Get("technology")
	an := Analyze("alpha bravo charlie delta echo foxtrot golfclub hotelier india juliet kilogram lima", cfg)
	if len(an.Keywords) != maxKeywords {
		t.Errorf("len(Keywords) = %d, want %d", len(an.Keywords), maxKeywords)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	cfg := catalog.Get("creative")
	desc := "Boutique design studio focused on brand identity work"
	if !reflect.DeepEqual(Analyze(desc, cfg), Analyze(desc, cfg)) {
		t.Error("analysis not deterministic")
	}
}
