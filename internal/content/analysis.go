// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"strings"

	"siteforge/internal/catalog"
)

// Analysis is a lightweight, deterministic read of the business
// description: the industry's audience and goal tags plus any notable
// keywords lifted from the description itself. It feeds the prompt and
// the assembler; no AI is involved.
type Analysis struct {
	Audiences []string `json:"audiences"`
	Goals     []string `json:"goals"`
	Keywords  []string `json:"keywords"`
}

// stopwords excluded from description keyword extraction.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "for": true,
	"from": true, "has": true, "have": true, "in": true, "is": true,
	"it": true, "its": true, "of": true, "on": true, "our": true,
	"that": true, "the": true, "this": true, "to": true, "we": true,
	"with": true, "you": true, "your": true,
}

const maxKeywords = 8

// Analyze derives an Analysis from the description and industry config.
// Output is deterministic for a given input.
func Analyze(description string, cfg catalog.IndustryConfig) Analysis {
	an := Analysis{
		Audiences: append([]string(nil), cfg.Audiences...),
		Goals:     append([]string(nil), cfg.Goals...),
	}

	seen := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(description)) {
		word = strings.Trim(word, ".,!?;:()\"'")
		if len(word) < 4 || stopwords[word] || seen[word] {
			continue
		}
		seen[word] = true
		an.Keywords = append(an.Keywords, word)
		if len(an.Keywords) == maxKeywords {
			break
		}
	}

	return an
}
