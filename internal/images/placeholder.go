// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package images

import (
	"fmt"
	"net/url"
	"strings"
)

// Placeholders returns count deterministic placeholder descriptors for a
// query. The synthetic URL encodes the query and the index, so the same
// inputs always produce the same images — tests and the offline mode
// rely on this.
func Placeholders(query string, count int) []Image {
	if count <= 0 {
		count = 1
	}
	slug := placeholderSlug(query)
	out := make([]Image, count)
	for i := range out {
		out[i] = Image{
			ID:          fmt.Sprintf("placeholder-%s-%d", slug, i),
			URL:         fmt.Sprintf("https://placehold.co/1200x800?text=%s+%d", url.QueryEscape(query), i+1),
			ThumbURL:    fmt.Sprintf("https://placehold.co/400x267?text=%s+%d", url.QueryEscape(query), i+1),
			Alt:         fmt.Sprintf("%s placeholder %d", query, i+1),
			Width:       1200,
			Height:      800,
			Placeholder: true,
		}
	}
	return out
}

// placeholderSlug reduces a query to a stable identifier fragment.
func placeholderSlug(query string) string {
	slug := strings.ToLower(strings.TrimSpace(query))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "image"
	}
	return slug
}
