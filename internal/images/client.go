// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package images wraps the Pexels photo search API. The adapter never
// fails: without a plausible API key, or when the remote call errors, it
// substitutes deterministic placeholder descriptors so the generation
// pipeline keeps going. Successful searches are cached in memory for an
// hour.
package images

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// minKeyLen guards against empty-string or placeholder keys ("changeme")
// being treated as real credentials. Pexels keys are much longer.
const minKeyLen = 20

const defaultBaseURL = "https://api.pexels.com/v1"

// Image is one photo descriptor, real or placeholder.
type Image struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	ThumbURL     string `json:"thumbUrl"`
	Alt          string `json:"alt"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Photographer string `json:"photographer,omitempty"`
	Placeholder  bool   `json:"placeholder"`
}

// Client is the image provider adapter.
type Client struct {
	apiKey  string
	baseURL string
	http    *resty.Client
	cache   *queryCache
}

// New creates a client for the given API key. An implausible key simply
// puts the client in placeholder mode; it is not an error.
func New(apiKey string) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: defaultBaseURL,
		http: resty.New().
			SetTimeout(10 * time.Second).
			SetRetryCount(0),
		cache: newQueryCache(DefaultCacheTTL),
	}
}

// IsConfigured reports whether a plausible API key is present.
func (c *Client) IsConfigured() bool {
	return len(c.apiKey) >= minKeyLen
}

// pexelsPhoto mirrors the fields we use from the Pexels search response.
type pexelsPhoto struct {
	ID           int    `json:"id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Alt          string `json:"alt"`
	Photographer string `json:"photographer"`
	Src          struct {
		Large  string `json:"large"`
		Medium string `json:"medium"`
	} `json:"src"`
}

type pexelsSearchResponse struct {
	Photos []pexelsPhoto `json:"photos"`
}

// Search queries the photo API. On any failure — missing credentials,
// non-2xx status, network error — it returns perPage placeholders
// instead of an error. Successful results are cached by
// (query, page, perPage, orientation).
func (c *Client) Search(ctx context.Context, query string, page, perPage int, orientation string) []Image {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	if !c.IsConfigured() {
		slog.Info("image provider not configured, using placeholders", "query", query)
		return Placeholders(query, perPage)
	}

	key := fmt.Sprintf("%s|%d|%d|%s", strings.ToLower(strings.TrimSpace(query)), page, perPage, orientation)
	if cached, ok := c.cache.get(key); ok {
		return cached
	}

	var result pexelsSearchResponse
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", c.apiKey).
		SetQueryParams(map[string]string{
			"query":    query,
			"page":     fmt.Sprintf("%d", page),
			"per_page": fmt.Sprintf("%d", perPage),
		}).
		SetResult(&result)
	if orientation != "" {
		req.SetQueryParam("orientation", orientation)
	}

	resp, err := req.Get(c.baseURL + "/search")
	if err != nil {
		slog.Warn("image search failed, using placeholders", "query", query, "error", err)
		return Placeholders(query, perPage)
	}
	if resp.IsError() {
		slog.Warn("image search returned error status, using placeholders",
			"query", query, "status", resp.StatusCode())
		return Placeholders(query, perPage)
	}
	if len(result.Photos) == 0 {
		slog.Info("image search returned no results, using placeholders", "query", query)
		return Placeholders(query, perPage)
	}

	imgs := make([]Image, 0, len(result.Photos))
	for _, p := range result.Photos {
		alt := p.Alt
		if alt == "" {
			alt = query
		}
		imgs = append(imgs, Image{
			ID:           fmt.Sprintf("pexels-%d", p.ID),
			URL:          p.Src.Large,
			ThumbURL:     p.Src.Medium,
			Alt:          alt,
			Width:        p.Width,
			Height:       p.Height,
			Photographer: p.Photographer,
		})
	}

	c.cache.put(key, imgs)
	return imgs
}

// Random returns a single image for a query.
func (c *Client) Random(ctx context.Context, query string) Image {
	imgs := c.Search(ctx, query, 1, 1, "")
	return imgs[0]
}

// industryQueries maps industry keys to richer search phrases. A bare
// slug like "realestate" retrieves markedly worse photos than a curated
// phrase.
var industryQueries = map[string]string{
	"technology": "technology office software team",
	"restaurant": "restaurant food cuisine dining",
	"healthcare": "medical clinic doctor healthcare",
	"ecommerce":  "product retail shopping lifestyle",
	"education":  "classroom students learning education",
	"realestate": "modern home architecture real estate",
	"fitness":    "gym workout fitness training",
	"legal":      "law office professional business",
	"creative":   "design studio creative workspace",
	"finance":    "finance business professional office",
}

// IndustryImages returns count images relevant to an industry, mapping
// the key through the curated synonym table before searching.
func (c *Client) IndustryImages(ctx context.Context, industryKey string, count int) []Image {
	key := strings.ToLower(strings.TrimSpace(industryKey))
	query, ok := industryQueries[key]
	if !ok {
		query = industryQueries["technology"]
	}
	return c.Search(ctx, query, 1, count, "landscape")
}
