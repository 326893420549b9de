// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// result.go provides a Valkey-backed store for generated websites. Each
// generation is stored under its ID with a TTL so the rendering page can
// fetch it in a follow-up request. A generation is a transient artifact:
// it expires or gets overwritten, never versioned.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"siteforge/internal/models"
)

const (
	// resultKeyPrefix is the Valkey key prefix for stored generations.
	resultKeyPrefix = "website:"

	// DefaultResultTTL is how long a generated website stays retrievable.
	DefaultResultTTL = time.Hour
)

// ResultCache stores generated websites in Valkey.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a result cache backed by the given Valkey client.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl == 0 {
		ttl = DefaultResultTTL
	}
	return &ResultCache{client: client, ttl: ttl}
}

// Get retrieves a generated website by ID. Returns false on miss or
// decode failure.
func (rc *ResultCache) Get(ctx context.Context, id string) (*models.GeneratedWebsite, bool) {
	val, err := rc.client.Get(ctx, resultKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("result cache get error", "id", id, "error", err)
		return nil, false
	}

	var site models.GeneratedWebsite
	if err := json.Unmarshal(val, &site); err != nil {
		slog.Warn("result cache decode error", "id", id, "error", err)
		return nil, false
	}
	return &site, true
}

// Set stores a generated website under its ID with the configured TTL.
// Storage failures are logged and swallowed: the caller already has the
// document in hand, so a dead cache must not fail the generation.
func (rc *ResultCache) Set(ctx context.Context, site *models.GeneratedWebsite) {
	payload, err := json.Marshal(site)
	if err != nil {
		slog.Warn("result cache encode error", "id", site.ID, "error", err)
		return
	}
	if err := rc.client.Set(ctx, resultKeyPrefix+site.ID, payload, rc.ttl).Err(); err != nil {
		slog.Warn("result cache set error", "id", site.ID, "error", err)
	}
}
