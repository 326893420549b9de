// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"siteforge/internal/models"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "website:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testSite(id string) *models.GeneratedWebsite {
	return &models.GeneratedWebsite{
		ID: id,
		Metadata: models.Metadata{
			Title:       "Test Site",
			Industry:    "technology",
			AIUsed:      "local",
			GeneratedAt: time.Now().UTC().Truncate(time.Second),
		},
		Components: []models.Component{
			{Type: "Header", Props: map[string]any{"logoText": "Test Site"}},
		},
	}
}

func TestResultCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Minute)
	ctx := context.Background()

	site := testSite("test-result-1")
	rc.Set(ctx, site)

	got, ok := rc.Get(ctx, "test-result-1")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.ID != site.ID || got.Metadata.Title != site.Metadata.Title {
		t.Errorf("got %+v", got.Metadata)
	}
	if len(got.Components) != 1 || got.Components[0].Type != "Header" {
		t.Errorf("components = %+v", got.Components)
	}
}

func TestResultCacheMiss(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Minute)

	if _, ok := rc.Get(context.Background(), "never-stored"); ok {
		t.Error("expected miss for unknown ID")
	}
}

func TestResultCacheTTL(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Second)
	ctx := context.Background()

	rc.Set(ctx, testSite("test-result-ttl"))

	ttl, err := client.TTL(ctx, "website:test-result-ttl").Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Second {
		t.Errorf("TTL = %v, want (0, 1s]", ttl)
	}
}

func TestResultCacheDecodeFailure(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Minute)
	ctx := context.Background()

	client.Set(ctx, "website:corrupt", "not json", time.Minute)

	if _, ok := rc.Get(ctx, "corrupt"); ok {
		t.Error("expected miss for corrupt payload")
	}
}
