// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package images

import (
	"sync"
	"testing"
	"time"
)

func TestQueryCacheHitAndMiss(t *testing.T) {
	c := newQueryCache(time.Minute)

	if _, ok := c.get("missing"); ok {
		t.Error("empty cache reported a hit")
	}

	want := Placeholders("cafe", 2)
	c.put("cafe|1|2|", want)

	got, ok := c.get("cafe|1|2|")
	if !ok {
		t.Fatal("expected hit")
	}
	if len(got) != 2 || got[0].ID != want[0].ID {
		t.Errorf("got %+v", got)
	}
}

func TestQueryCacheExpiry(t *testing.T) {
	c := newQueryCache(time.Minute)
	base := time.Now()
	c.now = func() time.Time { return base }

	c.put("k", Placeholders("x", 1))

	c.now = func() time.Time { return base.Add(59 * time.Second) }
	if _, ok := c.get("k"); !ok {
		t.Error("entry expired early")
	}

	c.now = func() time.Time { return base.Add(61 * time.Second) }
	if _, ok := c.get("k"); ok {
		t.Error("entry survived past TTL")
	}
	// Expired entries are dropped on read.
	c.mu.RLock()
	_, still := c.entries["k"]
	c.mu.RUnlock()
	if still {
		t.Error("expired entry not removed")
	}
}

func TestQueryCacheConcurrentAccess(t *testing.T) {
	c := newQueryCache(time.Minute)
	imgs := Placeholders("busy", 1)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.put("shared", imgs)
				c.get("shared")
			}
		}()
	}
	wg.Wait()

	if got, ok := c.get("shared"); !ok || len(got) != 1 {
		t.Errorf("cache corrupted after concurrent access: %v %v", got, ok)
	}
}
