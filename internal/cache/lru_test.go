// Marquee - Movie Scoring and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestLRU_BasicOperations(t *testing.T) {
	c := NewLRU[string, float64](3, time.Minute)

	c.Add("a", 0.1)
	c.Add("b", 0.2)
	c.Add("c", 0.3)

	if v, found := c.Get("a"); !found || v != 0.1 {
		t.Errorf("Get(a) = %v, %v, want 0.1, true", v, found)
	}
	if c.Len() != 3 {
		t.Errorf("Expected len 3, got %d", c.Len())
	}

	c.Add("a", 0.9)
	if v, _ := c.Get("a"); v != 0.9 {
		t.Errorf("Get(a) after update = %v, want 0.9", v)
	}
	if c.Len() != 3 {
		t.Errorf("update should not grow the cache, len %d", c.Len())
	}
}

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU[string, int](3, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	// 'a' becomes most recently used, so 'b' is evicted next.
	c.Get("a")
	c.Add("d", 4)

	if _, found := c.Get("b"); found {
		t.Error("Expected 'b' to be evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, found := c.Get(k); !found {
			t.Errorf("Expected %q to be present", k)
		}
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.Stats().Evictions)
	}
}

func TestLRU_TTL(t *testing.T) {
	c := NewLRU[string, int](10, time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Add("a", 1)
	c.Add("b", 2)

	now = now.Add(2 * time.Minute)
	c.Add("c", 3)

	if _, found := c.Get("a"); found {
		t.Error("Expected 'a' to be expired")
	}
	if removed := c.CleanupExpired(); removed != 1 {
		t.Errorf("CleanupExpired() = %d, want 1 (b)", removed)
	}
	if _, found := c.Get("c"); !found {
		t.Error("Expected 'c' to be present")
	}
}

func TestLRU_NoTTL(t *testing.T) {
	c := NewLRU[int, string](2, 0)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Add(1, "one")
	now = now.Add(1000 * time.Hour)
	if _, found := c.Get(1); !found {
		t.Error("zero ttl entries should never expire")
	}
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := NewLRU[string, int](5, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)

	if !c.Remove("a") {
		t.Error("Remove(a) = false, want true")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Add("z", 26)
	if _, found := c.Get("z"); !found {
		t.Error("cache unusable after Clear")
	}
}

func TestLRU_Stats(t *testing.T) {
	c := NewLRU[string, int](5, time.Minute)
	c.Add("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Size != 1 {
		t.Errorf("Stats() = %+v, want 2 hits, 1 miss, size 1", s)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[string, int](100, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("k%d", (g*500+i)%150)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len() = %d, exceeds capacity", c.Len())
	}
}
