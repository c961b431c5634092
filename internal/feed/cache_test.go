package feed

import (
	"testing"
	"time"

	"github.com/example/course-scheduler/internal/testfixtures"
)

func TestTTLCache_StoreAndGet(t *testing.T) {
	t.Parallel()

	cache := newTTLCache[string](time.Minute, 4, nil)
	cache.Store("k", "v")

	got, ok := cache.Get("k")
	if !ok || got != "v" {
		t.Fatalf("expected cached value, got %q ok=%v", got, ok)
	}
	if _, ok := cache.Get("missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestTTLCache_ExpiresEntries(t *testing.T) {
	t.Parallel()

	clock := testfixtures.NewClock(time.Time{})
	cache := newTTLCache[int](time.Minute, 4, clock.NowFunc())

	cache.Store("k", 7)
	if _, ok := cache.Get("k"); !ok {
		t.Fatalf("expected fresh entry to hit")
	}

	clock.Advance(2 * time.Minute)
	if _, ok := cache.Get("k"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestTTLCache_BoundsEntryCount(t *testing.T) {
	t.Parallel()

	cache := newTTLCache[int](time.Minute, 2, nil)
	cache.Store("a", 1)
	cache.Store("b", 2)
	cache.Store("c", 3)

	if len(cache.entries) > 2 {
		t.Fatalf("expected at most 2 entries, got %d", len(cache.entries))
	}
}

func TestTTLCache_NilIsInert(t *testing.T) {
	t.Parallel()

	var cache *ttlCache[int]
	cache.Store("k", 1)
	if _, ok := cache.Get("k"); ok {
		t.Fatalf("expected nil cache to miss")
	}
}
