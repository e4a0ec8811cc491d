package internal

import (
	"fmt"
	"testing"
)

func TestSeenCache_MarkAndSeen(t *testing.T) {
	cache := NewSeenCache(10, 2)

	if cache.Seen("s1/m1") {
		t.Error("fresh cache reported key as seen")
	}

	cache.Mark("s1/m1")
	if !cache.Seen("s1/m1") {
		t.Error("marked key not reported as seen")
	}
	if cache.Seen("s1/m2") {
		t.Error("unmarked key reported as seen")
	}

	// Same message id under a different session key is a different entry
	if cache.Seen("s2/m1") {
		t.Error("session-scoped key collided across sessions")
	}
}

func TestSeenCache_MarkIsIdempotent(t *testing.T) {
	cache := NewSeenCache(10, 2)

	cache.Mark("s1/m1")
	cache.Mark("s1/m1")
	cache.Mark("s1/m1")

	if got := cache.Len(); got != 1 {
		t.Errorf("Len() = %d after repeated marks, want 1", got)
	}
}

func TestSeenCache_EvictsOldestFirst(t *testing.T) {
	// cap = 5 * 2 = 10
	cache := NewSeenCache(5, 2)

	for i := 0; i < 15; i++ {
		cache.Mark(fmt.Sprintf("s1/m%02d", i))
	}

	evicted := cache.Evict(0)
	if evicted != 5 {
		t.Errorf("Evict() = %d, want 5", evicted)
	}
	if got := cache.Len(); got != 10 {
		t.Errorf("Len() = %d after eviction, want 10", got)
	}

	// The 5 oldest are gone, the 10 newest remain
	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("s1/m%02d", i)
		if cache.Seen(key) {
			t.Errorf("oldest key %s survived eviction", key)
		}
	}
	for i := 5; i < 15; i++ {
		key := fmt.Sprintf("s1/m%02d", i)
		if !cache.Seen(key) {
			t.Errorf("recent key %s was evicted", key)
		}
	}
}

func TestSeenCache_EvictUnderCapIsNoop(t *testing.T) {
	cache := NewSeenCache(5, 2)

	for i := 0; i < 3; i++ {
		cache.Mark(fmt.Sprintf("s1/m%d", i))
	}

	if evicted := cache.Evict(0); evicted != 0 {
		t.Errorf("Evict() = %d under cap, want 0", evicted)
	}
	if got := cache.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestSeenCache_EvictNeverDropsBelowFloor(t *testing.T) {
	// cap = 2 * 2 = 4, smaller than the batch
	cache := NewSeenCache(2, 2)

	for i := 0; i < 6; i++ {
		cache.Mark(fmt.Sprintf("s1/m%d", i))
	}

	// A 6-message batch holds the whole window in the cache
	if evicted := cache.Evict(6); evicted != 0 {
		t.Errorf("Evict(6) = %d, want 0 (floor covers the batch)", evicted)
	}
	if got := cache.Len(); got != 6 {
		t.Errorf("Len() = %d after floored eviction, want 6", got)
	}
	for i := 0; i < 6; i++ {
		if key := fmt.Sprintf("s1/m%d", i); !cache.Seen(key) {
			t.Errorf("key %s from the current window was evicted", key)
		}
	}

	// A smaller batch lets the cache shrink back to its cap
	if evicted := cache.Evict(2); evicted != 2 {
		t.Errorf("Evict(2) = %d, want 2", evicted)
	}
	if got := cache.Len(); got != 4 {
		t.Errorf("Len() = %d after shrink, want 4", got)
	}
}

func TestNewSeenCache_Defaults(t *testing.T) {
	cache := NewSeenCache(0, 0)
	if cache.Cap() != 100*DefaultCacheMultiple {
		t.Errorf("Cap() = %d with zero args, want %d", cache.Cap(), 100*DefaultCacheMultiple)
	}
}
