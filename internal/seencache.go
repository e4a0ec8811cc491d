package internal

// SeenCache records which message keys have already been evaluated. It is an
// insertion-ordered approximation of LRU: messages are never re-accessed
// after being marked, so insertion order is the eviction order. Owned and
// mutated by a single SyncLoop instance, never shared, so it needs no lock.
type SeenCache struct {
	seen  map[string]struct{}
	order []string // insertion order, oldest first
	max   int
}

// DefaultCacheMultiple scales the per-poll window into the cache cap: the
// cache holds several polls' worth of keys so entries still inside the
// active polling window are never evicted.
const DefaultCacheMultiple = 10

// NewSeenCache creates a cache capped at windowSize * multiple entries.
// Non-positive arguments fall back to sane defaults.
func NewSeenCache(windowSize, multiple int) *SeenCache {
	if windowSize <= 0 {
		windowSize = 100
	}
	if multiple <= 0 {
		multiple = DefaultCacheMultiple
	}
	return &SeenCache{
		seen: make(map[string]struct{}),
		max:  windowSize * multiple,
	}
}

// Seen reports whether the key has already been marked
func (c *SeenCache) Seen(key string) bool {
	_, ok := c.seen[key]
	return ok
}

// Mark records the key as evaluated. Marking an already-seen key is a no-op
// and does not refresh its eviction position.
func (c *SeenCache) Mark(key string) {
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	c.order = append(c.order, key)
}

// Evict removes oldest-inserted keys until the cache is back under its cap.
// floor is the size of the most recent poll batch: eviction never shrinks
// the cache below it, so ids still inside the active polling window are
// never dropped and then re-delivered by the next poll. Returns the number
// of keys removed.
func (c *SeenCache) Evict(floor int) int {
	limit := c.max
	if floor > limit {
		limit = floor
	}

	evicted := 0
	for len(c.order) > limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.seen, oldest)
		evicted++
	}
	if evicted > 0 {
		LogDebug("seen cache evicted %d entries, %d remain", evicted, len(c.order))
	}
	return evicted
}

// Len returns the number of keys currently held
func (c *SeenCache) Len() int {
	return len(c.order)
}

// Cap returns the configured maximum entry count
func (c *SeenCache) Cap() int {
	return c.max
}
