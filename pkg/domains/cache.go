package domains

import (
	"container/list"
	"sync"

	"github.com/ctessum/geom/proj"
)

// defaultTransformCacheSize is the number of PROJ.4 definitions whose
// transforms are kept built.
const defaultTransformCacheSize = 64

// transforms is shared by every Projection built in the process.
var transforms = newTransformCache(defaultTransformCacheSize)

// transformCache keeps the forward and inverse transforms of recently used
// PROJ.4 definitions with least-recently-used eviction. Domains of the same
// area select the same definition, so repeated maps skip parsing.
type transformCache struct {
	capacity int
	entries  map[string]*list.Element
	lru      *list.List // most recent at front
	hits     int
	misses   int
	mu       sync.Mutex
}

type transformEntry struct {
	def     string
	forward proj.Transformer
	inverse proj.Transformer
}

// transformBuilder builds the transforms for a definition.
type transformBuilder func(def string) (forward, inverse proj.Transformer, err error)

func newTransformCache(capacity int) *transformCache {
	return &transformCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// get returns the transforms for def, building them on a miss. Failed builds
// are not cached.
func (c *transformCache) get(def string, build transformBuilder) (proj.Transformer, proj.Transformer, error) {
	c.mu.Lock()
	if elem, ok := c.entries[def]; ok {
		c.hits++
		c.lru.MoveToFront(elem)
		entry := elem.Value.(*transformEntry)
		c.mu.Unlock()
		return entry.forward, entry.inverse, nil
	}
	c.misses++
	c.mu.Unlock()

	// Built outside the lock; a concurrent miss on the same definition builds
	// twice and the second add is a no-op.
	forward, inverse, err := build(def)
	if err != nil {
		return nil, nil, err
	}
	c.add(&transformEntry{def: def, forward: forward, inverse: inverse})
	return forward, inverse, nil
}

func (c *transformCache) add(entry *transformEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[entry.def]; ok {
		c.lru.MoveToFront(elem)
		return
	}
	if c.capacity <= 0 {
		return
	}
	for c.lru.Len() >= c.capacity {
		c.evictLRU()
	}
	c.entries[entry.def] = c.lru.PushFront(entry)
}

// evictLRU removes the least recently used entry.
// Must be called with c.mu locked.
func (c *transformCache) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}
	c.lru.Remove(elem)
	delete(c.entries, elem.Value.(*transformEntry).def)
}

// TransformCacheStats holds transform cache counters.
type TransformCacheStats struct {
	Definitions int // Definitions currently cached
	Capacity    int // Maximum number of cached definitions
	Hits        int // Lookups served from the cache
	Misses      int // Lookups that built transforms
}

func (c *transformCache) stats() TransformCacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return TransformCacheStats{
		Definitions: c.lru.Len(),
		Capacity:    c.capacity,
		Hits:        c.hits,
		Misses:      c.misses,
	}
}

// TransformCache returns counters of the process-wide cache of built
// projection transforms.
func TransformCache() TransformCacheStats {
	return transforms.stats()
}
