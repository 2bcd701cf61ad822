package hashing

import (
	"sync"
	"sync/atomic"
)

type cacheKey struct {
	hash  uint64
	depth int
}

// NodeCache stores perft node counts by position hash and remaining depth.
// It is safe for concurrent use.
type NodeCache struct {
	mu          sync.RWMutex
	entries     map[cacheKey]uint64
	maxCapacity int // 0 = unlimited
	hits        int64
	misses      int64
}

// NewNodeCache creates a cache. maxCapacity of 0 means unlimited capacity;
// once full, new entries are dropped and lookups keep working.
func NewNodeCache(maxCapacity int) *NodeCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &NodeCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the stored count for hash at depth.
func (c *NodeCache) Get(hash uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	nodes, ok := c.entries[cacheKey{hash, depth}]
	c.mu.RUnlock()

	if ok {
		atomic.AddInt64(&c.hits, 1)
	} else {
		atomic.AddInt64(&c.misses, 1)
	}
	return nodes, ok
}

// Put stores a count unless the cache is full.
func (c *NodeCache) Put(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isFullLocked() {
		return
	}
	c.entries[cacheKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *NodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isFullLocked()
}

func (c *NodeCache) isFullLocked() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Hits returns the number of successful lookups.
func (c *NodeCache) Hits() int64 {
	return atomic.LoadInt64(&c.hits)
}

// Misses returns the number of failed lookups.
func (c *NodeCache) Misses() int64 {
	return atomic.LoadInt64(&c.misses)
}

// Reset clears the cache and its counters.
func (c *NodeCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]uint64)
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
}
