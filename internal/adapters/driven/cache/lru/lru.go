// Package lru provides a small, size-bounded LRU cache used for topic
// token signatures. Signatures are cheap to rebuild, so the cache
// favours simplicity over hit-rate tuning.
package lru

import (
	"container/list"
	"sync"

	"github.com/studium-labs/studium-cli/internal/nlp/matcher"
)

// Ensure Cache implements the interface.
var _ matcher.SignatureCache = (*Cache)(nil)

// DefaultCapacity bounds the cache when no capacity is given. Plenty
// for a personal corpus of a few hundred topics.
const DefaultCapacity = 512

// Cache is a thread-safe LRU cache of token signatures.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[string]*list.Element
}

type entry struct {
	key    string
	tokens []string
}

// New creates a cache holding at most capacity entries. A
// non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached signature for key, marking it recently used.
func (c *Cache) Get(key string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry).tokens, true
}

// Add stores a signature under key, evicting the least recently used
// entry when the cache is full.
func (c *Cache) Add(key string, tokens []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry).tokens = tokens
		return
	}

	c.entries[key] = c.order.PushFront(&entry{key: key, tokens: tokens})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
	}
}

// Len returns the number of cached signatures.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
