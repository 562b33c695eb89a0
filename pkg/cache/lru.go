package cache

import (
	"container/list"
	"sync"
)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback registers fn to be called for every entry dropped by
// capacity pressure, Remove or Clear.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.onEvict = fn
	}
}

// LRU is a thread-safe least-recently-used map with a fixed capacity.
type LRU[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	onEvict  func(key K, value V)
}

// NewLRU creates a cache holding at most capacity entries.
// It panics if capacity is not positive.
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// GetOrAdd returns the value stored for key, creating it with create when
// absent. The second result reports whether a new entry was created.
// create runs under the cache lock and must not call back into the cache.
func (c *LRU[K, V]) GetOrAdd(key K, create func() V) (V, bool) {
	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		value := elem.Value.(*lruEntry[K, V]).value
		c.mu.Unlock()
		return value, false
	}

	value := create()
	evicted := c.push(key, value)
	c.mu.Unlock()

	c.notify(evicted)
	return value, true
}

// Put stores value under key, replacing any previous value without
// invoking the eviction callback for it.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*lruEntry[K, V]).value = value
		c.mu.Unlock()
		return
	}

	evicted := c.push(key, value)
	c.mu.Unlock()

	c.notify(evicted)
}

// Remove deletes key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	entry := c.unlink(elem)
	c.mu.Unlock()

	c.notify([]*lruEntry[K, V]{entry})
	return entry.value, true
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Clear drops every entry, oldest first.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	evicted := make([]*lruEntry[K, V], 0, c.eviction.Len())
	for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
		evicted = append(evicted, elem.Value.(*lruEntry[K, V]))
	}
	c.items = make(map[K]*list.Element)
	c.eviction.Init()
	c.mu.Unlock()

	c.notify(evicted)
}

// Must be called with lock held.
func (c *LRU[K, V]) push(key K, value V) []*lruEntry[K, V] {
	c.items[key] = c.eviction.PushFront(&lruEntry[K, V]{key: key, value: value})

	var evicted []*lruEntry[K, V]
	for c.eviction.Len() > c.capacity {
		evicted = append(evicted, c.unlink(c.eviction.Back()))
	}
	return evicted
}

// Must be called with lock held.
func (c *LRU[K, V]) unlink(elem *list.Element) *lruEntry[K, V] {
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry[K, V])
	delete(c.items, entry.key)
	return entry
}

func (c *LRU[K, V]) notify(entries []*lruEntry[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range entries {
		c.onEvict(e.key, e.value)
	}
}
