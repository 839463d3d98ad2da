// Package cache provides process-lifetime TTL memoization for
// expensive aggregate queries.
//
// Expiration is lazy: entries are evicted when a Get finds them stale,
// there is no background sweep. There is also no capacity bound; the
// intended key space is small and fixed (the aggregate keys below), so
// unbounded growth is an accepted trade-off rather than a supported
// use case.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is used when Set receives a non-positive ttl.
const DefaultTTL = 5 * time.Minute

// Shared keys for the store-level aggregates, kept in one place so
// they do not drift across callers.
const (
	KeyAllPosts      = "all_posts"
	KeyAllCategories = "all_categories"
	KeyAllPages      = "all_pages"
)

type entry[T any] struct {
	value   T
	expires time.Time
}

// Cache is a mutex-guarded TTL map.
type Cache[T any] struct {
	mu    sync.Mutex
	items map[string]entry[T]
	now   func() time.Time
}

// New creates an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{
		items: make(map[string]entry[T]),
		now:   time.Now,
	}
}

// Set stores a value until now+ttl. A non-positive ttl means DefaultTTL.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c.mu.Lock()
	c.items[key] = entry[T]{value: value, expires: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Get returns the value for key if present and unexpired. An expired
// entry is evicted on the spot.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		var zero T
		return zero, false
	}
	if !e.expires.After(c.now()) {
		delete(c.items, key)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Delete removes a single key.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]entry[T])
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Memoize returns the cached value under key, or runs load, stores the
// result for ttl and returns it. Load errors are returned without
// touching the cache.
func Memoize[T any](c *Cache[T], key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v, ttl)
	return v, nil
}
