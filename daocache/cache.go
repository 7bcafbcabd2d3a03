package daocache

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Cache is the keyed DAO store referenced by generated factory methods.
// It is owned by one generated mapper instance and lives exactly as long
// as that instance; there is no eviction, TTL, or process-wide sharing.
//
// Concurrency contract: GetOrInit is atomic per key. Concurrent callers
// with the same key run init at most once and all observe the same
// instance. Callers with distinct keys only contend on the store's
// internal shard locks, never on each other's init calls.
type Cache[T any] struct {
	entries *xsync.MapOf[Key, T]
}

// New creates an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: xsync.NewMapOf[Key, T]()}
}

// GetOrInit returns the instance stored under key, running init to
// create it if the key is absent. init runs at most once per key even
// under contention; it must not be retried or abandoned halfway, so it
// should not panic.
func (c *Cache[T]) GetOrInit(key Key, init func(Key) T) T {
	value, _ := c.entries.LoadOrCompute(key, func() T {
		return init(key)
	})
	return value
}

// Get returns the instance stored under key, if any.
func (c *Cache[T]) Get(key Key) (T, bool) {
	return c.entries.Load(key)
}

// Delete removes the entry for key. The next GetOrInit for that key
// constructs a fresh instance.
func (c *Cache[T]) Delete(key Key) {
	c.entries.Delete(key)
}

// Len returns the number of cached instances.
func (c *Cache[T]) Len() int {
	return c.entries.Size()
}
