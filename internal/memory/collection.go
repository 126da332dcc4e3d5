// Package memory provides the in-memory repository implementations backing
// the admin API. Records live in insertion-ordered collections guarded by a
// read-write mutex; reads hand out copies so callers can never mutate the
// stored state behind the repository's back.
package memory

import "sync"

// collection is an insertion-ordered set of records keyed by string ID.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	key   func(T) string
	clone func(T) T
}

// newCollection builds a collection. clone may be nil when a plain value
// copy is deep enough for the record type.
func newCollection[T any](key func(T) string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &collection[T]{
		key:   key,
		clone: clone,
	}
}

func (c *collection[T]) insert(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(item)
	for _, existing := range c.items {
		if c.key(existing) == id {
			return false
		}
	}
	c.items = append(c.items, c.clone(item))
	return true
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.key(item) == id {
			return c.clone(item), true
		}
	}
	var zero T
	return zero, false
}

// replace swaps the record with the same ID for item, keeping its position.
// Other records are untouched.
func (c *collection[T]) replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(item)
	for i, existing := range c.items {
		if c.key(existing) == id {
			c.items[i] = c.clone(item)
			return true
		}
	}
	return false
}

// mutate applies fn to the stored record under the write lock.
func (c *collection[T]) mutate(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.key(c.items[i]) == id {
			fn(&c.items[i])
			return true
		}
	}
	return false
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if c.key(existing) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns copies of all records in insertion order.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
