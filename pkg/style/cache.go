package style

import (
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-fieldfmt/internal/logging"
)

// BuildFunc constructs the formatter for a qualifier. It is called at most
// once per qualifier for a given Cache.
type BuildFunc[T any] func(Qualifier) T

// Cache memoizes formatters keyed by qualifier. Entries are never evicted;
// qualifiers come from template text and are expected to be few.
type Cache[T any] struct {
	mu      sync.RWMutex
	name    string
	build   BuildFunc[T]
	entries map[Qualifier]T
}

// NewCache returns an empty cache bound to build. The name only shows up in
// log entries.
func NewCache[T any](name string, build BuildFunc[T]) *Cache[T] {
	return &Cache[T]{
		name:    name,
		build:   build,
		entries: make(map[Qualifier]T),
	}
}

// Get returns the formatter for q, building and storing it on first use.
// Builds run under the write lock so concurrent first requests for the same
// key share a single build.
func (c *Cache[T]) Get(q Qualifier) T {
	c.mu.RLock()
	if entry, ok := c.entries[q]; ok {
		c.mu.RUnlock()
		return entry
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[q]; ok {
		return entry
	}

	entry := c.build(q)
	c.entries[q] = entry
	logging.Named("style").Debug("formatter built",
		zap.String("cache", c.name),
		zap.Stringer("qualifier", q),
		zap.Int("entries", len(c.entries)))
	return entry
}

// Len reports how many formatters have been built.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Name returns the cache name.
func (c *Cache[T]) Name() string {
	return c.name
}
