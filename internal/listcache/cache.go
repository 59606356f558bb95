// Package listcache memoizes fetched entity lists for a short TTL so the
// console does not refetch the whole department on every filter change.
package listcache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL bounds staleness of cached lists.
const DefaultTTL = 30 * time.Second

// Cache is a TTL-bounded LRU of entity lists keyed by list name.
type Cache[T any] struct {
	lru *expirable.LRU[string, []T]
}

// New creates a cache holding up to size lists that expire after ttl.
// ttl <= 0 falls back to DefaultTTL.
func New[T any](size int, ttl time.Duration) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[T]{lru: expirable.NewLRU[string, []T](size, nil, ttl)}
}

// Get returns the cached list for key, if present and fresh.
func (c *Cache[T]) Get(key string) ([]T, bool) {
	return c.lru.Get(key)
}

// Put stores a list under key.
func (c *Cache[T]) Put(key string, items []T) {
	c.lru.Add(key, items)
}

// Invalidate drops the list under key. Mutations call this so the next read
// refetches.
func (c *Cache[T]) Invalidate(key string) {
	c.lru.Remove(key)
}
