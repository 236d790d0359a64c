// Package cache provides a small LRU cache for query results. Keys are
// strings built from the owner id and the query shape, so a mutation can
// drop every cached listing for one user with a single prefix sweep.
package cache

import (
	"fmt"
	"strings"
	"sync"
)

// OwnerPrefix is the shared key prefix for one user's cached note listings.
// Readers append the query shape to it; invalidation sweeps the prefix.
func OwnerPrefix(userID int64) string {
	return fmt.Sprintf("notes:%d:", userID)
}

// Cache is an LRU cache guarded by a single mutex.
type Cache struct {
	mutex    sync.Mutex
	capacity int
	entries  map[string]*entry
	head     *entry
	tail     *entry
}

type entry struct {
	key   string
	value interface{}
	prev  *entry
	next  *entry
}

// New creates a cache with the specified capacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = 100
	}

	c := &Cache{
		capacity: capacity,
		entries:  make(map[string]*entry, capacity),
	}

	// sentinel nodes
	c.head = &entry{}
	c.tail = &entry{}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get retrieves a value from the cache.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if e, ok := c.entries[key]; ok {
		c.moveToHead(e)
		return e.value, true
	}
	return nil, false
}

// Put adds or updates a value in the cache, evicting the least recently
// used entry when over capacity.
func (c *Cache) Put(key string, value interface{}) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToHead(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToHead(e)

	if len(c.entries) > c.capacity {
		lru := c.tail.prev
		c.unlink(lru)
		delete(c.entries, lru.key)
	}
}

// InvalidatePrefix removes every entry whose key starts with prefix and
// returns how many entries were dropped.
func (c *Cache) InvalidatePrefix(prefix string) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	n := 0
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			c.unlink(e)
			delete(c.entries, key)
			n++
		}
	}
	return n
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.entries)
}

func (c *Cache) addToHead(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache) unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *Cache) moveToHead(e *entry) {
	c.unlink(e)
	c.addToHead(e)
}
