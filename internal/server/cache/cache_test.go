package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutGet(t *testing.T) {
	c := New(4)
	c.Put("notes:1:all", []int{1, 2})

	v, ok := c.Get("notes:1:all")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	_, ok = c.Get("notes:2:all")
	assert.False(t, ok)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Put("a", 1)
	c.Put("b", 2)

	// touch "a" so "b" becomes the eviction candidate
	_, _ = c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestInvalidatePrefix(t *testing.T) {
	c := New(10)
	c.Put("notes:1:all", 1)
	c.Put("notes:1:q=milk", 2)
	c.Put("notes:2:all", 3)

	dropped := c.InvalidatePrefix("notes:1:")
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("notes:2:all")
	assert.True(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	c := New(64)
	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(g int) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("notes:%d:%d", g, i)
				c.Put(key, i)
				c.Get(key)
				if i%10 == 0 {
					c.InvalidatePrefix(fmt.Sprintf("notes:%d:", g))
				}
			}
		}(g)
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
