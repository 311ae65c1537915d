package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetSet(t *testing.T) {
	c := New(10, time.Hour)

	key := Key(42, "clubs", 10)
	_, ok := c.Get(key)
	assert.False(t, ok)

	c.Set(key, "value")
	value, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	// 不同参数产生不同的键
	assert.NotEqual(t, key, Key(42, "clubs", 20))
	assert.NotEqual(t, key, Key(42, "courses", 10))
	assert.NotEqual(t, key, Key(7, "clubs", 10))
}

func TestCacheExpiry(t *testing.T) {
	c := New(10, 50*time.Millisecond)

	c.Set("k", "v")
	_, ok := c.Get("k")
	assert.True(t, ok)

	time.Sleep(100 * time.Millisecond)

	// 过期条目视为未命中
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestCacheEviction(t *testing.T) {
	c := New(2, time.Hour)

	c.Set("a", 1)
	time.Sleep(5 * time.Millisecond)
	c.Set("b", 2)
	time.Sleep(5 * time.Millisecond)

	// 访问a使b成为最久未访问的条目
	c.Get("a")
	time.Sleep(5 * time.Millisecond)
	c.Set("c", 3)

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
}

func TestCacheInvalidate(t *testing.T) {
	c := New(10, time.Hour)

	c.Set("k", "v")
	c.Invalidate("k")

	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestCacheStats(t *testing.T) {
	c := New(10, time.Hour)

	c.Set("k", "v")
	c.Get("k")
	c.Get("k")
	c.Get("missing")

	stats := c.GetStats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, 2, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
	assert.InDelta(t, 2.0/3.0, stats.HitRate, 1e-9)
}
