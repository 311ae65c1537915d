package cache

import (
	"fmt"
	"sync"
	"time"
)

// Stats 缓存统计信息
type Stats struct {
	// 当前缓存大小
	Size int

	// 命中次数
	Hits int

	// 未命中次数
	Misses int

	// 命中率
	HitRate float64
}

type entry struct {
	value      interface{}
	expiry     time.Time
	lastAccess time.Time
}

// Cache 带TTL的推荐结果缓存
// 容量满时淘汰最久未访问的条目
type Cache struct {
	data       map[string]entry
	maxEntries int
	ttl        time.Duration
	mu         sync.RWMutex

	hits   int
	misses int
}

// New 创建缓存实例
func New(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &Cache{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		ttl:        ttl,
	}
}

// Key 构造推荐结果的缓存键
func Key(userID uint, recType string, limit int) string {
	return fmt.Sprintf("rec:%d:%s:%d", userID, recType, limit)
}

// Get 获取缓存值，过期条目视为未命中并删除
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if time.Now().After(e.expiry) {
		delete(c.data, key)
		c.misses++
		return nil, false
	}

	e.lastAccess = time.Now()
	c.data[key] = e
	c.hits++
	return e.value, true
}

// Set 写入缓存值，必要时先淘汰最久未访问的条目
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && len(c.data) >= c.maxEntries {
		c.evictOldest()
	}

	now := time.Now()
	c.data[key] = entry{
		value:      value,
		expiry:     now.Add(c.ttl),
		lastAccess: now,
	}
}

// Invalidate 删除指定键
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// GetStats 获取统计信息
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		Size:   len(c.data),
		Hits:   c.hits,
		Misses: c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats
}

// evictOldest 淘汰最久未访问的条目，调用方需持有写锁
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	first := true
	for key, e := range c.data {
		if first || e.lastAccess.Before(oldestTime) {
			oldestKey = key
			oldestTime = e.lastAccess
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.data, oldestKey)
	}
}
