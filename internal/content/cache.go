package content

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds how many rendered documents are kept.
const DefaultCacheSize = 128

// Cache keeps rendered static documents keyed by document and width. It is
// safe for concurrent use, so one cache can serve every session.
type Cache struct {
	lru    *lru.Cache[string, string]
	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats is a snapshot of cache activity.
type CacheStats struct {
	Size   int
	Hits   int64
	Misses int64
}

// NewCache creates a render cache holding up to size documents.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

// Get returns the cached render of id at width, calling render on a miss.
// A nil cache always renders.
func (c *Cache) Get(id string, width int, render func(width int) string) string {
	if c == nil {
		return render(width)
	}
	key := fmt.Sprintf("%s@%d", id, width)
	if s, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return s
	}
	c.misses.Add(1)
	s := render(width)
	c.lru.Add(key, s)
	return s
}

// Purge drops every entry. Called when the theme changes.
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

func (c *Cache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	return CacheStats{Size: c.lru.Len(), Hits: c.hits.Load(), Misses: c.misses.Load()}
}
