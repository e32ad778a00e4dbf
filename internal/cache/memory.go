package cache

import (
	"slices"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ppiankov/anagrank/internal/model"
)

// MemoryCache keeps resolved anagram sets for the lifetime of a run
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache whose entries never expire
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a copy of a cached set
func (c *MemoryCache) Get(key string) (model.AnagramSet, bool) {
	if val, found := c.cache.Get(key); found {
		return slices.Clone(val.(model.AnagramSet)), true
	}
	return nil, false
}

// Set stores a copy of set under key
func (c *MemoryCache) Set(key string, set model.AnagramSet) {
	c.cache.Set(key, slices.Clone(set), gocache.NoExpiration)
}

// Len returns the number of cached sets
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
