package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 5 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

type inMemoryCache struct {
	store *gocache.Cache
}

var (
	inMemoryOnce     sync.Once
	inMemoryInstance *inMemoryCache
)

// NewInMemoryCache returns the process wide in-memory cache.
func NewInMemoryCache() Cache {
	inMemoryOnce.Do(func() {
		inMemoryInstance = &inMemoryCache{
			store: gocache.New(defaultExpiration, cleanupInterval),
		}
	})
	return inMemoryInstance
}

func (c *inMemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultExpiration
	}
	c.store.Set(key, value, ttl)
}

func (c *inMemoryCache) Get(_ context.Context, key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *inMemoryCache) Delete(_ context.Context, key string) {
	c.store.Delete(key)
}

func (c *inMemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}
