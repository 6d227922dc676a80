package economy

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SpaceBot_Go/internal/domain"
)

// cachedCatalogEntry wraps catalog data with version metadata for cache invalidation
type cachedCatalogEntry struct {
	Version  string
	Items    []domain.ShopItem
	CachedAt time.Time
}

// catalogCache keeps recently read catalog entries. Shop items are immutable once added, so
// the only writes that invalidate anything are admin adds.
type catalogCache struct {
	lru *expirable.LRU[string, *cachedCatalogEntry]
}

func newCatalogCache(size int, ttl time.Duration) *catalogCache {
	return &catalogCache{
		lru: expirable.NewLRU[string, *cachedCatalogEntry](size, nil, ttl),
	}
}

func (c *catalogCache) get(key string) ([]domain.ShopItem, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Items, true
}

func (c *catalogCache) set(key string, items []domain.ShopItem) {
	c.lru.Add(key, &cachedCatalogEntry{
		Version:  CacheSchemaVersion,
		Items:    items,
		CachedAt: time.Now(),
	})
}

// Item returns a cached catalog item
func (c *catalogCache) Item(itemID string) (*domain.ShopItem, bool) {
	items, ok := c.get(cacheKeyItemPrefix + itemID)
	if !ok || len(items) != 1 {
		return nil, false
	}
	item := items[0]
	return &item, true
}

// SetItem caches a single catalog item
func (c *catalogCache) SetItem(item domain.ShopItem) {
	c.set(cacheKeyItemPrefix+item.ItemID, []domain.ShopItem{item})
}

// All returns the cached full catalog
func (c *catalogCache) All() ([]domain.ShopItem, bool) {
	return c.get(cacheKeyAll)
}

// SetAll caches the full catalog
func (c *catalogCache) SetAll(items []domain.ShopItem) {
	c.set(cacheKeyAll, items)
}

// InvalidateAll drops the full catalog listing
func (c *catalogCache) InvalidateAll() {
	c.lru.Remove(cacheKeyAll)
}

// Len reports the number of live entries
func (c *catalogCache) Len() int {
	return c.lru.Len()
}
