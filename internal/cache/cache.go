package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	categoriesKey    = "categories:all"
	CategoryCacheTTL = time.Hour
)

// Cache est un cache en lecture derrière Redis pour les données de catalogue
// peu volatiles. Les erreurs Redis sont avalées : un cache indisponible ne
// doit jamais faire échouer une requête.
type Cache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// GetCategories renvoie la liste des catégories en cache, ou ok=false.
func (c *Cache) GetCategories(ctx context.Context) ([]string, bool) {
	val, err := c.rdb.Get(ctx, categoriesKey).Result()
	if err != nil {
		return nil, false
	}

	var categories []string
	if err := json.Unmarshal([]byte(val), &categories); err != nil {
		return nil, false
	}
	return categories, true
}

// SetCategories met la liste des catégories en cache.
func (c *Cache) SetCategories(ctx context.Context, categories []string) {
	data, err := json.Marshal(categories)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, categoriesKey, data, CategoryCacheTTL)
}

// InvalidateCategories est appelée après toute écriture catalogue.
func (c *Cache) InvalidateCategories(ctx context.Context) {
	c.rdb.Del(ctx, categoriesKey)
}
