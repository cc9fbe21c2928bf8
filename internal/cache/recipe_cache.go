package cache

import (
	"fmt"
	"time"

	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"github.com/dishflow/dishflow-web/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
)

const (
	listCacheName   = "recipe_list"
	recordCacheName = "recipe_by_id"

	recordKeyPrefix  = "recipe:id:"
	cacheCheckPeriod = 10 * time.Second
)

// RecipeCache is a small time-boxed result cache for upstream responses.
// Every entry belongs to one shared invalidation tag: any mutation flushes
// the whole cache, so the next render of any listing refetches.
type RecipeCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewRecipeCache creates a cache whose entries expire after ttlSeconds.
func NewRecipeCache(ttlSeconds int) *RecipeCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &RecipeCache{
		cache: gocache.New(ttl, cacheCheckPeriod),
		ttl:   ttl,
	}
}

// GetPage returns a cached listing page for the given filter key.
func (c *RecipeCache) GetPage(key string) (*models.RecipePage, bool) {
	data, found := c.cache.Get(key)
	if !found {
		metrics.CacheMisses.WithLabelValues(listCacheName).Inc()
		return nil, false
	}

	page, ok := data.(*models.RecipePage)
	if !ok {
		logger.Error("Invalid cache data type for listing page")
		c.cache.Delete(key)
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(listCacheName).Inc()
	return page, true
}

// SetPage stores a listing page under the given filter key.
func (c *RecipeCache) SetPage(key string, page *models.RecipePage) {
	c.cache.Set(key, page, c.ttl)
}

// GetRecipe returns a cached single record.
func (c *RecipeCache) GetRecipe(id int) (*models.Recipe, bool) {
	data, found := c.cache.Get(recordKey(id))
	if !found {
		metrics.CacheMisses.WithLabelValues(recordCacheName).Inc()
		return nil, false
	}

	recipe, ok := data.(*models.Recipe)
	if !ok {
		logger.Error("Invalid cache data type for recipe record")
		c.cache.Delete(recordKey(id))
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(recordCacheName).Inc()
	return recipe, true
}

// SetRecipe stores a single record.
func (c *RecipeCache) SetRecipe(recipe *models.Recipe) {
	c.cache.Set(recordKey(recipe.ID), recipe, c.ttl)
}

// Invalidate marks everything stale by flushing the cache. Fired exactly
// once per successful mutation.
func (c *RecipeCache) Invalidate() {
	c.cache.Flush()
	metrics.CacheInvalidations.WithLabelValues(listCacheName).Inc()
	logger.Debug("Recipe cache invalidated")
}

// Len returns the number of live entries, used by tests and debugging.
func (c *RecipeCache) Len() int {
	return c.cache.ItemCount()
}

func recordKey(id int) string {
	return fmt.Sprintf("%s%d", recordKeyPrefix, id)
}
