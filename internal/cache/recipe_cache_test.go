package cache_test

import (
	"fmt"
	"testing"

	"github.com/dishflow/dishflow-web/internal/cache"
	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if err := logger.Initialize(logger.Config{
		Level:       "error",
		Environment: "test",
	}); err != nil {
		panic(fmt.Sprintf("failed to initialize test logger: %v", err))
	}
}

func TestRecipeCache_PageRoundTrip(t *testing.T) {
	c := cache.NewRecipeCache(60)
	filter := models.ListFilter{Limit: 6, SortField: "rating", SortOrder: models.OrderDesc}.Normalize()
	key := filter.CacheKey()

	_, found := c.GetPage(key)
	assert.False(t, found)

	page := &models.RecipePage{Recipes: []models.Recipe{{ID: 1, Name: "Pizza"}}, Total: 1}
	c.SetPage(key, page)

	cached, found := c.GetPage(key)
	require.True(t, found)
	assert.Equal(t, page, cached)
}

func TestRecipeCache_RecordRoundTrip(t *testing.T) {
	c := cache.NewRecipeCache(60)

	_, found := c.GetRecipe(7)
	assert.False(t, found)

	c.SetRecipe(&models.Recipe{ID: 7, Name: "Ramen"})

	cached, found := c.GetRecipe(7)
	require.True(t, found)
	assert.Equal(t, "Ramen", cached.Name)
}

func TestRecipeCache_InvalidateFlushesEverything(t *testing.T) {
	c := cache.NewRecipeCache(60)
	filter := models.ListFilter{}.Normalize()
	c.SetPage(filter.CacheKey(), &models.RecipePage{Total: 1})
	c.SetRecipe(&models.Recipe{ID: 7})
	require.Equal(t, 2, c.Len())

	c.Invalidate()

	assert.Zero(t, c.Len())
	_, found := c.GetPage(filter.CacheKey())
	assert.False(t, found)
	_, found = c.GetRecipe(7)
	assert.False(t, found)
}
