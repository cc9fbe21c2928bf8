package repository

import (
	"context"
	"fmt"

	"github.com/dishflow/dishflow-web/internal/cache"
	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RecipeGateway is the upstream operations the repository depends on,
// satisfied by the dummyjson client and mockable in tests.
type RecipeGateway interface {
	ListRecipes(ctx context.Context, filter models.ListFilter) (*models.RecipePage, error)
	GetRecipe(ctx context.Context, id int) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, payload models.RecipePayload) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id int, payload models.RecipePayload) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int) (*models.DeleteResult, error)
}

// RecipeRepository fronts the upstream gateway with the result cache and a
// keyed in-flight map: concurrent identical reads share one upstream call.
// Mutations pass straight through and fire the shared invalidation tag, so
// any active listing refetches on its next render. There is no optimistic
// update and no conflict detection.
type RecipeRepository struct {
	gateway      RecipeGateway
	cache        *cache.RecipeCache
	group        singleflight.Group
	disableCache bool
}

// NewRecipeRepository creates a repository over the given gateway and cache.
func NewRecipeRepository(gateway RecipeGateway, recipeCache *cache.RecipeCache, disableCache bool) *RecipeRepository {
	if disableCache {
		logger.Warn("Recipe cache is DISABLED - hitting upstream on every request")
	}
	return &RecipeRepository{
		gateway:      gateway,
		cache:        recipeCache,
		disableCache: disableCache,
	}
}

// List fetches one page of recipes for the filter, serving repeats from the
// cache until the TTL or an invalidation.
func (r *RecipeRepository) List(ctx context.Context, filter models.ListFilter) (*models.RecipePage, error) {
	filter = filter.Normalize()
	key := filter.CacheKey()

	if !r.disableCache {
		if page, found := r.cache.GetPage(key); found {
			return page, nil
		}
	}

	result, err, shared := r.group.Do(key, func() (interface{}, error) {
		page, err := r.gateway.ListRecipes(ctx, filter)
		if err != nil {
			return nil, err
		}
		if !r.disableCache {
			r.cache.SetPage(key, page)
		}
		return page, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Debug("Coalesced duplicate listing request", zap.String("key", key))
	}

	return result.(*models.RecipePage), nil
}

// GetByID fetches a single recipe, cached under its own key.
func (r *RecipeRepository) GetByID(ctx context.Context, id int) (*models.Recipe, error) {
	if !r.disableCache {
		if recipe, found := r.cache.GetRecipe(id); found {
			return recipe, nil
		}
	}

	result, err, _ := r.group.Do(fmt.Sprintf("recipe:id:%d", id), func() (interface{}, error) {
		recipe, err := r.gateway.GetRecipe(ctx, id)
		if err != nil {
			return nil, err
		}
		if !r.disableCache {
			r.cache.SetRecipe(recipe)
		}
		return recipe, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*models.Recipe), nil
}

// Create submits a new recipe and invalidates cached listings.
func (r *RecipeRepository) Create(ctx context.Context, payload models.RecipePayload) (*models.Recipe, error) {
	recipe, err := r.gateway.CreateRecipe(ctx, payload)
	if err != nil {
		return nil, err
	}
	r.cache.Invalidate()
	return recipe, nil
}

// Update submits changed fields and invalidates cached listings.
func (r *RecipeRepository) Update(ctx context.Context, id int, payload models.RecipePayload) (*models.Recipe, error) {
	recipe, err := r.gateway.UpdateRecipe(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	r.cache.Invalidate()
	return recipe, nil
}

// Delete removes a recipe and invalidates cached listings.
func (r *RecipeRepository) Delete(ctx context.Context, id int) (*models.DeleteResult, error) {
	result, err := r.gateway.DeleteRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Invalidate()
	return result, nil
}
