package services_test

import (
	"context"
	"testing"

	"github.com/dishflow/dishflow-web/internal/form"
	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/internal/pagination"
	"github.com/dishflow/dishflow-web/internal/services"
	apperrors "github.com/dishflow/dishflow-web/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeService_Browse(t *testing.T) {
	repo := new(MockRecipeRepository)
	service := services.NewRecipeService(repo)
	ctx := context.Background()

	query := pagination.NewQuery(6, pagination.SortRatingDesc)
	repo.On("List", ctx, query.Filter()).Return(&models.RecipePage{
		Recipes: []models.Recipe{{ID: 1, Name: "Pizza"}},
		Total:   13,
		Limit:   6,
	}, nil).Once()

	result, err := service.Browse(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, 13, result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, result.Window)
	assert.False(t, result.HasPrev)
	assert.True(t, result.HasNext)
	repo.AssertExpectations(t)
}

func TestRecipeService_Browse_ClampsVanishedPage(t *testing.T) {
	repo := new(MockRecipeRepository)
	service := services.NewRecipeService(repo)
	ctx := context.Background()

	// Page 5 was valid before a deletion shrank the result set to 2 pages
	query := pagination.NewQuery(9, pagination.SortNameAsc).WithPage(5, 5)
	repo.On("List", ctx, query.Filter()).Return(&models.RecipePage{
		Recipes: nil,
		Total:   14,
	}, nil).Once()

	clamped := query.WithPage(2, 2)
	repo.On("List", ctx, clamped.Filter()).Return(&models.RecipePage{
		Recipes: []models.Recipe{{ID: 10, Name: "Tiramisu"}},
		Total:   14,
	}, nil).Once()

	result, err := service.Browse(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Query.Page)
	assert.Len(t, result.Recipes, 1)
	assert.False(t, result.HasNext)
	repo.AssertExpectations(t)
}

func TestRecipeService_Browse_EmptyResult(t *testing.T) {
	repo := new(MockRecipeRepository)
	service := services.NewRecipeService(repo)
	ctx := context.Background()

	query := pagination.NewQuery(6, pagination.SortRatingDesc).WithSearch("zzzz")
	repo.On("List", ctx, query.Filter()).Return(&models.RecipePage{Total: 0}, nil).Once()

	result, err := service.Browse(ctx, query)
	require.NoError(t, err)

	assert.Zero(t, result.TotalPages)
	assert.Empty(t, result.Window)
	assert.False(t, result.HasPrev)
	assert.False(t, result.HasNext)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestRecipeService_Browse_RepositoryError(t *testing.T) {
	repo := new(MockRecipeRepository)
	service := services.NewRecipeService(repo)
	ctx := context.Background()

	query := pagination.NewQuery(6, pagination.SortRatingDesc)
	repo.On("List", ctx, query.Filter()).Return(nil, apperrors.UpstreamError("boom")).Once()

	_, err := service.Browse(ctx, query)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestRecipeService_Create_StripsBlankEntries(t *testing.T) {
	repo := new(MockRecipeRepository)
	service := services.NewRecipeService(repo)
	ctx := context.Background()

	draft := form.NewDraft()
	draft.Name = "Pancakes"
	draft.Ingredients = []string{"", "flour", " "}
	draft.Instructions = []string{"mix", ""}

	repo.On("Create", ctx, draft.Payload()).Return(&models.Recipe{ID: 51, Name: "Pancakes"}, nil).Once()

	created, err := service.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, 51, created.ID)

	payload := repo.Calls[0].Arguments.Get(1).(models.RecipePayload)
	assert.Equal(t, []string{"flour"}, payload.Ingredients)
	assert.Equal(t, []string{"mix"}, payload.Instructions)
}

func TestRecipeService_Update(t *testing.T) {
	repo := new(MockRecipeRepository)
	service := services.NewRecipeService(repo)
	ctx := context.Background()

	recipe := &models.Recipe{ID: 7, Name: "Ramen", Ingredients: []string{"noodles"}, Instructions: []string{"boil"}}
	draft := form.DraftFrom(recipe)
	draft.Name = "Spicy Ramen"

	repo.On("Update", ctx, 7, draft.Payload()).Return(&models.Recipe{ID: 7, Name: "Spicy Ramen"}, nil).Once()

	updated, err := service.Update(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "Spicy Ramen", updated.Name)
	repo.AssertExpectations(t)
}

func TestRecipeService_Delete(t *testing.T) {
	repo := new(MockRecipeRepository)
	service := services.NewRecipeService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, 7).Return(&models.DeleteResult{ID: 7, IsDeleted: true}, nil).Once()

	result, err := service.Delete(ctx, 7)
	require.NoError(t, err)
	assert.True(t, result.IsDeleted)
}
