package services

import (
	"context"

	"github.com/dishflow/dishflow-web/internal/form"
	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/internal/pagination"
)

// BrowseResult is one rendered page of a listing view: the records plus the
// derived paging controls.
type BrowseResult struct {
	Recipes    []models.Recipe
	Total      int
	Query      pagination.Query
	TotalPages int
	Window     []int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// RecipeService holds the domain logic between the handlers and the
// repository: filter derivation for listings and draft submission for
// mutations.
type RecipeService struct {
	repo RecipeRepositoryInterface
}

// NewRecipeService creates a RecipeService over the repository.
func NewRecipeService(repo RecipeRepositoryInterface) *RecipeService {
	return &RecipeService{repo: repo}
}

// Browse executes the listing request derived from the query state and
// computes the page-button window for display.
func (s *RecipeService) Browse(ctx context.Context, query pagination.Query) (*BrowseResult, error) {
	page, err := s.repo.List(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	totalPages := pagination.TotalPages(page.Total, query.PageSize)

	// The requested page may have vanished (deletions, narrowed search).
	// Clamp and refetch so the user never sees an empty middle page.
	if totalPages > 0 && query.Page > totalPages {
		query = query.WithPage(totalPages, totalPages)
		page, err = s.repo.List(ctx, query.Filter())
		if err != nil {
			return nil, err
		}
	}

	return &BrowseResult{
		Recipes:    page.Recipes,
		Total:      page.Total,
		Query:      query,
		TotalPages: totalPages,
		Window:     pagination.Window(query.Page, totalPages),
		HasPrev:    query.Page > 1,
		HasNext:    query.Page < totalPages,
		PrevPage:   query.Prev(totalPages).Page,
		NextPage:   query.Next(totalPages).Page,
	}, nil
}

// Get fetches a single recipe.
func (s *RecipeService) Get(ctx context.Context, id int) (*models.Recipe, error) {
	return s.repo.GetByID(ctx, id)
}

// Create submits a new draft; blank list entries are stripped on the way out.
func (s *RecipeService) Create(ctx context.Context, draft *form.Draft) (*models.Recipe, error) {
	return s.repo.Create(ctx, draft.Payload())
}

// Update submits an edit draft against its record.
func (s *RecipeService) Update(ctx context.Context, draft *form.Draft) (*models.Recipe, error) {
	return s.repo.Update(ctx, draft.RecipeID, draft.Payload())
}

// Delete removes a recipe.
func (s *RecipeService) Delete(ctx context.Context, id int) (*models.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
