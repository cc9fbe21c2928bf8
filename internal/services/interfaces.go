package services

import (
	"context"

	"github.com/dishflow/dishflow-web/internal/form"
	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/internal/pagination"
)

// AuthServiceInterface defines the session operations handlers depend on
type AuthServiceInterface interface {
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Logout()
	EnsureUser(ctx context.Context) (*models.User, error)
	IsAuthenticated() bool
}

// RecipeServiceInterface defines the recipe operations handlers depend on
type RecipeServiceInterface interface {
	Browse(ctx context.Context, query pagination.Query) (*BrowseResult, error)
	Get(ctx context.Context, id int) (*models.Recipe, error)
	Create(ctx context.Context, draft *form.Draft) (*models.Recipe, error)
	Update(ctx context.Context, draft *form.Draft) (*models.Recipe, error)
	Delete(ctx context.Context, id int) (*models.DeleteResult, error)
}

// RecipeRepositoryInterface is the repository surface the recipe service
// uses, mockable in tests
type RecipeRepositoryInterface interface {
	List(ctx context.Context, filter models.ListFilter) (*models.RecipePage, error)
	GetByID(ctx context.Context, id int) (*models.Recipe, error)
	Create(ctx context.Context, payload models.RecipePayload) (*models.Recipe, error)
	Update(ctx context.Context, id int, payload models.RecipePayload) (*models.Recipe, error)
	Delete(ctx context.Context, id int) (*models.DeleteResult, error)
}

// AuthGateway is the upstream auth surface the auth service uses
type AuthGateway interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}
