package handlers_test

import (
	"context"

	"github.com/dishflow/dishflow-web/internal/form"
	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/internal/pagination"
	"github.com/dishflow/dishflow-web/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of RecipeServiceInterface
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Browse(ctx context.Context, query pagination.Query) (*services.BrowseResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.BrowseResult), args.Error(1)
}

func (m *MockRecipeService) Get(ctx context.Context, id int) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Create(ctx context.Context, draft *form.Draft) (*models.Recipe, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, draft *form.Draft) (*models.Recipe, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, id int) (*models.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeleteResult), args.Error(1)
}

// MockAuthService is a mock implementation of AuthServiceInterface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Logout() {
	m.Called()
}

func (m *MockAuthService) EnsureUser(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) IsAuthenticated() bool {
	args := m.Called()
	return args.Bool(0)
}
