package services_test

import (
	"context"

	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockRecipeRepository is a mock implementation of RecipeRepositoryInterface
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) List(ctx context.Context, filter models.ListFilter) (*models.RecipePage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipePage), args.Error(1)
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id int) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Create(ctx context.Context, payload models.RecipePayload) (*models.Recipe, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(ctx context.Context, id int, payload models.RecipePayload) (*models.Recipe, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id int) (*models.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeleteResult), args.Error(1)
}

// MockAuthGateway is a mock implementation of AuthGateway
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResult), args.Error(1)
}

func (m *MockAuthGateway) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// memoryPersistence is an in-memory session persistence double
type memoryPersistence struct {
	token string
}

func (m *memoryPersistence) Load() (string, error) { return m.token, nil }
func (m *memoryPersistence) Save(token string) error {
	m.token = token
	return nil
}
func (m *memoryPersistence) Clear() error {
	m.token = ""
	return nil
}
