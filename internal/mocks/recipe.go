package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gecko-kitchen/backend/internal/model"
	"github.com/gecko-kitchen/backend/internal/repository"
	"github.com/gecko-kitchen/backend/internal/service"
)

// MockRecipeRepository is a mock implementation of repository.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeRepository) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeRepository) GetRecipe(ctx context.Context, recipeID int32) (model.Recipe, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(model.Recipe), args.Error(1)
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, entity model.NewRecipe) (model.Recipe, error) {
	args := m.Called(ctx, entity)
	return args.Get(0).(model.Recipe), args.Error(1)
}

// UpdateRecipe mocks the UpdateRecipe method
func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipeID int32, entity model.NewRecipe) (model.Recipe, error) {
	args := m.Called(ctx, recipeID, entity)
	return args.Get(0).(model.Recipe), args.Error(1)
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, recipeID int32) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeRepository) SearchRecipes(ctx context.Context, criteria repository.SearchCriteria) ([]model.Recipe, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// MockRecipeService is a mock implementation of service.IRecipeService.
type MockRecipeService struct {
	mock.Mock
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]service.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Recipe), args.Error(1)
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, recipeID int32) (service.Recipe, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(service.Recipe), args.Error(1)
}

// CreateRecipe mocks the CreateRecipe method
func (m *MockRecipeService) CreateRecipe(ctx context.Context, recipe service.NewRecipe) (service.Recipe, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(service.Recipe), args.Error(1)
}

// UpdateRecipe mocks the UpdateRecipe method
func (m *MockRecipeService) UpdateRecipe(ctx context.Context, recipe service.Recipe) (service.Recipe, error) {
	args := m.Called(ctx, recipe)
	return args.Get(0).(service.Recipe), args.Error(1)
}

// DeleteRecipe mocks the DeleteRecipe method
func (m *MockRecipeService) DeleteRecipe(ctx context.Context, recipeID int32) error {
	args := m.Called(ctx, recipeID)
	return args.Error(0)
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeService) SearchRecipes(ctx context.Context, criteria service.SearchCriteria) ([]service.Recipe, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Recipe), args.Error(1)
}
