package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gecko-kitchen/backend/internal/mocks"
	"github.com/gecko-kitchen/backend/internal/model"
	"github.com/gecko-kitchen/backend/internal/repository"
	"github.com/gecko-kitchen/backend/internal/service"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func durationPtr(d time.Duration) *time.Duration { return &d }

func sampleEntity() model.Recipe {
	return model.Recipe{
		RecipeID:        1,
		Name:            "Pancakes",
		Description:     strPtr("Fluffy"),
		CookingTimeSecs: int64Ptr(1800),
		MealType:        model.MealTypeBreakfast,
		Ingredients: []model.Ingredient{
			{IngredientID: 10, RecipeID: 1, IngredientOrder: 0, Name: "Flour", Quantity: 200, QuantityType: model.QuantityTypeGram},
			{IngredientID: 11, RecipeID: 1, IngredientOrder: 1, Name: "Egg", Quantity: 2, QuantityType: model.QuantityTypeCount},
		},
	}
}

func TestListRecipes(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("ListRecipes", mock.Anything).Return([]model.Recipe{sampleEntity()}, nil)

	recipes, err := svc.ListRecipes(context.Background())

	require.NoError(t, err)
	require.Len(t, recipes, 1)
	recipe := recipes[0]
	assert.Equal(t, int32(1), recipe.RecipeID)
	assert.Equal(t, "Pancakes", recipe.Name)
	assert.Equal(t, service.Breakfast, recipe.MealType)
	require.NotNil(t, recipe.CookingTime)
	assert.Equal(t, 30*time.Minute, *recipe.CookingTime)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "Flour", recipe.Ingredients[0].Name)
	assert.Equal(t, service.Gram, recipe.Ingredients[0].QuantityType)
	assert.Equal(t, "Egg", recipe.Ingredients[1].Name)
	mockRepo.AssertExpectations(t)
}

func TestListRecipesRepositoryError(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("ListRecipes", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.ListRecipes(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrRecipeNotFound)
	mockRepo.AssertExpectations(t)
}

func TestGetRecipe(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("GetRecipe", mock.Anything, int32(1)).Return(sampleEntity(), nil)

	recipe, err := svc.GetRecipe(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Pancakes", recipe.Name)
	mockRepo.AssertExpectations(t)
}

func TestGetRecipeNotFound(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("GetRecipe", mock.Anything, int32(42)).Return(model.Recipe{}, repository.ErrNotFound)

	_, err := svc.GetRecipe(context.Background(), 42)

	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	mockRepo.AssertExpectations(t)
}

func TestCreateRecipeConvertsToEntity(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(entity model.NewRecipe) bool {
		return entity.Name == "Pancakes" &&
			entity.MealType == model.MealTypeBreakfast &&
			entity.CookingTimeSecs != nil && *entity.CookingTimeSecs == 1800 &&
			len(entity.Ingredients) == 2 &&
			entity.Ingredients[0].Name == "Flour" &&
			entity.Ingredients[1].QuantityType == model.QuantityTypeCount
	})).Return(sampleEntity(), nil)

	recipe, err := svc.CreateRecipe(context.Background(), service.NewRecipe{
		Name:        "Pancakes",
		Description: strPtr("Fluffy"),
		CookingTime: durationPtr(30 * time.Minute),
		MealType:    service.Breakfast,
		Ingredients: []service.Ingredient{
			{Name: "Flour", Quantity: 200, QuantityType: service.Gram},
			{Name: "Egg", Quantity: 2, QuantityType: service.Count},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), recipe.RecipeID)
	mockRepo.AssertExpectations(t)
}

func TestCreateRecipeWithoutOptionalFields(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(entity model.NewRecipe) bool {
		return entity.Description == nil && entity.CookingTimeSecs == nil && len(entity.Ingredients) == 0
	})).Return(model.Recipe{
		RecipeID:    2,
		Name:        "Toast",
		MealType:    model.MealTypeLunch,
		Ingredients: []model.Ingredient{},
	}, nil)

	recipe, err := svc.CreateRecipe(context.Background(), service.NewRecipe{
		Name:     "Toast",
		MealType: service.Lunch,
	})

	require.NoError(t, err)
	assert.Nil(t, recipe.Description)
	assert.Nil(t, recipe.CookingTime)
	assert.Empty(t, recipe.Ingredients)
	mockRepo.AssertExpectations(t)
}

func TestUpdateRecipe(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("UpdateRecipe", mock.Anything, int32(1), mock.MatchedBy(func(entity model.NewRecipe) bool {
		return entity.Name == "Updated" && len(entity.Ingredients) == 1
	})).Return(sampleEntity(), nil)

	_, err := svc.UpdateRecipe(context.Background(), service.Recipe{
		RecipeID: 1,
		Name:     "Updated",
		MealType: service.Dinner,
		Ingredients: []service.Ingredient{
			{Name: "Butter", Quantity: 50, QuantityType: service.Gram},
		},
	})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateRecipeNotFound(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("UpdateRecipe", mock.Anything, int32(99), mock.Anything).Return(model.Recipe{}, repository.ErrNotFound)

	_, err := svc.UpdateRecipe(context.Background(), service.Recipe{RecipeID: 99, Name: "Ghost", MealType: service.Dinner})

	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	mockRepo.AssertExpectations(t)
}

func TestDeleteRecipe(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("DeleteRecipe", mock.Anything, int32(1)).Return(nil)

	require.NoError(t, svc.DeleteRecipe(context.Background(), 1))
	mockRepo.AssertExpectations(t)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("DeleteRecipe", mock.Anything, int32(99)).Return(repository.ErrNotFound)

	err := svc.DeleteRecipe(context.Background(), 99)

	assert.ErrorIs(t, err, service.ErrRecipeNotFound)
	mockRepo.AssertExpectations(t)
}

func TestDeleteRecipeUnknownError(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("DeleteRecipe", mock.Anything, int32(1)).Return(errors.New("deadlock detected"))

	err := svc.DeleteRecipe(context.Background(), 1)

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrRecipeNotFound)
	mockRepo.AssertExpectations(t)
}

func TestSearchRecipesConvertsCriteria(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("SearchRecipes", mock.Anything, mock.MatchedBy(func(criteria repository.SearchCriteria) bool {
		return criteria.RecipeName != nil && *criteria.RecipeName == "Pancake" &&
			criteria.IngredientName != nil && *criteria.IngredientName == "Flour" &&
			criteria.MealType != nil && *criteria.MealType == model.MealTypeBreakfast
	})).Return([]model.Recipe{sampleEntity()}, nil)

	mealType := service.Breakfast
	recipes, err := svc.SearchRecipes(context.Background(), service.SearchCriteria{
		RecipeName:     strPtr("Pancake"),
		IngredientName: strPtr("Flour"),
		MealType:       &mealType,
	})

	require.NoError(t, err)
	assert.Len(t, recipes, 1)
	mockRepo.AssertExpectations(t)
}

func TestSearchRecipesNilCriteria(t *testing.T) {
	mockRepo := new(mocks.MockRecipeRepository)
	svc := service.NewRecipeService(mockRepo)

	mockRepo.On("SearchRecipes", mock.Anything, mock.MatchedBy(func(criteria repository.SearchCriteria) bool {
		return criteria.RecipeName == nil && criteria.IngredientName == nil && criteria.MealType == nil
	})).Return([]model.Recipe{}, nil)

	recipes, err := svc.SearchRecipes(context.Background(), service.SearchCriteria{})

	require.NoError(t, err)
	assert.Empty(t, recipes)
	mockRepo.AssertExpectations(t)
}
