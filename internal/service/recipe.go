package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gecko-kitchen/backend/internal/model"
	"github.com/gecko-kitchen/backend/internal/repository"
)

// ErrRecipeNotFound is the domain-level counterpart of
// repository.ErrNotFound. Callers use errors.Is to tell it apart from
// unknown failures.
var ErrRecipeNotFound = errors.New("recipe not found")

// MealType classifies a recipe by meal.
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
)

// QuantityType is the unit an ingredient quantity is measured in.
type QuantityType string

const (
	Count      QuantityType = "Count"
	Kilo       QuantityType = "Kilo"
	Gram       QuantityType = "Gram"
	Liter      QuantityType = "Liter"
	Milliliter QuantityType = "Milliliter"
)

// Recipe is the business-facing recipe representation. Ingredient order is
// carried by slice position; storage identities of ingredients stay behind
// the repository boundary.
type Recipe struct {
	RecipeID    int32
	Name        string
	Description *string
	CookingTime *time.Duration
	MealType    MealType
	Ingredients []Ingredient
}

// Ingredient is a single entry of a recipe's ingredient list.
type Ingredient struct {
	Name         string
	Quantity     float32
	QuantityType QuantityType
}

// NewRecipe describes a recipe to be created, before any identity exists.
type NewRecipe struct {
	Name        string
	Description *string
	CookingTime *time.Duration
	MealType    MealType
	Ingredients []Ingredient
}

// SearchCriteria filters recipe searches. Nil fields match everything.
type SearchCriteria struct {
	RecipeName     *string
	IngredientName *string
	MealType       *MealType
}

// RecipeService orchestrates recipe operations against the repository
// contract, converting between domain objects and persisted entities so the
// entity shapes never leak to the presentation layer.
type RecipeService struct {
	repository repository.RecipeRepository
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(repo repository.RecipeRepository) *RecipeService {
	return &RecipeService{repository: repo}
}

// ListRecipes returns every recipe.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]Recipe, error) {
	entities, err := s.repository.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return toDomainRecipes(entities), nil
}

// GetRecipe returns a single recipe by id.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID int32) (Recipe, error) {
	entity, err := s.repository.GetRecipe(ctx, recipeID)
	if err != nil {
		return Recipe{}, mapRepositoryError("get recipe", err)
	}
	return toDomainRecipe(entity), nil
}

// CreateRecipe persists a new recipe and returns it with assigned identity.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe NewRecipe) (Recipe, error) {
	entity, err := s.repository.CreateRecipe(ctx, toNewEntity(recipe.Name, recipe.Description, recipe.CookingTime, recipe.MealType, recipe.Ingredients))
	if err != nil {
		return Recipe{}, fmt.Errorf("create recipe: %w", err)
	}
	return toDomainRecipe(entity), nil
}

// UpdateRecipe replaces the stored recipe identified by recipe.RecipeID,
// scalar fields and ingredient list alike.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipe Recipe) (Recipe, error) {
	entity, err := s.repository.UpdateRecipe(ctx, recipe.RecipeID, toNewEntity(recipe.Name, recipe.Description, recipe.CookingTime, recipe.MealType, recipe.Ingredients))
	if err != nil {
		return Recipe{}, mapRepositoryError("update recipe", err)
	}
	return toDomainRecipe(entity), nil
}

// DeleteRecipe removes a recipe and its ingredients.
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID int32) error {
	if err := s.repository.DeleteRecipe(ctx, recipeID); err != nil {
		return mapRepositoryError("delete recipe", err)
	}
	return nil
}

// SearchRecipes returns the recipes matching all provided criteria.
func (s *RecipeService) SearchRecipes(ctx context.Context, criteria SearchCriteria) ([]Recipe, error) {
	repoCriteria := repository.SearchCriteria{
		RecipeName:     criteria.RecipeName,
		IngredientName: criteria.IngredientName,
	}
	if criteria.MealType != nil {
		mealType := model.MealType(*criteria.MealType)
		repoCriteria.MealType = &mealType
	}

	entities, err := s.repository.SearchRecipes(ctx, repoCriteria)
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	return toDomainRecipes(entities), nil
}

// mapRepositoryError translates repository error kinds onto domain error
// kinds 1:1. NotFound stays distinguishable; everything else is wrapped as
// unknown with added context.
func mapRepositoryError(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrRecipeNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toDomainRecipes(entities []model.Recipe) []Recipe {
	recipes := make([]Recipe, 0, len(entities))
	for _, entity := range entities {
		recipes = append(recipes, toDomainRecipe(entity))
	}
	return recipes
}

func toDomainRecipe(entity model.Recipe) Recipe {
	ingredients := make([]Ingredient, 0, len(entity.Ingredients))
	for _, ingredient := range entity.Ingredients {
		ingredients = append(ingredients, Ingredient{
			Name:         ingredient.Name,
			Quantity:     ingredient.Quantity,
			QuantityType: QuantityType(ingredient.QuantityType),
		})
	}

	var cookingTime *time.Duration
	if entity.CookingTimeSecs != nil {
		duration := time.Duration(*entity.CookingTimeSecs) * time.Second
		cookingTime = &duration
	}

	return Recipe{
		RecipeID:    entity.RecipeID,
		Name:        entity.Name,
		Description: entity.Description,
		CookingTime: cookingTime,
		MealType:    MealType(entity.MealType),
		Ingredients: ingredients,
	}
}

func toNewEntity(name string, description *string, cookingTime *time.Duration, mealType MealType, ingredients []Ingredient) model.NewRecipe {
	entityIngredients := make([]model.NewIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		entityIngredients = append(entityIngredients, model.NewIngredient{
			Name:         ingredient.Name,
			Quantity:     ingredient.Quantity,
			QuantityType: model.QuantityType(ingredient.QuantityType),
		})
	}

	var cookingTimeSecs *int64
	if cookingTime != nil {
		secs := int64(cookingTime.Seconds())
		cookingTimeSecs = &secs
	}

	return model.NewRecipe{
		Name:            name,
		Description:     description,
		CookingTimeSecs: cookingTimeSecs,
		MealType:        model.MealType(mealType),
		Ingredients:     entityIngredients,
	}
}
