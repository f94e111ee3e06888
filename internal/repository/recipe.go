package repository

import (
	"context"
	"errors"

	"github.com/gecko-kitchen/backend/internal/model"
)

// ErrNotFound is returned when an operation targets a recipe_id that does not
// exist. Every other failure is wrapped with context and treated as unknown.
var ErrNotFound = errors.New("recipe not found")

// SearchCriteria filters recipes. Nil fields match everything; non-nil fields
// are ANDed together. Name matches are case-insensitive substring matches.
type SearchCriteria struct {
	RecipeName     *string
	IngredientName *string
	MealType       *model.MealType
}

// RecipeRepository is the data-access contract for recipes. Implementations
// must keep each write atomic: a recipe's ingredient set at rest always
// equals the last successfully committed write.
//
// Ingredient rows have no lifecycle of their own. Update replaces the whole
// ingredient set, so ingredient ids are not stable across updates.
type RecipeRepository interface {
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	GetRecipe(ctx context.Context, recipeID int32) (model.Recipe, error)
	CreateRecipe(ctx context.Context, entity model.NewRecipe) (model.Recipe, error)
	UpdateRecipe(ctx context.Context, recipeID int32, entity model.NewRecipe) (model.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int32) error
	SearchRecipes(ctx context.Context, criteria SearchCriteria) ([]model.Recipe, error)
}
