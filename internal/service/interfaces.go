package service

import "context"

// IRecipeService defines the interface for recipe operations consumed by the
// presentation layer.
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]Recipe, error)
	GetRecipe(ctx context.Context, recipeID int32) (Recipe, error)
	CreateRecipe(ctx context.Context, recipe NewRecipe) (Recipe, error)
	UpdateRecipe(ctx context.Context, recipe Recipe) (Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int32) error
	SearchRecipes(ctx context.Context, criteria SearchCriteria) ([]Recipe, error)
}
