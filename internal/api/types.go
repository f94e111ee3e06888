package api

import (
	"time"

	"github.com/gecko-kitchen/backend/internal/service"
)

// IngredientPayload is the wire shape of a single ingredient, used in both
// requests and responses. Ingredient order is the position in the list.
type IngredientPayload struct {
	Name         string  `json:"name" binding:"required"`
	Quantity     float32 `json:"quantity" binding:"required,gt=0"`
	QuantityType string  `json:"quantity_type" binding:"required,oneof=Count Kilo Gram Liter Milliliter"`
}

// CreateRecipeRequest is the request body for POST /recipes.
type CreateRecipeRequest struct {
	Name            string              `json:"name" binding:"required"`
	Description     *string             `json:"description"`
	CookingTimeSecs *int64              `json:"cooking_time_secs" binding:"omitempty,gte=0"`
	MealType        string              `json:"meal_type" binding:"required,oneof=Breakfast Lunch Dinner"`
	Ingredients     []IngredientPayload `json:"ingredients" binding:"dive"`
}

// UpdateRecipeRequest is the request body for PUT /recipes/:id. The target
// id comes from the path, not the body.
type UpdateRecipeRequest struct {
	Name            string              `json:"name" binding:"required"`
	Description     *string             `json:"description"`
	CookingTimeSecs *int64              `json:"cooking_time_secs" binding:"omitempty,gte=0"`
	MealType        string              `json:"meal_type" binding:"required,oneof=Breakfast Lunch Dinner"`
	Ingredients     []IngredientPayload `json:"ingredients" binding:"dive"`
}

// RecipeResponse is the wire shape of a recipe.
type RecipeResponse struct {
	RecipeID        int32               `json:"recipe_id"`
	Name            string              `json:"name"`
	Description     *string             `json:"description"`
	CookingTimeSecs *int64              `json:"cooking_time_secs"`
	MealType        string              `json:"meal_type"`
	Ingredients     []IngredientPayload `json:"ingredients"`
}

func toRecipeResponse(recipe service.Recipe) RecipeResponse {
	ingredients := make([]IngredientPayload, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, IngredientPayload{
			Name:         ingredient.Name,
			Quantity:     ingredient.Quantity,
			QuantityType: string(ingredient.QuantityType),
		})
	}

	var cookingTimeSecs *int64
	if recipe.CookingTime != nil {
		secs := int64(recipe.CookingTime.Seconds())
		cookingTimeSecs = &secs
	}

	return RecipeResponse{
		RecipeID:        recipe.RecipeID,
		Name:            recipe.Name,
		Description:     recipe.Description,
		CookingTimeSecs: cookingTimeSecs,
		MealType:        string(recipe.MealType),
		Ingredients:     ingredients,
	}
}

func toRecipeResponses(recipes []service.Recipe) []RecipeResponse {
	responses := make([]RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, toRecipeResponse(recipe))
	}
	return responses
}

func toDomainIngredients(payloads []IngredientPayload) []service.Ingredient {
	ingredients := make([]service.Ingredient, 0, len(payloads))
	for _, payload := range payloads {
		ingredients = append(ingredients, service.Ingredient{
			Name:         payload.Name,
			Quantity:     payload.Quantity,
			QuantityType: service.QuantityType(payload.QuantityType),
		})
	}
	return ingredients
}

func toCookingTime(secs *int64) *time.Duration {
	if secs == nil {
		return nil
	}
	duration := time.Duration(*secs) * time.Second
	return &duration
}
