package model

import (
	"encoding/json"
	"fmt"
)

// MealType is the meal_type enum persisted in Postgres.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
)

// Valid reports whether the value is one of the persisted enum variants.
func (m MealType) Valid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// QuantityType is the quantity_type enum persisted in Postgres.
type QuantityType string

const (
	QuantityTypeCount      QuantityType = "Count"
	QuantityTypeKilo       QuantityType = "Kilo"
	QuantityTypeGram       QuantityType = "Gram"
	QuantityTypeLiter      QuantityType = "Liter"
	QuantityTypeMilliliter QuantityType = "Milliliter"
)

// Valid reports whether the value is one of the persisted enum variants.
func (q QuantityType) Valid() bool {
	switch q {
	case QuantityTypeCount, QuantityTypeKilo, QuantityTypeGram, QuantityTypeLiter, QuantityTypeMilliliter:
		return true
	}
	return false
}

// Recipe is the persisted recipe row with its ingredient rows attached.
type Recipe struct {
	RecipeID        int32        `json:"recipe_id"`
	Name            string       `json:"name"`
	Description     *string      `json:"description"`
	CookingTimeSecs *int64       `json:"cooking_time_secs"`
	MealType        MealType     `json:"meal_type"`
	Ingredients     []Ingredient `json:"ingredients"`
}

// Ingredient is a persisted ingredient row. The json tags match the column
// names so rows decode from the JSON_AGG output of the grouped read query.
type Ingredient struct {
	IngredientID    int32        `json:"ingredient_id"`
	RecipeID        int32        `json:"recipe_id"`
	IngredientOrder int32        `json:"ingredient_order"`
	Name            string       `json:"name"`
	Quantity        float32      `json:"quantity"`
	QuantityType    QuantityType `json:"quantity_type"`
}

// NewRecipe is a recipe without generated identity, used as create/update
// input. The ingredient slice order becomes the persisted ingredient_order.
type NewRecipe struct {
	Name            string
	Description     *string
	CookingTimeSecs *int64
	MealType        MealType
	Ingredients     []NewIngredient
}

// NewIngredient is an ingredient without generated identity or order.
type NewIngredient struct {
	Name         string
	Quantity     float32
	QuantityType QuantityType
}

// IngredientRows decodes the JSON_AGG ingredient aggregate produced by the
// grouped recipe queries. A recipe without ingredients aggregates to NULL,
// which scans to an empty slice rather than nil.
type IngredientRows []Ingredient

// Scan implements the sql.Scanner interface.
func (r *IngredientRows) Scan(value interface{}) error {
	if value == nil {
		*r = IngredientRows{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into IngredientRows", value)
	}

	return json.Unmarshal(bytes, r)
}
