package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gecko-kitchen/backend/internal/model"
)

func TestMealTypeValid(t *testing.T) {
	assert.True(t, model.MealTypeBreakfast.Valid())
	assert.True(t, model.MealTypeLunch.Valid())
	assert.True(t, model.MealTypeDinner.Valid())
	assert.False(t, model.MealType("Brunch").Valid())
	assert.False(t, model.MealType("").Valid())
	assert.False(t, model.MealType("breakfast").Valid())
}

func TestQuantityTypeValid(t *testing.T) {
	for _, quantityType := range []model.QuantityType{
		model.QuantityTypeCount,
		model.QuantityTypeKilo,
		model.QuantityTypeGram,
		model.QuantityTypeLiter,
		model.QuantityTypeMilliliter,
	} {
		assert.True(t, quantityType.Valid())
	}
	assert.False(t, model.QuantityType("Gallon").Valid())
	assert.False(t, model.QuantityType("").Valid())
}

func TestIngredientRowsScanNull(t *testing.T) {
	var rows model.IngredientRows

	require.NoError(t, rows.Scan(nil))

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestIngredientRowsScanBytes(t *testing.T) {
	aggregate := `[
		{"ingredient_id": 10, "recipe_id": 1, "ingredient_order": 0, "name": "Flour", "quantity": 200, "quantity_type": "Gram"},
		{"ingredient_id": 11, "recipe_id": 1, "ingredient_order": 1, "name": "Egg", "quantity": 2, "quantity_type": "Count"}
	]`

	var rows model.IngredientRows
	require.NoError(t, rows.Scan([]byte(aggregate)))

	require.Len(t, rows, 2)
	assert.Equal(t, int32(10), rows[0].IngredientID)
	assert.Equal(t, int32(0), rows[0].IngredientOrder)
	assert.Equal(t, "Flour", rows[0].Name)
	assert.Equal(t, float32(200), rows[0].Quantity)
	assert.Equal(t, model.QuantityTypeGram, rows[0].QuantityType)
	assert.Equal(t, "Egg", rows[1].Name)
	assert.Equal(t, int32(1), rows[1].IngredientOrder)
}

func TestIngredientRowsScanString(t *testing.T) {
	var rows model.IngredientRows

	require.NoError(t, rows.Scan(`[{"ingredient_id": 5, "recipe_id": 2, "ingredient_order": 0, "name": "Salt", "quantity": 1, "quantity_type": "Gram"}]`))

	require.Len(t, rows, 1)
	assert.Equal(t, "Salt", rows[0].Name)
}

func TestIngredientRowsScanInvalidType(t *testing.T) {
	var rows model.IngredientRows

	err := rows.Scan(42)

	assert.Error(t, err)
}

func TestIngredientRowsScanMalformedJSON(t *testing.T) {
	var rows model.IngredientRows

	err := rows.Scan([]byte(`not json`))

	assert.Error(t, err)
}
